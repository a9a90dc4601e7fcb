package domain

const (
	CategoryMathematics = "mathematics"
	CategoryPhysics     = "physics"
	CategoryLanguages   = "languages"
)

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Course описывается статически на этапе сборки, в БД не хранится.
type Course struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	ThumbnailURL string `json:"thumbnail_url"`
	LessonsCount int    `json:"lessons_count"`
	Duration     string `json:"duration"`
	Level        string `json:"level"`
}

type Lesson struct {
	ID          string `json:"id"`
	CourseID    string `json:"course_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoID     string `json:"video_id"`
	Duration    string `json:"duration"`
	Order       int    `json:"order"`
}

type Quiz struct {
	ID                 string   `json:"id"`
	LessonID           string   `json:"lesson_id"`
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"-"`
}
