package domain

import (
	"time"

	"github.com/google/uuid"
)

// LessonProgress и UserProgress живут в локальном KV-хранилище как один JSON-блоб
// на пользователя. Урок засчитан, только если пройден и видео, и квиз.
type LessonProgress struct {
	LessonID    string    `json:"lessonId"`
	Completed   bool      `json:"completed"`
	QuizPassed  bool      `json:"quizPassed"`
	CompletedAt time.Time `json:"completedAt"`
}

func (lp LessonProgress) Done() bool {
	return lp.Completed && lp.QuizPassed
}

type UserProgress struct {
	CourseID        string           `json:"courseId"`
	LessonsProgress []LessonProgress `json:"lessonsProgress"`
}

// ProgressRecord — зеркало завершённого урока в Postgres для просмотра
// прогресса ученика опекуном. Составной ключ делает запись идемпотентной.
type ProgressRecord struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"user_id"`
	CourseID    string    `gorm:"primaryKey" json:"course_id"`
	LessonID    string    `gorm:"primaryKey" json:"lesson_id"`
	Completed   bool      `json:"completed"`
	QuizPassed  bool      `json:"quiz_passed"`
	CompletedAt time.Time `json:"completed_at"`
}

func (ProgressRecord) TableName() string {
	return "user_progress"
}
