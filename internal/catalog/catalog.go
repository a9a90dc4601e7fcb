package catalog

import (
	"sort"
	"strings"

	"learnplatform/internal/domain"
)

// Catalog отдаёт неизменяемые данные курсов с поиском по индексам.
// Конструируется один раз при старте процесса.
type Catalog struct {
	courses        []domain.Course
	coursesByID    map[string]domain.Course
	lessonsByID    map[string]domain.Lesson
	lessonsByCourse map[string][]domain.Lesson
	quizzesByLesson map[string]domain.Quiz
}

func New() *Catalog {
	c := &Catalog{
		courses:         courses,
		coursesByID:     make(map[string]domain.Course, len(courses)),
		lessonsByID:     make(map[string]domain.Lesson, len(lessons)),
		lessonsByCourse: make(map[string][]domain.Lesson, len(courses)),
		quizzesByLesson: make(map[string]domain.Quiz, len(quizzes)),
	}
	for _, course := range courses {
		c.coursesByID[course.ID] = course
	}
	for _, lesson := range lessons {
		c.lessonsByID[lesson.ID] = lesson
		c.lessonsByCourse[lesson.CourseID] = append(c.lessonsByCourse[lesson.CourseID], lesson)
	}
	for id := range c.lessonsByCourse {
		ls := c.lessonsByCourse[id]
		sort.Slice(ls, func(i, j int) bool { return ls[i].Order < ls[j].Order })
	}
	for _, quiz := range quizzes {
		c.quizzesByLesson[quiz.LessonID] = quiz
	}
	return c
}

func (c *Catalog) Courses() []domain.Course {
	return c.courses
}

func (c *Catalog) CourseByID(id string) (domain.Course, bool) {
	course, ok := c.coursesByID[id]
	return course, ok
}

func (c *Catalog) LessonByID(id string) (domain.Lesson, bool) {
	lesson, ok := c.lessonsByID[id]
	return lesson, ok
}

func (c *Catalog) HasLesson(id string) bool {
	_, ok := c.lessonsByID[id]
	return ok
}

// LessonsByCourse возвращает уроки курса, отсортированные по Order.
func (c *Catalog) LessonsByCourse(courseID string) []domain.Lesson {
	return c.lessonsByCourse[courseID]
}

func (c *Catalog) QuizByLesson(lessonID string) (domain.Quiz, bool) {
	quiz, ok := c.quizzesByLesson[lessonID]
	return quiz, ok
}

// TotalLessons — общее число уроков каталога, знаменатель для
// процента прогресса ученика на экране опекуна.
func (c *Catalog) TotalLessons() int {
	return len(c.lessonsByID)
}

// Filter повторяет фильтрацию списка курсов: подстрока названия без
// учёта регистра плюс точное совпадение категории.
func (c *Catalog) Filter(search, category string) []domain.Course {
	result := make([]domain.Course, 0, len(c.courses))
	search = strings.ToLower(strings.TrimSpace(search))
	for _, course := range c.courses {
		if category != "" && category != "all" && course.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(course.Title), search) {
			continue
		}
		result = append(result, course)
	}
	return result
}
