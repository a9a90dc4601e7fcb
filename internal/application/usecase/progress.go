package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sync"
	"time"

	"learnplatform/internal/catalog"
	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/kvstore"
	"learnplatform/internal/infrastructure/repository"
	"learnplatform/internal/pkg/logger"

	"github.com/google/uuid"
)

const progressKeyPrefix = "user_progress:"

const mirrorTimeout = 5 * time.Second

// ProgressService держит прогресс активных пользователей в памяти.
// KV-хранилище — источник истины между сессиями, Postgres-зеркало нужно
// только опекунам и пишется в фоне без гарантий доставки.
type ProgressService struct {
	catalog *catalog.Catalog
	store   kvstore.Store
	mirror  repository.ProgressRepo
	log     *logger.Logger

	mu       sync.Mutex
	cache    map[uuid.UUID][]domain.UserProgress
	hydrated map[uuid.UUID]bool

	now func() time.Time
}

func NewProgressService(cat *catalog.Catalog, store kvstore.Store, mirror repository.ProgressRepo, log *logger.Logger) *ProgressService {
	return &ProgressService{
		catalog:  cat,
		store:    store,
		mirror:   mirror,
		log:      log.With("service", "progress"),
		cache:    make(map[uuid.UUID][]domain.UserProgress),
		hydrated: make(map[uuid.UUID]bool),
		now:      time.Now,
	}
}

// ProgressSummary — производные метрики одним ответом, чтобы экран
// профиля не собирал их четырьмя запросами.
type ProgressSummary struct {
	Overall          int            `json:"overall"`
	CompletedLessons int            `json:"completed_lessons"`
	CompletedCourses int            `json:"completed_courses"`
	Courses          map[string]int `json:"courses"`
}

// hydrate загружает блоб пользователя не более одного раза. Битое или
// недоступное хранилище деградирует до пустого прогресса, не до ошибки.
func (s *ProgressService) hydrate(ctx context.Context, userID uuid.UUID) {
	if s.hydrated[userID] {
		return
	}
	s.hydrated[userID] = true

	raw, err := s.store.Get(ctx, progressKeyPrefix+userID.String())
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			s.log.Warn("progress hydration failed, starting empty", "user_id", userID, "err", err)
		}
		return
	}

	var list []domain.UserProgress
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.log.Warn("progress blob corrupted, starting empty", "user_id", userID, "err", err)
		return
	}
	s.cache[userID] = list
}

// persist пишет всю коллекцию целиком. Ошибка записи не откатывает память:
// в рамках сессии память — источник истины, durability — best effort.
func (s *ProgressService) persist(ctx context.Context, userID uuid.UUID) {
	data, err := json.Marshal(s.cache[userID])
	if err != nil {
		s.log.Error("progress marshal failed", "user_id", userID, "err", err)
		return
	}
	if err := s.store.Set(ctx, progressKeyPrefix+userID.String(), string(data), 0); err != nil {
		s.log.Error("progress persist failed", "user_id", userID, "err", err)
	}
}

// RecordCompletion отмечает урок просмотренным. Completed всегда true:
// сюда попадают только после сдачи квиза, результат сдачи несёт quizPassed.
// Возвращает обновлённый процент по курсу.
func (s *ProgressService) RecordCompletion(ctx context.Context, userID uuid.UUID, courseID, lessonID string, quizPassed bool) int {
	completedAt := s.now()

	s.mu.Lock()
	s.hydrate(ctx, userID)

	entry := domain.LessonProgress{
		LessonID:    lessonID,
		Completed:   true,
		QuizPassed:  quizPassed,
		CompletedAt: completedAt,
	}

	list := s.cache[userID]
	courseIdx := -1
	for i := range list {
		if list[i].CourseID == courseID {
			courseIdx = i
			break
		}
	}
	if courseIdx == -1 {
		list = append(list, domain.UserProgress{
			CourseID:        courseID,
			LessonsProgress: []domain.LessonProgress{entry},
		})
	} else {
		lessons := list[courseIdx].LessonsProgress
		found := false
		for i := range lessons {
			if lessons[i].LessonID == lessonID {
				lessons[i] = entry
				found = true
				break
			}
		}
		if !found {
			list[courseIdx].LessonsProgress = append(lessons, entry)
		}
	}
	s.cache[userID] = list

	s.persist(ctx, userID)
	percent := s.courseProgressLocked(userID, courseID)
	s.mu.Unlock()

	go s.mirrorWrite(userID, courseID, lessonID, quizPassed, completedAt)

	return percent
}

// mirrorWrite — fire-and-forget. Потерянное зеркало не трогает локальный
// прогресс, поэтому ошибку только логируем.
func (s *ProgressService) mirrorWrite(userID uuid.UUID, courseID, lessonID string, quizPassed bool, completedAt time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()

	rec := &domain.ProgressRecord{
		UserID:      userID,
		CourseID:    courseID,
		LessonID:    lessonID,
		Completed:   true,
		QuizPassed:  quizPassed,
		CompletedAt: completedAt,
	}
	if err := s.mirror.Upsert(ctx, rec); err != nil {
		s.log.Warn("progress mirror write failed",
			"user_id", userID, "course_id", courseID, "lesson_id", lessonID, "err", err)
	}
}

func (s *ProgressService) CourseProgress(ctx context.Context, userID uuid.UUID, courseID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx, userID)
	return s.courseProgressLocked(userID, courseID)
}

func (s *ProgressService) courseProgressLocked(userID uuid.UUID, courseID string) int {
	lessons := s.catalog.LessonsByCourse(courseID)
	if len(lessons) == 0 {
		return 0
	}

	var courseProgress *domain.UserProgress
	for i := range s.cache[userID] {
		if s.cache[userID][i].CourseID == courseID {
			courseProgress = &s.cache[userID][i]
			break
		}
	}
	if courseProgress == nil {
		return 0
	}

	done := 0
	for _, lp := range courseProgress.LessonsProgress {
		if lp.Done() {
			done++
		}
	}
	return roundPercent(done, len(lessons))
}

func (s *ProgressService) IsLessonDone(ctx context.Context, userID uuid.UUID, courseID, lessonID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx, userID)

	for _, up := range s.cache[userID] {
		if up.CourseID != courseID {
			continue
		}
		for _, lp := range up.LessonsProgress {
			if lp.LessonID == lessonID {
				return lp.Done()
			}
		}
	}
	return false
}

func (s *ProgressService) OverallProgress(ctx context.Context, userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx, userID)
	return s.overallLocked(userID)
}

// overallLocked — невзвешенное среднее процентов по всем курсам каталога.
func (s *ProgressService) overallLocked(userID uuid.UUID) int {
	all := s.catalog.Courses()
	if len(all) == 0 {
		return 0
	}
	total := 0
	for _, course := range all {
		total += s.courseProgressLocked(userID, course.ID)
	}
	return int(math.Round(float64(total) / float64(len(all))))
}

// CompletedLessonsCount не учитывает уроки, которых больше нет в каталоге:
// исторические записи не должны ломать счётчики после смены каталога.
func (s *ProgressService) CompletedLessonsCount(ctx context.Context, userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx, userID)
	return s.completedLessonsLocked(userID)
}

func (s *ProgressService) completedLessonsLocked(userID uuid.UUID) int {
	count := 0
	for _, up := range s.cache[userID] {
		for _, lp := range up.LessonsProgress {
			if lp.Done() && s.catalog.HasLesson(lp.LessonID) {
				count++
			}
		}
	}
	return count
}

func (s *ProgressService) CompletedCoursesCount(ctx context.Context, userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx, userID)
	return s.completedCoursesLocked(userID)
}

func (s *ProgressService) completedCoursesLocked(userID uuid.UUID) int {
	count := 0
	for _, course := range s.catalog.Courses() {
		if s.courseProgressLocked(userID, course.ID) == 100 {
			count++
		}
	}
	return count
}

func (s *ProgressService) Summary(ctx context.Context, userID uuid.UUID) ProgressSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx, userID)

	perCourse := make(map[string]int, len(s.catalog.Courses()))
	for _, course := range s.catalog.Courses() {
		perCourse[course.ID] = s.courseProgressLocked(userID, course.ID)
	}
	return ProgressSummary{
		Overall:          s.overallLocked(userID),
		CompletedLessons: s.completedLessonsLocked(userID),
		CompletedCourses: s.completedCoursesLocked(userID),
		Courses:          perCourse,
	}
}

func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
