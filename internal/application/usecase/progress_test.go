package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"learnplatform/internal/catalog"
	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/kvstore"
	"learnplatform/internal/pkg/logger"

	"github.com/google/uuid"
)

// mirrorRecorder собирает записи зеркала; канал позволяет дождаться
// фоновой горутины.
type mirrorRecorder struct {
	records chan *domain.ProgressRecord
	fail    bool
}

func newMirrorRecorder() *mirrorRecorder {
	return &mirrorRecorder{records: make(chan *domain.ProgressRecord, 16)}
}

func (m *mirrorRecorder) Upsert(ctx context.Context, rec *domain.ProgressRecord) error {
	if m.fail {
		return errors.New("mirror down")
	}
	m.records <- rec
	return nil
}

func (m *mirrorRecorder) CompletedLessonIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return nil, nil
}

func (m *mirrorRecorder) wait(t *testing.T) *domain.ProgressRecord {
	t.Helper()
	select {
	case rec := <-m.records:
		return rec
	case <-time.After(2 * time.Second):
		t.Fatalf("mirror write did not happen")
		return nil
	}
}

// brokenStore падает на каждой операции.
type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("store down")
}
func (brokenStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.New("store down")
}
func (brokenStore) Del(ctx context.Context, key string) error {
	return errors.New("store down")
}

func newProgressService(store kvstore.Store, mirror *mirrorRecorder) *ProgressService {
	return NewProgressService(catalog.New(), store, mirror, logger.NewNop())
}

func TestRecordCompletionIdempotent(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	svc := newProgressService(store, newMirrorRecorder())
	user := uuid.New()

	svc.RecordCompletion(ctx, user, "math-1", "math-1-1", true)
	svc.RecordCompletion(ctx, user, "math-1", "math-1-1", true)

	if got := svc.CompletedLessonsCount(ctx, user); got != 1 {
		t.Fatalf("CompletedLessonsCount: got %d, want 1", got)
	}

	// В сохранённом блобе ровно одна запись по уроку, не две.
	raw, err := store.Get(ctx, "user_progress:"+user.String())
	if err != nil {
		t.Fatalf("store.Get: %v", err)
	}
	var list []domain.UserProgress
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(list) != 1 || len(list[0].LessonsProgress) != 1 {
		t.Fatalf("persisted blob: %+v", list)
	}
}

func TestRecordCompletionUpsertLatestWins(t *testing.T) {
	ctx := context.Background()
	svc := newProgressService(kvstore.NewMemoryStore(), newMirrorRecorder())
	user := uuid.New()

	svc.RecordCompletion(ctx, user, "math-1", "math-1-1", false)
	if svc.IsLessonDone(ctx, user, "math-1", "math-1-1") {
		t.Fatalf("lesson done after failed quiz")
	}

	svc.RecordCompletion(ctx, user, "math-1", "math-1-1", true)
	if !svc.IsLessonDone(ctx, user, "math-1", "math-1-1") {
		t.Fatalf("lesson not done after passed quiz")
	}

	// И обратно: свежий провал затирает старый успех.
	svc.RecordCompletion(ctx, user, "math-1", "math-1-1", false)
	if svc.IsLessonDone(ctx, user, "math-1", "math-1-1") {
		t.Fatalf("stale pass survived upsert")
	}
}

func TestCourseProgressRounding(t *testing.T) {
	ctx := context.Background()
	svc := newProgressService(kvstore.NewMemoryStore(), newMirrorRecorder())
	user := uuid.New()

	if got := svc.CourseProgress(ctx, user, "math-1"); got != 0 {
		t.Fatalf("empty course progress: got %d", got)
	}

	before := svc.CompletedCoursesCount(ctx, user)

	svc.RecordCompletion(ctx, user, "math-1", "math-1-1", true)
	svc.RecordCompletion(ctx, user, "math-1", "math-1-2", true)
	if got := svc.CourseProgress(ctx, user, "math-1"); got != 67 {
		t.Fatalf("2/3 lessons: got %d, want 67", got)
	}

	if got := svc.RecordCompletion(ctx, user, "math-1", "math-1-3", true); got != 100 {
		t.Fatalf("RecordCompletion returned %d, want 100", got)
	}
	if got := svc.CompletedCoursesCount(ctx, user); got != before+1 {
		t.Fatalf("CompletedCoursesCount: got %d, want %d", got, before+1)
	}
}

func TestCourseProgressUnknownCourse(t *testing.T) {
	ctx := context.Background()
	svc := newProgressService(kvstore.NewMemoryStore(), newMirrorRecorder())

	if got := svc.CourseProgress(ctx, uuid.New(), "no-such-course"); got != 0 {
		t.Fatalf("course without lessons: got %d, want 0", got)
	}
}

func TestOverallProgressIsUnweightedMean(t *testing.T) {
	ctx := context.Background()
	svc := newProgressService(kvstore.NewMemoryStore(), newMirrorRecorder())
	user := uuid.New()

	// math-1 = 100%, math-2 = 67%, остальные четыре курса по 0%.
	svc.RecordCompletion(ctx, user, "math-1", "math-1-1", true)
	svc.RecordCompletion(ctx, user, "math-1", "math-1-2", true)
	svc.RecordCompletion(ctx, user, "math-1", "math-1-3", true)
	svc.RecordCompletion(ctx, user, "math-2", "math-2-1", true)
	svc.RecordCompletion(ctx, user, "math-2", "math-2-2", true)

	// round((100+67+0+0+0+0)/6) = round(27.83) = 28
	if got := svc.OverallProgress(ctx, user); got != 28 {
		t.Fatalf("OverallProgress: got %d, want 28", got)
	}
}

func TestCompletedLessonsCountExcludesStaleLessons(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	user := uuid.New()

	// Блоб с уроком, которого нет в каталоге — каталог «усох».
	stale := []domain.UserProgress{{
		CourseID: "math-1",
		LessonsProgress: []domain.LessonProgress{
			{LessonID: "math-1-1", Completed: true, QuizPassed: true, CompletedAt: time.Now()},
			{LessonID: "math-1-99", Completed: true, QuizPassed: true, CompletedAt: time.Now()},
		},
	}}
	raw, _ := json.Marshal(stale)
	if err := store.Set(ctx, "user_progress:"+user.String(), string(raw), 0); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := newProgressService(store, newMirrorRecorder())
	if got := svc.CompletedLessonsCount(ctx, user); got != 1 {
		t.Fatalf("CompletedLessonsCount: got %d, want 1", got)
	}
}

func TestHydrationFromPersistedState(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	user := uuid.New()

	first := newProgressService(store, newMirrorRecorder())
	first.RecordCompletion(ctx, user, "math-1", "math-1-1", true)

	// Новый инстанс поверх того же хранилища видит сохранённое.
	second := newProgressService(store, newMirrorRecorder())
	if !second.IsLessonDone(ctx, user, "math-1", "math-1-1") {
		t.Fatalf("persisted progress lost across restart")
	}
}

func TestCorruptBlobDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	user := uuid.New()
	if err := store.Set(ctx, "user_progress:"+user.String(), "{not json", 0); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := newProgressService(store, newMirrorRecorder())
	if got := svc.CompletedLessonsCount(ctx, user); got != 0 {
		t.Fatalf("corrupt blob: got %d lessons", got)
	}

	// После деградации запись работает как с чистого листа.
	svc.RecordCompletion(ctx, user, "math-1", "math-1-1", true)
	if !svc.IsLessonDone(ctx, user, "math-1", "math-1-1") {
		t.Fatalf("recording after corrupt blob failed")
	}
}

func TestPersistenceFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	svc := newProgressService(brokenStore{}, newMirrorRecorder())
	user := uuid.New()

	if got := svc.RecordCompletion(ctx, user, "math-1", "math-1-1", true); got != 33 {
		t.Fatalf("RecordCompletion with broken store: got %d, want 33", got)
	}
	if !svc.IsLessonDone(ctx, user, "math-1", "math-1-1") {
		t.Fatalf("in-memory state rolled back on persistence failure")
	}
}

func TestMirrorReceivesCompositeKey(t *testing.T) {
	ctx := context.Background()
	mirror := newMirrorRecorder()
	svc := newProgressService(kvstore.NewMemoryStore(), mirror)
	user := uuid.New()

	svc.RecordCompletion(ctx, user, "physics-1", "physics-1-2", true)

	rec := mirror.wait(t)
	if rec.UserID != user || rec.CourseID != "physics-1" || rec.LessonID != "physics-1-2" {
		t.Fatalf("mirror record: %+v", rec)
	}
	if !rec.Completed || !rec.QuizPassed {
		t.Fatalf("mirror flags: %+v", rec)
	}
}

func TestMirrorFailureDoesNotAffectLocalState(t *testing.T) {
	ctx := context.Background()
	mirror := newMirrorRecorder()
	mirror.fail = true
	svc := newProgressService(kvstore.NewMemoryStore(), mirror)
	user := uuid.New()

	svc.RecordCompletion(ctx, user, "math-1", "math-1-1", true)
	if !svc.IsLessonDone(ctx, user, "math-1", "math-1-1") {
		t.Fatalf("mirror failure leaked into local progress")
	}
}

func TestEndToEndScenario(t *testing.T) {
	ctx := context.Background()
	svc := newProgressService(kvstore.NewMemoryStore(), newMirrorRecorder())
	user := uuid.New()

	summary := svc.Summary(ctx, user)
	if summary.Overall != 0 || summary.CompletedLessons != 0 {
		t.Fatalf("fresh summary: %+v", summary)
	}

	svc.RecordCompletion(ctx, user, "math-1", "math-1-1", true)
	svc.RecordCompletion(ctx, user, "math-1", "math-1-2", true)
	if got := svc.CourseProgress(ctx, user, "math-1"); got != 67 {
		t.Fatalf("after 2 lessons: got %d, want 67", got)
	}

	svc.RecordCompletion(ctx, user, "math-1", "math-1-3", true)
	summary = svc.Summary(ctx, user)
	if summary.Courses["math-1"] != 100 {
		t.Fatalf("course percent: %+v", summary)
	}
	if summary.CompletedCourses != 1 || summary.CompletedLessons != 3 {
		t.Fatalf("summary counts: %+v", summary)
	}
}
