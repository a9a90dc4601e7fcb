package repository

import (
	"context"

	"learnplatform/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepo interface {
	Upsert(ctx context.Context, rec *domain.ProgressRecord) error
	CompletedLessonIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type progressRepo struct {
	db *gorm.DB
}

func NewProgressRepo(db *gorm.DB) ProgressRepo {
	return &progressRepo{db: db}
}

// Upsert идемпотентен по составному ключу: повторная запись того же урока
// перезаписывает флаги, а не плодит строки.
func (r *progressRepo) Upsert(ctx context.Context, rec *domain.ProgressRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "course_id"}, {Name: "lesson_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"completed", "quiz_passed", "completed_at",
			}),
		}).
		Create(rec).Error
}

// CompletedLessonIDs отдаёт уроки, засчитанные целиком (видео + квиз).
func (r *progressRepo) CompletedLessonIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&domain.ProgressRecord{}).
		Where("user_id = ? AND completed = ? AND quiz_passed = ?", userID, true, true).
		Pluck("lesson_id", &ids).Error
	return ids, err
}
