package repository

import (
	"context"
	"errors"

	"learnplatform/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LinkRepo interface {
	Create(ctx context.Context, link *domain.TrackingLink) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TrackingLink, error)
	GetByPair(ctx context.Context, parentID, studentID uuid.UUID) (*domain.TrackingLink, error)
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]domain.TrackingLink, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.TrackingLink, error)
	ResolvePending(ctx context.Context, id uuid.UUID, status string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type linkRepo struct {
	db *gorm.DB
}

func NewLinkRepo(db *gorm.DB) LinkRepo {
	return &linkRepo{db: db}
}

func (r *linkRepo) Create(ctx context.Context, link *domain.TrackingLink) error {
	err := r.db.WithContext(ctx).Create(link).Error
	// Страховка от гонки: уникальный индекс (parent_id, student_id)
	// срабатывает, даже если pre-check в usecase проскочил.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateLink
	}
	return err
}

func (r *linkRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TrackingLink, error) {
	var link domain.TrackingLink
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *linkRepo) GetByPair(ctx context.Context, parentID, studentID uuid.UUID) (*domain.TrackingLink, error) {
	var link domain.TrackingLink
	err := r.db.WithContext(ctx).
		Where("parent_id = ? AND student_id = ?", parentID, studentID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *linkRepo) ListByParent(ctx context.Context, parentID uuid.UUID) ([]domain.TrackingLink, error) {
	var links []domain.TrackingLink
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at desc").
		Find(&links).Error
	return links, err
}

// ListByStudent — свежие запросы первыми, они ждут решения ученика.
func (r *linkRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.TrackingLink, error) {
	var links []domain.TrackingLink
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&links).Error
	return links, err
}

// ResolvePending переводит pending-связь в финальный статус. Условие по
// статусу в WHERE гарантирует, что approved/rejected уже не перезаписать.
func (r *linkRepo) ResolvePending(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.TrackingLink{}).
		Where("id = ? AND status = ?", id, domain.LinkStatusPending).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *linkRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.TrackingLink{}).Error
}
