package usecase

import (
	"context"
	"errors"

	"learnplatform/internal/catalog"
	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/repository"
	"learnplatform/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier уведомляет ученика о новом запросе. Отправка best-effort.
type Notifier interface {
	SendTrackingRequest(toEmail, guardianName string) error
}

// LinkService управляет связями опекун↔ученик: pending при создании,
// approved/rejected выставляет только сам ученик, дальше статус финальный.
type LinkService struct {
	links    repository.LinkRepo
	profiles repository.ProfileRepo
	mirror   repository.ProgressRepo
	catalog  *catalog.Catalog
	notifier Notifier
	log      *logger.Logger
}

func NewLinkService(
	links repository.LinkRepo,
	profiles repository.ProfileRepo,
	mirror repository.ProgressRepo,
	cat *catalog.Catalog,
	notifier Notifier,
	log *logger.Logger,
) *LinkService {
	return &LinkService{
		links:    links,
		profiles: profiles,
		mirror:   mirror,
		catalog:  cat,
		notifier: notifier,
		log:      log.With("service", "links"),
	}
}

// Request создаёт pending-связь по email ученика.
func (s *LinkService) Request(ctx context.Context, parentID uuid.UUID, studentEmail string) (*domain.TrackingLink, error) {
	student, err := s.profiles.GetByEmail(ctx, studentEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}

	if student.ID == parentID {
		return nil, domain.ErrSelfLinkNotAllowed
	}

	// Дружелюбная проверка дубликата; гонку закрывает уникальный индекс.
	if _, err := s.links.GetByPair(ctx, parentID, student.ID); err == nil {
		return nil, domain.ErrDuplicateLink
	} else if !errors.Is(err, domain.ErrLinkNotFound) {
		return nil, err
	}

	link := &domain.TrackingLink{
		ID:        uuid.New(),
		ParentID:  parentID,
		StudentID: student.ID,
		Status:    domain.LinkStatusPending,
	}
	if err := s.links.Create(ctx, link); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		guardianName := "Ваш опекун"
		if guardian, err := s.profiles.GetByID(ctx, parentID); err == nil {
			guardianName = guardian.FullName
		}
		go func(email, name string) {
			if err := s.notifier.SendTrackingRequest(email, name); err != nil {
				s.log.Warn("tracking request email failed", "student_id", student.ID, "err", err)
			}
		}(student.Email, guardianName)
	}

	return link, nil
}

// ListForGuardian отдаёт учеников опекуна. Блок прогресса заполняется
// только для approved-связей — до одобрения опекун видит лишь статус.
func (s *LinkService) ListForGuardian(ctx context.Context, parentID uuid.UUID) ([]domain.LinkedStudent, error) {
	links, err := s.links.ListByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []domain.LinkedStudent{}, nil
	}

	studentIDs := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		studentIDs = append(studentIDs, link.StudentID)
	}
	profiles, err := s.profiles.GetByIDs(ctx, studentIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(profiles))
	for _, p := range profiles {
		names[p.ID] = p.FullName
	}

	result := make([]domain.LinkedStudent, 0, len(links))
	for _, link := range links {
		item := domain.LinkedStudent{
			LinkID:      link.ID,
			StudentID:   link.StudentID,
			Status:      link.Status,
			FullName:    names[link.StudentID],
			RequestedAt: link.CreatedAt,
		}
		if link.Status == domain.LinkStatusApproved {
			progress, err := s.studentProgress(ctx, link.StudentID)
			if err != nil {
				// Зеркало недоступно — показываем ученика без цифр.
				s.log.Warn("student progress lookup failed", "student_id", link.StudentID, "err", err)
			} else {
				item.Progress = progress
			}
		}
		result = append(result, item)
	}
	return result, nil
}

// studentProgress считает прогресс по зеркалу, отбрасывая уроки,
// которых уже нет в каталоге.
func (s *LinkService) studentProgress(ctx context.Context, studentID uuid.UUID) (*domain.StudentProgress, error) {
	lessonIDs, err := s.mirror.CompletedLessonIDs(ctx, studentID)
	if err != nil {
		return nil, err
	}
	count := 0
	for _, id := range lessonIDs {
		if s.catalog.HasLesson(id) {
			count++
		}
	}
	total := s.catalog.TotalLessons()
	return &domain.StudentProgress{
		CompletedCount: count,
		TotalLessons:   total,
		Percentage:     roundPercent(count, total),
	}, nil
}

// ListForStudent — все запросы к ученику, новые первыми.
func (s *LinkService) ListForStudent(ctx context.Context, studentID uuid.UUID) ([]domain.TrackingRequest, error) {
	links, err := s.links.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []domain.TrackingRequest{}, nil
	}

	parentIDs := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		parentIDs = append(parentIDs, link.ParentID)
	}
	profiles, err := s.profiles.GetByIDs(ctx, parentIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]domain.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	result := make([]domain.TrackingRequest, 0, len(links))
	for _, link := range links {
		guardian := byID[link.ParentID]
		result = append(result, domain.TrackingRequest{
			LinkID:     link.ID,
			ParentID:   link.ParentID,
			ParentName: guardian.FullName,
			ParentRole: guardian.Role,
			Status:     link.Status,
			CreatedAt:  link.CreatedAt,
		})
	}
	return result, nil
}

// Resolve выставляет решение ученика по pending-запросу.
func (s *LinkService) Resolve(ctx context.Context, linkID, studentID uuid.UUID, decision string) (*domain.TrackingLink, error) {
	link, err := s.links.GetByID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if link.StudentID != studentID {
		return nil, domain.ErrNotYourRequest
	}

	ok, err := s.links.ResolvePending(ctx, linkID, decision)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrRequestResolved
	}

	link.Status = decision
	return link, nil
}

// Remove — опекун удаляет связь в любом статусе.
func (s *LinkService) Remove(ctx context.Context, linkID, parentID uuid.UUID) error {
	link, err := s.links.GetByID(ctx, linkID)
	if err != nil {
		return err
	}
	if link.ParentID != parentID {
		return domain.ErrNotYourLink
	}
	return s.links.Delete(ctx, linkID)
}
