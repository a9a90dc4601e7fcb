package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	LinkStatusPending  = "pending"
	LinkStatusApproved = "approved"
	LinkStatusRejected = "rejected"
)

// TrackingLink — связь опекун→ученик. Создаётся опекуном в статусе pending,
// разрешается только самим учеником, после approved/rejected статус финальный.
type TrackingLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ParentID  uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_parent_student" json:"parent_id"`
	StudentID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_parent_student" json:"student_id"`
	Status    string    `gorm:"default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (TrackingLink) TableName() string {
	return "user_links"
}

func ValidLinkDecision(status string) bool {
	return status == LinkStatusApproved || status == LinkStatusRejected
}

// StudentProgress — сводка прогресса ученика для экрана опекуна.
// Заполняется только для approved-связей.
type StudentProgress struct {
	CompletedCount int `json:"completed_count"`
	TotalLessons   int `json:"total_lessons"`
	Percentage     int `json:"percentage"`
}

type LinkedStudent struct {
	LinkID      uuid.UUID        `json:"link_id"`
	StudentID   uuid.UUID        `json:"student_id"`
	Status      string           `json:"status"`
	FullName    string           `json:"full_name"`
	Progress    *StudentProgress `json:"progress,omitempty"`
	RequestedAt time.Time        `json:"requested_at"`
}

type TrackingRequest struct {
	LinkID     uuid.UUID `json:"link_id"`
	ParentID   uuid.UUID `json:"parent_id"`
	ParentName string    `json:"parent_name"`
	ParentRole string    `json:"parent_role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
