package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudent = "student"
	RoleParent  = "parent"
	RoleTeacher = "teacher"
)

type Profile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	FullName     string    `json:"full_name"`
	Role         string    `gorm:"default:'student'" json:"role"`
	PasswordHash string    `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleParent, RoleTeacher:
		return true
	}
	return false
}
