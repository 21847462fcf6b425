package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserRole string

const (
	UserRoleCandidate UserRole = "Candidato"
	UserRoleRecruiter UserRole = "Recrutador"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	Role         UserRole  `gorm:"type:varchar(20);not null"`
	Avatar       *string   `gorm:"type:text"`

	TwoStepsAuth          bool `gorm:"default:false"`
	TwoStepsCode          *string
	TwoStepsCodeExpiresAt *time.Time

	Resume *string        `gorm:"type:text"`
	Skills datatypes.JSON `gorm:"type:jsonb"`
	Stack  datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Projects []Project
}
