package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Opportunity is a job posting created by a recruiter. CandidateID is
// filled in when a candidate applies.
type Opportunity struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Salary      float64   `gorm:"not null"`
	Mode        string    `gorm:"type:varchar(50);not null"`
	Type        string    `gorm:"type:varchar(50)"`
	Remote      string    `gorm:"type:varchar(50)"`

	Stack    datatypes.JSON `gorm:"type:jsonb"`
	Benefits datatypes.JSON `gorm:"type:jsonb"`
	Skills   datatypes.JSON `gorm:"type:jsonb"`

	RecruiterID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CandidateID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
