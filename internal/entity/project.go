package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Project struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	Title       string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Link        string  `gorm:"type:text;not null"`
	Repository  *string `gorm:"type:text"`

	Stack  datatypes.JSON `gorm:"type:jsonb"`
	Images datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
