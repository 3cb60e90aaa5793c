// models/team.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	Name        string     `json:"name" gorm:"not null;size:200"`
	Description string     `json:"description" gorm:"type:text"`
	Captain     UserRef    `json:"captain" gorm:"size:200"`
	Members     MemberList `json:"members" gorm:"serializer:json"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (Team) TableName() string {
	return "teams"
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
