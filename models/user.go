// models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string       `json:"id" gorm:"primaryKey;size:36"`
	Name         string       `json:"name" gorm:"not null;size:200"`
	Email        string       `json:"email" gorm:"uniqueIndex;not null;size:254"`
	PasswordHash string       `json:"-" gorm:"not null"`
	Avatar       string       `json:"avatar,omitempty" gorm:"size:500"`
	FitnessLevel FitnessLevel `json:"fitness_level" gorm:"size:50;default:'beginner'"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the opaque identifier at insertion.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
