// models/activity.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Activity struct {
	ID             string       `json:"id" gorm:"primaryKey;size:36"`
	User           UserRef      `json:"user" gorm:"index;size:200"`
	ActivityType   ActivityType `json:"activity_type" gorm:"index;size:100"`
	Duration       int          `json:"duration"` // minutes
	Distance       *float64     `json:"distance,omitempty"` // kilometers
	CaloriesBurned int          `json:"calories_burned" gorm:"default:0"`
	Date           time.Time    `json:"date"`
	Notes          string       `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time    `json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
