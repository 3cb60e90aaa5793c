// models/workout.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Workout struct {
	ID                 string       `json:"id" gorm:"primaryKey;size:36"`
	Title              string       `json:"title" gorm:"not null;size:200"`
	Description        string       `json:"description" gorm:"type:text"`
	DifficultyLevel    FitnessLevel `json:"difficulty_level" gorm:"index;size:50"`
	Duration           int          `json:"duration"` // minutes
	ActivityType       string       `json:"activity_type" gorm:"index;size:100"` // free text, not the enum
	TargetFitnessLevel FitnessLevel `json:"target_fitness_level" gorm:"index;size:50"`
	Instructions       string       `json:"instructions" gorm:"type:text"`
	CreatedAt          time.Time    `json:"created_at"`
}

func (Workout) TableName() string {
	return "workouts"
}

func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
