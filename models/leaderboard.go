// models/leaderboard.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaderboardEntry ranks one user. Rank is caller-supplied; uniqueness is not
// enforced, and the natural ordering is rank ascending then points descending.
type LeaderboardEntry struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	User        UserRef   `json:"user" gorm:"size:200"`
	Team        TeamRef   `json:"team" gorm:"index;size:200"`
	TotalPoints int       `json:"total_points" gorm:"default:0"`
	Rank        int       `json:"rank" gorm:"default:0"`
	LastUpdated time.Time `json:"last_updated" gorm:"autoUpdateTime"`
}

func (LeaderboardEntry) TableName() string {
	return "leaderboard"
}

func (e *LeaderboardEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
