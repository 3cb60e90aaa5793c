// services/leaderboard_service.go - Leaderboard resource business logic
package services

import (
	"time"

	"gorm.io/gorm"

	"octofit/apperr"
	"octofit/models"
)

// LeaderboardService stores caller-supplied rankings. Rank recomputation is a
// batch concern that lives outside this service (see cmd/seed).
type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

type CreateLeaderboardEntryInput struct {
	User        models.UserRef `json:"user" validate:"required"`
	Team        models.TeamRef `json:"team"`
	TotalPoints int            `json:"total_points" validate:"gte=0"`
	Rank        int            `json:"rank" validate:"required,gt=0"`
}

type UpdateLeaderboardEntryInput struct {
	User        *models.UserRef `json:"user"`
	Team        *models.TeamRef `json:"team"`
	TotalPoints *int            `json:"total_points" validate:"omitempty,gte=0"`
	Rank        *int            `json:"rank" validate:"omitempty,gt=0"`
}

func (s *LeaderboardService) CreateEntry(input CreateLeaderboardEntryInput) (*models.LeaderboardEntry, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	entry := &models.LeaderboardEntry{
		User:        input.User,
		Team:        input.Team,
		TotalPoints: input.TotalPoints,
		Rank:        input.Rank,
		LastUpdated: time.Now().UTC(),
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return entry, nil
}

func (s *LeaderboardService) GetEntry(id string) (*models.LeaderboardEntry, error) {
	if err := checkID(id, "leaderboard entry"); err != nil {
		return nil, err
	}

	var entry models.LeaderboardEntry
	if err := s.db.First(&entry, "id = ?", id).Error; err != nil {
		return nil, lookupErr(err, "leaderboard entry")
	}
	return &entry, nil
}

func (s *LeaderboardService) ListEntries() ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := s.db.Order("rank ASC, total_points DESC").Find(&entries).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return entries, nil
}

// TopEntries returns up to limit entries ordered by rank ascending, points
// descending.
func (s *LeaderboardService) TopEntries(limit int) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	err := s.db.Order("rank ASC, total_points DESC").
		Limit(normalizeLimit(limit)).
		Find(&entries).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return entries, nil
}

func (s *LeaderboardService) ListEntriesByTeam(team string) ([]models.LeaderboardEntry, error) {
	if err := requireParam(team, "team"); err != nil {
		return nil, err
	}

	var entries []models.LeaderboardEntry
	err := s.db.Where("team = ?", team).
		Order("rank ASC, total_points DESC").
		Find(&entries).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return entries, nil
}

func (s *LeaderboardService) UpdateEntry(id string, input UpdateLeaderboardEntryInput) (*models.LeaderboardEntry, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	entry, err := s.GetEntry(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.User != nil {
		updates["user"] = *input.User
	}
	if input.Team != nil {
		updates["team"] = *input.Team
	}
	if input.TotalPoints != nil {
		updates["total_points"] = *input.TotalPoints
	}
	if input.Rank != nil {
		updates["rank"] = *input.Rank
	}

	if len(updates) > 0 {
		updates["last_updated"] = time.Now().UTC()
		if err := s.db.Model(entry).Updates(updates).Error; err != nil {
			return nil, apperr.Store(err)
		}
	}
	return entry, nil
}

func (s *LeaderboardService) DeleteEntry(id string) error {
	if err := checkID(id, "leaderboard entry"); err != nil {
		return err
	}

	res := s.db.Delete(&models.LeaderboardEntry{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("leaderboard entry not found")
	}
	return nil
}
