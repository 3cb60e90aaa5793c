// services/activity_service.go - Activity resource business logic
package services

import (
	"time"

	"gorm.io/gorm"

	"octofit/apperr"
	"octofit/models"
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

type CreateActivityInput struct {
	User           models.UserRef      `json:"user" validate:"required"`
	ActivityType   models.ActivityType `json:"activity_type" validate:"required"`
	Duration       int                 `json:"duration" validate:"required,gt=0"`
	Distance       *float64            `json:"distance" validate:"omitempty,gte=0"`
	CaloriesBurned int                 `json:"calories_burned" validate:"gte=0"`
	Date           time.Time           `json:"date" validate:"required"`
	Notes          string              `json:"notes"`
}

type UpdateActivityInput struct {
	User           *models.UserRef      `json:"user"`
	ActivityType   *models.ActivityType `json:"activity_type"`
	Duration       *int                 `json:"duration" validate:"omitempty,gt=0"`
	Distance       *float64             `json:"distance" validate:"omitempty,gte=0"`
	CaloriesBurned *int                 `json:"calories_burned" validate:"omitempty,gte=0"`
	Date           *time.Time           `json:"date"`
	Notes          *string              `json:"notes"`
}

func (s *ActivityService) CreateActivity(input CreateActivityInput) (*models.Activity, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if !input.ActivityType.Valid() {
		return nil, apperr.Validation("activity_type must be one of: running, cycling, swimming, gym, yoga, walking, other")
	}

	activity := &models.Activity{
		User:           input.User,
		ActivityType:   input.ActivityType,
		Duration:       input.Duration,
		Distance:       input.Distance,
		CaloriesBurned: input.CaloriesBurned,
		Date:           input.Date,
		Notes:          input.Notes,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.db.Create(activity).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return activity, nil
}

func (s *ActivityService) GetActivity(id string) (*models.Activity, error) {
	if err := checkID(id, "activity"); err != nil {
		return nil, err
	}

	var activity models.Activity
	if err := s.db.First(&activity, "id = ?", id).Error; err != nil {
		return nil, lookupErr(err, "activity")
	}
	return &activity, nil
}

func (s *ActivityService) ListActivities() ([]models.Activity, error) {
	var activities []models.Activity
	if err := s.db.Order("date DESC").Find(&activities).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return activities, nil
}

func (s *ActivityService) ListActivitiesByUser(user string) ([]models.Activity, error) {
	if err := requireParam(user, "user"); err != nil {
		return nil, err
	}

	var activities []models.Activity
	// "user" needs quoting: reserved word in Postgres.
	if err := s.db.Where(`"user" = ?`, user).Order("date DESC").Find(&activities).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return activities, nil
}

func (s *ActivityService) ListActivitiesByType(activityType string) ([]models.Activity, error) {
	if err := requireParam(activityType, "type"); err != nil {
		return nil, err
	}

	var activities []models.Activity
	if err := s.db.Where("activity_type = ?", activityType).Order("date DESC").Find(&activities).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return activities, nil
}

// ListRecentActivities returns the most recently dated activities, truncated
// to limit. Equal dates keep insertion order.
func (s *ActivityService) ListRecentActivities(limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.db.Order("date DESC, created_at ASC").
		Limit(normalizeLimit(limit)).
		Find(&activities).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return activities, nil
}

func (s *ActivityService) UpdateActivity(id string, input UpdateActivityInput) (*models.Activity, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.ActivityType != nil && !input.ActivityType.Valid() {
		return nil, apperr.Validation("activity_type must be one of: running, cycling, swimming, gym, yoga, walking, other")
	}

	activity, err := s.GetActivity(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.User != nil {
		updates["user"] = *input.User
	}
	if input.ActivityType != nil {
		updates["activity_type"] = *input.ActivityType
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.Distance != nil {
		updates["distance"] = *input.Distance
	}
	if input.CaloriesBurned != nil {
		updates["calories_burned"] = *input.CaloriesBurned
	}
	if input.Date != nil {
		updates["date"] = *input.Date
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(activity).Updates(updates).Error; err != nil {
			return nil, apperr.Store(err)
		}
	}
	return activity, nil
}

func (s *ActivityService) DeleteActivity(id string) error {
	if err := checkID(id, "activity"); err != nil {
		return err
	}

	res := s.db.Delete(&models.Activity{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("activity not found")
	}
	return nil
}
