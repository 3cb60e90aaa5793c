// services/workout_service.go - Workout catalog business logic
package services

import (
	"time"

	"gorm.io/gorm"

	"octofit/apperr"
	"octofit/models"
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

type CreateWorkoutInput struct {
	Title              string              `json:"title" validate:"required,max=200"`
	Description        string              `json:"description" validate:"required"`
	DifficultyLevel    models.FitnessLevel `json:"difficulty_level" validate:"required,oneof=beginner intermediate advanced"`
	Duration           int                 `json:"duration" validate:"required,gt=0"`
	ActivityType       string              `json:"activity_type" validate:"required,max=100"`
	TargetFitnessLevel models.FitnessLevel `json:"target_fitness_level" validate:"required,oneof=beginner intermediate advanced"`
	Instructions       string              `json:"instructions" validate:"required"`
}

type UpdateWorkoutInput struct {
	Title              *string              `json:"title" validate:"omitempty,max=200"`
	Description        *string              `json:"description"`
	DifficultyLevel    *models.FitnessLevel `json:"difficulty_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration           *int                 `json:"duration" validate:"omitempty,gt=0"`
	ActivityType       *string              `json:"activity_type" validate:"omitempty,max=100"`
	TargetFitnessLevel *models.FitnessLevel `json:"target_fitness_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Instructions       *string              `json:"instructions"`
}

func (s *WorkoutService) CreateWorkout(input CreateWorkoutInput) (*models.Workout, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	workout := &models.Workout{
		Title:              input.Title,
		Description:        input.Description,
		DifficultyLevel:    input.DifficultyLevel,
		Duration:           input.Duration,
		ActivityType:       input.ActivityType,
		TargetFitnessLevel: input.TargetFitnessLevel,
		Instructions:       input.Instructions,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.db.Create(workout).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return workout, nil
}

func (s *WorkoutService) GetWorkout(id string) (*models.Workout, error) {
	if err := checkID(id, "workout"); err != nil {
		return nil, err
	}

	var workout models.Workout
	if err := s.db.First(&workout, "id = ?", id).Error; err != nil {
		return nil, lookupErr(err, "workout")
	}
	return &workout, nil
}

func (s *WorkoutService) ListWorkouts() ([]models.Workout, error) {
	var workouts []models.Workout
	if err := s.db.Find(&workouts).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return workouts, nil
}

func (s *WorkoutService) ListWorkoutsByDifficulty(difficulty string) ([]models.Workout, error) {
	if err := requireParam(difficulty, "difficulty"); err != nil {
		return nil, err
	}

	var workouts []models.Workout
	if err := s.db.Where("difficulty_level = ?", difficulty).Find(&workouts).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return workouts, nil
}

func (s *WorkoutService) ListWorkoutsByFitnessLevel(level string) ([]models.Workout, error) {
	if err := requireParam(level, "level"); err != nil {
		return nil, err
	}

	var workouts []models.Workout
	if err := s.db.Where("target_fitness_level = ?", level).Find(&workouts).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return workouts, nil
}

func (s *WorkoutService) ListWorkoutsByActivityType(activityType string) ([]models.Workout, error) {
	if err := requireParam(activityType, "type"); err != nil {
		return nil, err
	}

	var workouts []models.Workout
	if err := s.db.Where("activity_type = ?", activityType).Find(&workouts).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return workouts, nil
}

func (s *WorkoutService) UpdateWorkout(id string, input UpdateWorkoutInput) (*models.Workout, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	workout, err := s.GetWorkout(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.DifficultyLevel != nil {
		updates["difficulty_level"] = *input.DifficultyLevel
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.ActivityType != nil {
		updates["activity_type"] = *input.ActivityType
	}
	if input.TargetFitnessLevel != nil {
		updates["target_fitness_level"] = *input.TargetFitnessLevel
	}
	if input.Instructions != nil {
		updates["instructions"] = *input.Instructions
	}

	if len(updates) > 0 {
		if err := s.db.Model(workout).Updates(updates).Error; err != nil {
			return nil, apperr.Store(err)
		}
	}
	return workout, nil
}

func (s *WorkoutService) DeleteWorkout(id string) error {
	if err := checkID(id, "workout"); err != nil {
		return err
	}

	res := s.db.Delete(&models.Workout{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("workout not found")
	}
	return nil
}
