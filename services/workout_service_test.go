package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"octofit/apperr"
	"octofit/models"
)

func validWorkout() CreateWorkoutInput {
	return CreateWorkoutInput{
		Title:              "Super Soldier Morning Run",
		Description:        "Start your day with an intense morning run",
		DifficultyLevel:    models.FitnessAdvanced,
		Duration:           45,
		ActivityType:       "running",
		TargetFitnessLevel: models.FitnessAdvanced,
		Instructions:       "1. Warm up\n2. Run\n3. Cool down",
	}
}

func TestCreateWorkout(t *testing.T) {
	svc := NewWorkoutService(newTestDB(t))

	workout, err := svc.CreateWorkout(validWorkout())
	require.NoError(t, err)
	assert.NotEmpty(t, workout.ID)

	found, err := svc.GetWorkout(workout.ID)
	require.NoError(t, err)
	assert.Equal(t, "Super Soldier Morning Run", found.Title)
}

func TestCreateWorkoutValidation(t *testing.T) {
	svc := NewWorkoutService(newTestDB(t))

	cases := []struct {
		name   string
		mutate func(*CreateWorkoutInput)
	}{
		{"missing title", func(in *CreateWorkoutInput) { in.Title = "" }},
		{"missing description", func(in *CreateWorkoutInput) { in.Description = "" }},
		{"bad difficulty", func(in *CreateWorkoutInput) { in.DifficultyLevel = "extreme" }},
		{"zero duration", func(in *CreateWorkoutInput) { in.Duration = 0 }},
		{"missing activity type", func(in *CreateWorkoutInput) { in.ActivityType = "" }},
		{"bad target level", func(in *CreateWorkoutInput) { in.TargetFitnessLevel = "elite" }},
		{"missing instructions", func(in *CreateWorkoutInput) { in.Instructions = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validWorkout()
			tc.mutate(&input)

			_, err := svc.CreateWorkout(input)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
		})
	}
}

func TestWorkoutFilters(t *testing.T) {
	svc := NewWorkoutService(newTestDB(t))

	run := validWorkout()
	_, err := svc.CreateWorkout(run)
	require.NoError(t, err)

	walk := validWorkout()
	walk.Title = "Beginner Hero Walk"
	walk.DifficultyLevel = models.FitnessBeginner
	walk.ActivityType = "walking"
	walk.TargetFitnessLevel = models.FitnessBeginner
	_, err = svc.CreateWorkout(walk)
	require.NoError(t, err)

	byDifficulty, err := svc.ListWorkoutsByDifficulty("beginner")
	require.NoError(t, err)
	require.Len(t, byDifficulty, 1)
	assert.Equal(t, "Beginner Hero Walk", byDifficulty[0].Title)

	byLevel, err := svc.ListWorkoutsByFitnessLevel("advanced")
	require.NoError(t, err)
	assert.Len(t, byLevel, 1)

	byType, err := svc.ListWorkoutsByActivityType("running")
	require.NoError(t, err)
	assert.Len(t, byType, 1)

	for _, call := range []func() error{
		func() error { _, err := svc.ListWorkoutsByDifficulty(""); return err },
		func() error { _, err := svc.ListWorkoutsByFitnessLevel(""); return err },
		func() error { _, err := svc.ListWorkoutsByActivityType(""); return err },
	} {
		err := call()
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	}
}

func TestUpdateWorkout(t *testing.T) {
	svc := NewWorkoutService(newTestDB(t))

	workout, err := svc.CreateWorkout(validWorkout())
	require.NoError(t, err)

	duration := 60
	level := models.FitnessIntermediate
	updated, err := svc.UpdateWorkout(workout.ID, UpdateWorkoutInput{
		Duration:        &duration,
		DifficultyLevel: &level,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, updated.Duration)
	assert.Equal(t, models.FitnessIntermediate, updated.DifficultyLevel)
}

func TestDeleteWorkout(t *testing.T) {
	svc := NewWorkoutService(newTestDB(t))

	workout, err := svc.CreateWorkout(validWorkout())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWorkout(workout.ID))

	_, err = svc.GetWorkout(workout.ID)
	assert.True(t, apperr.IsNotFound(err))
}
