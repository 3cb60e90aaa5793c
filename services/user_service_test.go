package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"octofit/apperr"
	"octofit/models"
)

func TestCreateUserRoundTrip(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	created, err := svc.CreateUser(CreateUserInput{
		Name:         "Iron Man",
		Email:        "tony.stark@marvel.com",
		Password:     "marvel123",
		Avatar:       "https://example.com/ironman.jpg",
		FitnessLevel: models.FitnessAdvanced,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	found, err := svc.GetUserByEmail("tony.stark@marvel.com")
	require.NoError(t, err)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Iron Man", found.Name)
	assert.Equal(t, "https://example.com/ironman.jpg", found.Avatar)
	assert.Equal(t, models.FitnessAdvanced, found.FitnessLevel)

	// Only the hash is stored, and it verifies.
	assert.NotEqual(t, "marvel123", found.PasswordHash)
	assert.True(t, svc.VerifyPassword(found, "marvel123"))
	assert.False(t, svc.VerifyPassword(found, "dc123"))
}

func TestCreateUserDefaultsFitnessLevel(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.CreateUser(CreateUserInput{
		Name:     "Hulk",
		Email:    "bruce.banner@marvel.com",
		Password: "smash",
	})
	require.NoError(t, err)
	assert.Equal(t, models.FitnessBeginner, user.FitnessLevel)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.CreateUser(CreateUserInput{
		Name: "Flash", Email: "barry.allen@dc.com", Password: "speedforce",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(CreateUserInput{
		Name: "Impostor", Email: "barry.allen@dc.com", Password: "speedforce",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	cases := []struct {
		name  string
		input CreateUserInput
	}{
		{"missing email", CreateUserInput{Name: "X", Password: "p"}},
		{"bad email", CreateUserInput{Name: "X", Email: "not-an-email", Password: "p"}},
		{"missing password", CreateUserInput{Name: "X", Email: "x@example.com"}},
		{"bad fitness level", CreateUserInput{Name: "X", Email: "x@example.com", Password: "p", FitnessLevel: "elite"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateUser(tc.input)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
		})
	}
}

func TestListUsersByFitnessLevel(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	levels := []models.FitnessLevel{
		models.FitnessAdvanced, models.FitnessAdvanced, models.FitnessAdvanced,
		models.FitnessBeginner, models.FitnessBeginner,
	}
	for i, level := range levels {
		_, err := svc.CreateUser(CreateUserInput{
			Name:         "Hero",
			Email:        "hero" + string(rune('a'+i)) + "@example.com",
			Password:     "p",
			FitnessLevel: level,
		})
		require.NoError(t, err)
	}

	advanced, err := svc.ListUsersByFitnessLevel("advanced")
	require.NoError(t, err)
	assert.Len(t, advanced, 3)

	none, err := svc.ListUsersByFitnessLevel("intermediate")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.ListUsersByFitnessLevel("")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestGetUserByEmailNotFound(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.GetUserByEmail("ghost@example.com")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetUserMalformedID(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.GetUser("definitely-not-a-uuid")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateUser(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.CreateUser(CreateUserInput{
		Name: "Batman", Email: "bruce.wayne@dc.com", Password: "alfred",
	})
	require.NoError(t, err)

	level := models.FitnessAdvanced
	name := "The Batman"
	updated, err := svc.UpdateUser(user.ID, UpdateUserInput{
		Name:         &name,
		FitnessLevel: &level,
	})
	require.NoError(t, err)
	assert.Equal(t, "The Batman", updated.Name)
	assert.Equal(t, models.FitnessAdvanced, updated.FitnessLevel)

	// Email stays unique across updates too.
	_, err = svc.CreateUser(CreateUserInput{
		Name: "Superman", Email: "clark.kent@dc.com", Password: "krypton",
	})
	require.NoError(t, err)

	taken := "clark.kent@dc.com"
	_, err = svc.UpdateUser(user.ID, UpdateUserInput{Email: &taken})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestDeleteUser(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.CreateUser(CreateUserInput{
		Name: "Aquaman", Email: "arthur.curry@dc.com", Password: "atlantis",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(user.ID))

	_, err = svc.GetUser(user.ID)
	assert.True(t, apperr.IsNotFound(err))

	err = svc.DeleteUser(user.ID)
	assert.True(t, apperr.IsNotFound(err))
}
