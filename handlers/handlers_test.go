package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"octofit/config"
	"octofit/database"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	cfg := &config.Config{BaseURL: "http://localhost:8000"}

	app := fiber.New()
	New(cfg, db).Register(app.Group("/api"))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, target string) (*http.Response, []map[string]any) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)

	var decoded []map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestCreateUserEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/users", map[string]any{
		"name":          "Iron Man",
		"email":         "tony.stark@marvel.com",
		"password":      "marvel123",
		"fitness_level": "advanced",
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Iron Man", body["name"])
	assert.NotEmpty(t, body["id"])

	// The password never appears in any representation.
	_, hasPassword := body["password"]
	assert.False(t, hasPassword)
	_, hasHash := body["password_hash"]
	assert.False(t, hasHash)
}

func TestDuplicateEmailEndpoint(t *testing.T) {
	app := newTestApp(t)

	payload := map[string]any{
		"name": "Flash", "email": "barry.allen@dc.com", "password": "speedforce",
	}
	resp, _ := doJSON(t, app, http.MethodPost, "/api/users", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/users", payload)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestFilterEndpointsRequireParams(t *testing.T) {
	app := newTestApp(t)

	targets := []string{
		"/api/users/by_email",
		"/api/users/by_fitness_level",
		"/api/activities/by_user",
		"/api/activities/by_type",
		"/api/leaderboard/by_team",
		"/api/workouts/by_difficulty",
		"/api/workouts/by_fitness_level",
		"/api/workouts/by_activity_type",
	}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			resp, body := doJSON(t, app, http.MethodGet, target, nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestGetByIDNotFound(t *testing.T) {
	app := newTestApp(t)

	// Both a well-formed unknown id and a malformed one are plain 404s.
	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		for _, resource := range []string{"users", "teams", "activities", "leaderboard", "workouts"} {
			resp, _ := doJSON(t, app, http.MethodGet, "/api/"+resource+"/"+id, nil)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode, "%s/%s", resource, id)
		}
	}
}

func TestTeamMembershipEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, team := doJSON(t, app, http.MethodPost, "/api/teams", map[string]any{
		"name":    "Team Marvel",
		"captain": "Iron Man",
		"members": []string{"A", "B"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	teamID := team["id"].(string)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/teams/"+teamID+"/add_member",
		map[string]any{"member_name": "A"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, updated := doJSON(t, app, http.MethodPost, "/api/teams/"+teamID+"/add_member",
		map[string]any{"member_name": "C"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, updated["members"], 3)

	resp, updated = doJSON(t, app, http.MethodPost, "/api/teams/"+teamID+"/remove_member",
		map[string]any{"member_name": "C"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, updated["members"], 2)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/teams/"+teamID+"/remove_member",
		map[string]any{"member_name": "C"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/teams/"+teamID+"/add_member",
		map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecentActivitiesEndpoint(t *testing.T) {
	app := newTestApp(t)

	for day := 1; day <= 5; day++ {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/activities", map[string]any{
			"user":          "Flash",
			"activity_type": "running",
			"duration":      30,
			"date":          fmt.Sprintf("2026-08-%02dT12:00:00Z", day),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, list := doJSONList(t, app, "/api/activities/recent?limit=3")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 3)
	assert.Equal(t, "2026-08-05T12:00:00Z", list[0]["date"])
	assert.Equal(t, "2026-08-04T12:00:00Z", list[1]["date"])
	assert.Equal(t, "2026-08-03T12:00:00Z", list[2]["date"])
}

func TestTopLeaderboardEndpoint(t *testing.T) {
	app := newTestApp(t)

	entries := []map[string]any{
		{"user": "Iron Man", "team": "Team Marvel", "total_points": 500, "rank": 1},
		{"user": "Batman", "team": "Team DC", "total_points": 900, "rank": 2},
		{"user": "Thor", "team": "Team Marvel", "total_points": 700, "rank": 1},
	}
	for _, entry := range entries {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/leaderboard", entry)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, list := doJSONList(t, app, "/api/leaderboard/top?limit=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 2)
	assert.Equal(t, "Thor", list[0]["user"])
	assert.Equal(t, "Iron Man", list[1]["user"])
}

func TestInvalidActivityRejected(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/activities", map[string]any{
		"user":          "Thor",
		"activity_type": "skydiving",
		"duration":      30,
		"date":          "2026-08-01T12:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "activity_type")
}

func TestDeleteEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, workout := doJSON(t, app, http.MethodPost, "/api/workouts", map[string]any{
		"title":                "Beginner Hero Walk",
		"description":          "A gentle walking routine",
		"difficulty_level":     "beginner",
		"duration":             30,
		"activity_type":        "walking",
		"target_fitness_level": "beginner",
		"instructions":         "1. Walk\n2. Keep walking",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := workout["id"].(string)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/workouts/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/workouts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPIRootEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	endpoints, ok := body["endpoints"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"users", "teams", "activities", "leaderboard", "workouts"} {
		assert.Contains(t, endpoints, key)
	}
	assert.Equal(t, "http://localhost:8000", body["base_url"])
}
