// handlers/root.go - API root directory endpoint
package handlers

import "github.com/gofiber/fiber/v2"

// APIRoot lists every available endpoint, with links built from the
// configured base URL.
// GET /api
func (h *Handler) APIRoot(c *fiber.Ctx) error {
	base := h.cfg.BaseURL

	return c.JSON(fiber.Map{
		"message":  "Welcome to OctoFit Tracker API",
		"base_url": base,
		"endpoints": fiber.Map{
			"users":       base + "/api/users",
			"teams":       base + "/api/teams",
			"activities":  base + "/api/activities",
			"leaderboard": base + "/api/leaderboard",
			"workouts":    base + "/api/workouts",
		},
		"custom_endpoints": fiber.Map{
			"users_by_email":            base + "/api/users/by_email?email=<email>",
			"users_by_fitness_level":    base + "/api/users/by_fitness_level?level=<level>",
			"activities_by_user":        base + "/api/activities/by_user?user=<name>",
			"activities_by_type":        base + "/api/activities/by_type?type=<type>",
			"activities_recent":         base + "/api/activities/recent?limit=<N>",
			"leaderboard_top":           base + "/api/leaderboard/top?limit=<N>",
			"leaderboard_by_team":       base + "/api/leaderboard/by_team?team=<team>",
			"workouts_by_difficulty":    base + "/api/workouts/by_difficulty?difficulty=<level>",
			"workouts_by_fitness_level": base + "/api/workouts/by_fitness_level?level=<level>",
			"workouts_by_activity_type": base + "/api/workouts/by_activity_type?type=<type>",
		},
	})
}
