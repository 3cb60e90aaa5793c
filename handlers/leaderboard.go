// handlers/leaderboard.go - Leaderboard resource endpoints
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"octofit/services"
)

// CreateLeaderboardEntry stores a caller-ranked entry.
// POST /api/leaderboard
func (h *Handler) CreateLeaderboardEntry(c *fiber.Ctx) error {
	var input services.CreateLeaderboardEntryInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	entry, err := h.leaderboard.CreateEntry(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// ListLeaderboard returns every entry in rank order.
// GET /api/leaderboard
func (h *Handler) ListLeaderboard(c *fiber.Ctx) error {
	entries, err := h.leaderboard.ListEntries()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// GetLeaderboardEntry returns one entry by id.
// GET /api/leaderboard/:id
func (h *Handler) GetLeaderboardEntry(c *fiber.Ctx) error {
	entry, err := h.leaderboard.GetEntry(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}

// TopLeaderboard returns the first N entries by (rank asc, points desc).
// GET /api/leaderboard/top?limit=
func (h *Handler) TopLeaderboard(c *fiber.Ctx) error {
	entries, err := h.leaderboard.TopEntries(c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// ListLeaderboardByTeam filters entries on team name.
// GET /api/leaderboard/by_team?team=
func (h *Handler) ListLeaderboardByTeam(c *fiber.Ctx) error {
	entries, err := h.leaderboard.ListEntriesByTeam(c.Query("team"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// UpdateLeaderboardEntry applies a partial update.
// PUT /api/leaderboard/:id
func (h *Handler) UpdateLeaderboardEntry(c *fiber.Ctx) error {
	var input services.UpdateLeaderboardEntryInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	entry, err := h.leaderboard.UpdateEntry(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}

// DeleteLeaderboardEntry removes an entry.
// DELETE /api/leaderboard/:id
func (h *Handler) DeleteLeaderboardEntry(c *fiber.Ctx) error {
	if err := h.leaderboard.DeleteEntry(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
