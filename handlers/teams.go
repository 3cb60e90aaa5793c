// handlers/teams.go - Team resource and membership endpoints
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"octofit/models"
	"octofit/services"
)

type memberRequest struct {
	MemberName models.UserRef `json:"member_name"`
}

// CreateTeam creates a team.
// POST /api/teams
func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var input services.CreateTeamInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	team, err := h.teams.CreateTeam(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

// ListTeams returns every team.
// GET /api/teams
func (h *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.teams.ListTeams()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(teams)
}

// GetTeam returns one team by id.
// GET /api/teams/:id
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.teams.GetTeam(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(team)
}

// UpdateTeam applies a partial update.
// PUT /api/teams/:id
func (h *Handler) UpdateTeam(c *fiber.Ctx) error {
	var input services.UpdateTeamInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	team, err := h.teams.UpdateTeam(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(team)
}

// DeleteTeam removes a team.
// DELETE /api/teams/:id
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	if err := h.teams.DeleteTeam(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddTeamMember appends a member name to the roster.
// POST /api/teams/:id/add_member
func (h *Handler) AddTeamMember(c *fiber.Ctx) error {
	var req memberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	team, err := h.teams.AddMember(c.Params("id"), req.MemberName)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(team)
}

// RemoveTeamMember removes a member name from the roster.
// POST /api/teams/:id/remove_member
func (h *Handler) RemoveTeamMember(c *fiber.Ctx) error {
	var req memberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	team, err := h.teams.RemoveMember(c.Params("id"), req.MemberName)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(team)
}
