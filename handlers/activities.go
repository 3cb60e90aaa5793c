// handlers/activities.go - Activity resource endpoints
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"octofit/services"
)

// CreateActivity records a new activity.
// POST /api/activities
func (h *Handler) CreateActivity(c *fiber.Ctx) error {
	var input services.CreateActivityInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	activity, err := h.activities.CreateActivity(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(activity)
}

// ListActivities returns every activity, newest first.
// GET /api/activities
func (h *Handler) ListActivities(c *fiber.Ctx) error {
	activities, err := h.activities.ListActivities()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activities)
}

// GetActivity returns one activity by id.
// GET /api/activities/:id
func (h *Handler) GetActivity(c *fiber.Ctx) error {
	activity, err := h.activities.GetActivity(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activity)
}

// ListActivitiesByUser filters on the owning user name.
// GET /api/activities/by_user?user=
func (h *Handler) ListActivitiesByUser(c *fiber.Ctx) error {
	activities, err := h.activities.ListActivitiesByUser(c.Query("user"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activities)
}

// ListActivitiesByType filters on activity type.
// GET /api/activities/by_type?type=
func (h *Handler) ListActivitiesByType(c *fiber.Ctx) error {
	activities, err := h.activities.ListActivitiesByType(c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activities)
}

// ListRecentActivities returns the most recently dated activities.
// GET /api/activities/recent?limit=
func (h *Handler) ListRecentActivities(c *fiber.Ctx) error {
	activities, err := h.activities.ListRecentActivities(c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activities)
}

// UpdateActivity applies a partial update.
// PUT /api/activities/:id
func (h *Handler) UpdateActivity(c *fiber.Ctx) error {
	var input services.UpdateActivityInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	activity, err := h.activities.UpdateActivity(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activity)
}

// DeleteActivity removes an activity.
// DELETE /api/activities/:id
func (h *Handler) DeleteActivity(c *fiber.Ctx) error {
	if err := h.activities.DeleteActivity(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
