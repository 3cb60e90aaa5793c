// handlers/users.go - User resource endpoints
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"octofit/services"
)

// CreateUser registers a new user.
// POST /api/users
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var input services.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := h.users.CreateUser(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// ListUsers returns every user.
// GET /api/users
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GetUser returns one user by id.
// GET /api/users/:id
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.users.GetUser(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetUserByEmail resolves the unique email lookup.
// GET /api/users/by_email?email=
func (h *Handler) GetUserByEmail(c *fiber.Ctx) error {
	user, err := h.users.GetUserByEmail(c.Query("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// ListUsersByFitnessLevel filters users on exact fitness level.
// GET /api/users/by_fitness_level?level=
func (h *Handler) ListUsersByFitnessLevel(c *fiber.Ctx) error {
	users, err := h.users.ListUsersByFitnessLevel(c.Query("level"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// UpdateUser applies a partial update.
// PUT /api/users/:id
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	var input services.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := h.users.UpdateUser(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// DeleteUser removes a user. Activities referencing the user are untouched.
// DELETE /api/users/:id
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	if err := h.users.DeleteUser(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
