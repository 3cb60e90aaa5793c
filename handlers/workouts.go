// handlers/workouts.go - Workout catalog endpoints
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"octofit/services"
)

// CreateWorkout adds a workout to the catalog.
// POST /api/workouts
func (h *Handler) CreateWorkout(c *fiber.Ctx) error {
	var input services.CreateWorkoutInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	workout, err := h.workouts.CreateWorkout(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

// ListWorkouts returns the whole catalog.
// GET /api/workouts
func (h *Handler) ListWorkouts(c *fiber.Ctx) error {
	workouts, err := h.workouts.ListWorkouts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workouts)
}

// GetWorkout returns one workout by id.
// GET /api/workouts/:id
func (h *Handler) GetWorkout(c *fiber.Ctx) error {
	workout, err := h.workouts.GetWorkout(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workout)
}

// ListWorkoutsByDifficulty filters on difficulty level.
// GET /api/workouts/by_difficulty?difficulty=
func (h *Handler) ListWorkoutsByDifficulty(c *fiber.Ctx) error {
	workouts, err := h.workouts.ListWorkoutsByDifficulty(c.Query("difficulty"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workouts)
}

// ListWorkoutsByFitnessLevel filters on target fitness level.
// GET /api/workouts/by_fitness_level?level=
func (h *Handler) ListWorkoutsByFitnessLevel(c *fiber.Ctx) error {
	workouts, err := h.workouts.ListWorkoutsByFitnessLevel(c.Query("level"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workouts)
}

// ListWorkoutsByActivityType filters on the free-text activity type.
// GET /api/workouts/by_activity_type?type=
func (h *Handler) ListWorkoutsByActivityType(c *fiber.Ctx) error {
	workouts, err := h.workouts.ListWorkoutsByActivityType(c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workouts)
}

// UpdateWorkout applies a partial update.
// PUT /api/workouts/:id
func (h *Handler) UpdateWorkout(c *fiber.Ctx) error {
	var input services.UpdateWorkoutInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	workout, err := h.workouts.UpdateWorkout(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workout)
}

// DeleteWorkout removes a workout.
// DELETE /api/workouts/:id
func (h *Handler) DeleteWorkout(c *fiber.Ctx) error {
	if err := h.workouts.DeleteWorkout(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
