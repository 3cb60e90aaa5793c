// handlers/handlers.go - HTTP surface wiring and shared response helpers
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"octofit/apperr"
	"octofit/config"
	"octofit/services"
)

// Handler binds the resource services to the Fiber routes.
type Handler struct {
	cfg         *config.Config
	users       *services.UserService
	teams       *services.TeamService
	activities  *services.ActivityService
	leaderboard *services.LeaderboardService
	workouts    *services.WorkoutService
}

func New(cfg *config.Config, db *gorm.DB) *Handler {
	return &Handler{
		cfg:         cfg,
		users:       services.NewUserService(db),
		teams:       services.NewTeamService(db),
		activities:  services.NewActivityService(db),
		leaderboard: services.NewLeaderboardService(db),
		workouts:    services.NewWorkoutService(db),
	}
}

// Register mounts every resource route under the given router (normally the
// /api group).
func (h *Handler) Register(api fiber.Router) {
	api.Get("/", h.APIRoot)

	users := api.Group("/users")
	users.Get("/", h.ListUsers)
	users.Post("/", h.CreateUser)
	users.Get("/by_email", h.GetUserByEmail)
	users.Get("/by_fitness_level", h.ListUsersByFitnessLevel)
	users.Get("/:id", h.GetUser)
	users.Put("/:id", h.UpdateUser)
	users.Delete("/:id", h.DeleteUser)

	teams := api.Group("/teams")
	teams.Get("/", h.ListTeams)
	teams.Post("/", h.CreateTeam)
	teams.Get("/:id", h.GetTeam)
	teams.Put("/:id", h.UpdateTeam)
	teams.Delete("/:id", h.DeleteTeam)
	teams.Post("/:id/add_member", h.AddTeamMember)
	teams.Post("/:id/remove_member", h.RemoveTeamMember)

	activities := api.Group("/activities")
	activities.Get("/", h.ListActivities)
	activities.Post("/", h.CreateActivity)
	activities.Get("/by_user", h.ListActivitiesByUser)
	activities.Get("/by_type", h.ListActivitiesByType)
	activities.Get("/recent", h.ListRecentActivities)
	activities.Get("/:id", h.GetActivity)
	activities.Put("/:id", h.UpdateActivity)
	activities.Delete("/:id", h.DeleteActivity)

	leaderboard := api.Group("/leaderboard")
	leaderboard.Get("/", h.ListLeaderboard)
	leaderboard.Post("/", h.CreateLeaderboardEntry)
	leaderboard.Get("/top", h.TopLeaderboard)
	leaderboard.Get("/by_team", h.ListLeaderboardByTeam)
	leaderboard.Get("/:id", h.GetLeaderboardEntry)
	leaderboard.Put("/:id", h.UpdateLeaderboardEntry)
	leaderboard.Delete("/:id", h.DeleteLeaderboardEntry)

	workouts := api.Group("/workouts")
	workouts.Get("/", h.ListWorkouts)
	workouts.Post("/", h.CreateWorkout)
	workouts.Get("/by_difficulty", h.ListWorkoutsByDifficulty)
	workouts.Get("/by_fitness_level", h.ListWorkoutsByFitnessLevel)
	workouts.Get("/by_activity_type", h.ListWorkoutsByActivityType)
	workouts.Get("/:id", h.GetWorkout)
	workouts.Put("/:id", h.UpdateWorkout)
	workouts.Delete("/:id", h.DeleteWorkout)
}

// respondError maps the service error taxonomy onto client/server statuses.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindValidation:
			status = fiber.StatusBadRequest
			message = ae.Message
		case apperr.KindNotFound:
			status = fiber.StatusNotFound
			message = ae.Message
		case apperr.KindConflict:
			status = fiber.StatusConflict
			message = ae.Message
		}
	}

	return c.Status(status).JSON(fiber.Map{"error": message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
