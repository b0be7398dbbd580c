package goalHandler

import (
	goalService "ProjectWafeer/internal/api/goal/service"
	"ProjectWafeer/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GoalHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	goalService goalService.IGoalService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	gs goalService.IGoalService,
) *GoalHandler {
	return &GoalHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		goalService: gs,
	}
}

func (h *GoalHandler) Start(srv fiber.Router) {
	srv.Get("/goals", h.GetGoals)
	srv.Post("/goals", h.CreateGoal)

	goals := srv.Group("/goals")
	goals.Get("/due", h.GetGoalsDue)
	goals.Put("/:id/target", h.UpdateGoalTarget)
	goals.Delete("/:id", h.DeleteGoal)
}
