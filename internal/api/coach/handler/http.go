package coachHandler

import (
	coachService "ProjectWafeer/internal/api/coach/service"
	"ProjectWafeer/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type CoachHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	coachService coachService.ICoachService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs coachService.ICoachService,
) *CoachHandler {
	return &CoachHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		coachService: cs,
	}
}

func (h *CoachHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	coach := srv.Group("/coach")

	coach.Get("/summary", h.GetSummary)
	coach.Post("/chat", h.Chat)
	coach.Use("/ws", wsMiddleware)
	coach.Get("/ws", websocket.New(h.handleChatWebSocket))
}
