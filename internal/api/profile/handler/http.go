package profileHandler

import (
	profileService "ProjectWafeer/internal/api/profile/service"
	"ProjectWafeer/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ProfileHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	profileService profileService.IProfileService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps profileService.IProfileService,
) *ProfileHandler {
	return &ProfileHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		profileService: ps,
	}
}

func (h *ProfileHandler) Start(srv fiber.Router) {
	srv.Get("/profile", h.GetProfile)
	srv.Put("/profile", h.ReplaceProfile)

	profile := srv.Group("/profile")
	profile.Post("/obligations", h.AddObligation)
	profile.Delete("/obligations/:id", h.RemoveObligation)
}
