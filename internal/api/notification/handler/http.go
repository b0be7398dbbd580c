package notificationHandler

import (
	notificationService "ProjectWafeer/internal/api/notification/service"
	"ProjectWafeer/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type NotificationHandler struct {
	log                 *logrus.Logger
	validator           *validator.Validate
	middleware          middleware.Middleware
	notificationService notificationService.INotificationService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ns notificationService.INotificationService,
) *NotificationHandler {
	return &NotificationHandler{
		log:                 log,
		validator:           validate,
		middleware:          middleware,
		notificationService: ns,
	}
}

func (h *NotificationHandler) Start(srv fiber.Router) {
	srv.Get("/notifications", h.GetNotifications)

	notifications := srv.Group("/notifications")
	notifications.Patch("/:id/read", h.MarkRead)
	notifications.Post("/read-all", h.MarkAllRead)
}
