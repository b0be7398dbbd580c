package notificationHandler

import (
	"ProjectWafeer/internal/api/notification"
	"ProjectWafeer/internal/entity"
	contextPkg "ProjectWafeer/pkg/context"
	"ProjectWafeer/pkg/handlerUtil"
	"ProjectWafeer/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func notificationResponse(n entity.Notification) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Timestamp: n.Timestamp.Format(time.RFC3339),
		IsRead:    n.IsRead,
	}
}

func (h *NotificationHandler) GetNotifications(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get notifications request")

	items, unread, err := h.notificationService.GetNotifications(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_notifications")
	}

	responses := make([]notification.NotificationResponse, 0, len(items))
	for _, n := range items {
		responses = append(responses, notificationResponse(n))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, notification.NotificationListResponse{
			Notifications: responses,
			UnreadCount:   unread,
		})
	}
}

func (h *NotificationHandler) MarkRead(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing mark notification read request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("notification ID is required"), ctx.Path())
	}

	marked, err := h.notificationService.MarkRead(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "mark_read")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, notificationResponse(marked))
	}
}

func (h *NotificationHandler) MarkAllRead(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing mark all notifications read request")

	marked, err := h.notificationService.MarkAllRead(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "mark_all_read")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"marked": marked,
		})
	}
}
