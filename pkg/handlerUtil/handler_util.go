package handlerUtil

import (
	"ProjectWafeer/internal/api/goal"
	"ProjectWafeer/internal/api/notification"
	"ProjectWafeer/internal/api/profile"
	"ProjectWafeer/internal/api/transaction"
	"ProjectWafeer/internal/api/wallet"
	"ProjectWafeer/pkg/log"
	"ProjectWafeer/pkg/response"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	// Coded domain errors carry their own HTTP status.
	var respErr *response.Error
	if errors.As(err, &respErr) {
		fields := log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}

		switch {
		case errors.Is(err, wallet.ErrInsufficientFunds):
			h.logger.WithFields(fields).Warn("Insufficient funds for transfer")
			return c.Status(respErr.Code).JSON(fiber.Map{
				"error": "Insufficient funds in selected account",
				"code":  "INSUFFICIENT_FUNDS",
			})
		case errors.Is(err, goal.ErrGoalNotFound):
			h.logger.WithFields(fields).Warn("Goal not found")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Goal not found",
				"code":  "GOAL_NOT_FOUND",
			})
		case errors.Is(err, wallet.ErrCardNotFound):
			h.logger.WithFields(fields).Warn("Card not found")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Card not found",
				"code":  "CARD_NOT_FOUND",
			})
		case errors.Is(err, transaction.ErrTransactionNotFound):
			h.logger.WithFields(fields).Warn("Transaction not found")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Transaction not found",
				"code":  "TRANSACTION_NOT_FOUND",
			})
		case errors.Is(err, notification.ErrNotificationNotFound):
			h.logger.WithFields(fields).Warn("Notification not found")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Notification not found",
				"code":  "NOTIFICATION_NOT_FOUND",
			})
		case errors.Is(err, profile.ErrObligationNotFound):
			h.logger.WithFields(fields).Warn("Obligation not found")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Obligation not found",
				"code":  "OBLIGATION_NOT_FOUND",
			})
		}

		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	traceID := log.ErrorWithTraceID(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}, "Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":    "An unexpected error occurred",
		"trace_id": traceID,
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
