package transactionHandler

import (
	transactionService "ProjectWafeer/internal/api/transaction/service"
	"ProjectWafeer/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ts transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: ts,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	srv.Get("/transactions", h.GetTransactions)
	srv.Post("/transactions", h.CreateTransaction)
}
