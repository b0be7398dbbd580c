package transactionHandler

import (
	"ProjectWafeer/internal/api/transaction"
	contextPkg "ProjectWafeer/pkg/context"
	"ProjectWafeer/pkg/handlerUtil"
	"ProjectWafeer/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *TransactionHandler) CreateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create transaction request")

	var req transaction.CreateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	tx, err := h.transactionService.CreateTransaction(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_transaction")
	}

	response := transaction.TransactionResponse{
		ID:             tx.ID,
		Date:           tx.Date,
		Amount:         tx.Amount,
		Merchant:       tx.Merchant,
		Category:       tx.Category,
		IsSubscription: tx.IsSubscription,
		CreatedAt:      tx.CreatedAt.Format(time.RFC3339),
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, response)
	}
}

func (h *TransactionHandler) GetTransactions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get transactions request")

	period := ctx.Query("period", "all")

	txs, err := h.transactionService.GetTransactions(c, period)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transactions")
	}

	var (
		responses []transaction.TransactionResponse
		total     float64
	)
	for _, tx := range txs {
		responses = append(responses, transaction.TransactionResponse{
			ID:             tx.ID,
			Date:           tx.Date,
			Amount:         tx.Amount,
			Merchant:       tx.Merchant,
			Category:       tx.Category,
			IsSubscription: tx.IsSubscription,
			CreatedAt:      tx.CreatedAt.Format(time.RFC3339),
		})
		total += tx.Amount
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, transaction.TransactionListResponse{
			Transactions: responses,
			Total:        total,
			Period:       period,
		})
	}
}
