package walletHandler

import (
	"ProjectWafeer/internal/api/wallet"
	"ProjectWafeer/internal/entity"
	contextPkg "ProjectWafeer/pkg/context"
	"ProjectWafeer/pkg/handlerUtil"
	"ProjectWafeer/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func cardResponse(c entity.PaymentCard) wallet.CardResponse {
	return wallet.CardResponse{
		ID:        c.ID,
		Type:      c.Type,
		Last4:     c.Last4,
		Expiry:    c.Expiry,
		Holder:    c.Holder,
		Color:     c.Color,
		Balance:   c.Balance,
		IsDefault: c.IsDefault,
	}
}

func cardResponses(cards []entity.PaymentCard) []wallet.CardResponse {
	responses := make([]wallet.CardResponse, 0, len(cards))
	for _, c := range cards {
		responses = append(responses, cardResponse(c))
	}
	return responses
}

func (h *WalletHandler) GetCards(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get cards request")

	cards, err := h.walletService.GetCards(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_cards")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, wallet.CardListResponse{
			Cards: cardResponses(cards),
		})
	}
}

func (h *WalletHandler) CreateCard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create card request")

	var req wallet.CreateCardRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	created, err := h.walletService.CreateCard(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_card")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, cardResponse(created))
	}
}

func (h *WalletHandler) UpdateCard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update card request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("card ID is required"), ctx.Path())
	}

	var req wallet.UpdateCardRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	updated, err := h.walletService.UpdateCard(c, id, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_card")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, cardResponse(updated))
	}
}

func (h *WalletHandler) DeleteCard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete card request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("card ID is required"), ctx.Path())
	}

	remaining, defaultID, err := h.walletService.DeleteCard(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_card")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, wallet.RemoveCardResponse{
			Cards:     cardResponses(remaining),
			DefaultID: defaultID,
		})
	}
}

func (h *WalletHandler) SetDefaultCard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing set default card request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("card ID is required"), ctx.Path())
	}

	cards, err := h.walletService.SetDefaultCard(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "set_default_card")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, wallet.CardListResponse{
			Cards: cardResponses(cards),
		})
	}
}

func (h *WalletHandler) Transfer(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing savings transfer request")

	var req wallet.TransferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	receipt, err := h.walletService.Transfer(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "transfer")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, wallet.TransferResponse{
			ReceiptID:    receipt.ID,
			CardID:       receipt.CardID,
			Amount:       receipt.Amount,
			BalanceAfter: receipt.BalanceAfter,
			CreatedAt:    receipt.CreatedAt.Format(time.RFC3339),
		})
	}
}

func (h *WalletHandler) GetSubscriptions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get subscriptions request")

	subs, monthlyCost, err := h.walletService.GetSubscriptions(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_subscriptions")
	}

	responses := make([]wallet.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		responses = append(responses, wallet.SubscriptionResponse{
			Merchant: sub.Merchant,
			Amount:   sub.Amount,
			Category: sub.Category,
			Date:     sub.Date,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, wallet.SubscriptionListResponse{
			Subscriptions: responses,
			MonthlyCost:   monthlyCost,
		})
	}
}
