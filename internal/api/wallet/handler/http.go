package walletHandler

import (
	walletService "ProjectWafeer/internal/api/wallet/service"
	"ProjectWafeer/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type WalletHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	walletService walletService.IWalletService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ws walletService.IWalletService,
) *WalletHandler {
	return &WalletHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		walletService: ws,
	}
}

func (h *WalletHandler) Start(srv fiber.Router) {
	wallet := srv.Group("/wallet")

	wallet.Get("/cards", h.GetCards)
	wallet.Post("/cards", h.CreateCard)
	wallet.Put("/cards/:id", h.UpdateCard)
	wallet.Delete("/cards/:id", h.DeleteCard)
	wallet.Patch("/cards/:id/default", h.SetDefaultCard)
	wallet.Post("/transfer", h.Transfer)
	wallet.Get("/subscriptions", h.GetSubscriptions)
}
