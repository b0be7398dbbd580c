package walletService

import (
	"ProjectWafeer/internal/api/wallet"
	"ProjectWafeer/internal/entity"
	"ProjectWafeer/internal/session"
	"ProjectWafeer/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IWalletService interface {
	GetCards(ctx context.Context) ([]entity.PaymentCard, error)
	CreateCard(ctx context.Context, req wallet.CreateCardRequest) (entity.PaymentCard, error)
	UpdateCard(ctx context.Context, id string, req wallet.UpdateCardRequest) (entity.PaymentCard, error)
	DeleteCard(ctx context.Context, id string) ([]entity.PaymentCard, string, error)
	SetDefaultCard(ctx context.Context, id string) ([]entity.PaymentCard, error)
	Transfer(ctx context.Context, req wallet.TransferRequest) (entity.TransferReceipt, error)
	GetSubscriptions(ctx context.Context) ([]entity.Transaction, float64, error)
}

type walletService struct {
	log   *logrus.Logger
	store *session.Store
	utils utils.IUtils
}

func NewWalletService(log *logrus.Logger, store *session.Store, utils utils.IUtils) IWalletService {
	return &walletService{
		log:   log,
		store: store,
		utils: utils,
	}
}
