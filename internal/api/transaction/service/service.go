package transactionService

import (
	"ProjectWafeer/internal/api/transaction"
	"ProjectWafeer/internal/entity"
	"ProjectWafeer/internal/session"
	"ProjectWafeer/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (entity.Transaction, error)
	GetTransactions(ctx context.Context, period string) ([]entity.Transaction, error)
}

type transactionService struct {
	log   *logrus.Logger
	store *session.Store
	utils utils.IUtils
}

func NewTransactionService(log *logrus.Logger, store *session.Store, utils utils.IUtils) ITransactionService {
	return &transactionService{
		log:   log,
		store: store,
		utils: utils,
	}
}
