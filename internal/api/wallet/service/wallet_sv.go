package walletService

import (
	"ProjectWafeer/internal/api/wallet"
	"ProjectWafeer/internal/entity"
	contextPkg "ProjectWafeer/pkg/context"
	"ProjectWafeer/pkg/finmath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *walletService) GetCards(ctx context.Context) ([]entity.PaymentCard, error) {
	return s.store.Cards(), nil
}

func (s *walletService) CreateCard(ctx context.Context, req wallet.CreateCardRequest) (entity.PaymentCard, error) {
	requestID := contextPkg.GetRequestID(ctx)

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.PaymentCard{}, err
	}

	card := entity.PaymentCard{
		ID:      ULID,
		Type:    req.Type,
		Last4:   req.Last4,
		Expiry:  req.Expiry,
		Holder:  req.Holder,
		Color:   req.Color,
		Balance: req.Balance,
	}

	next, err := wallet.AddCard(s.store.Cards(), card)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"last4":      req.Last4,
			"error":      err.Error(),
		}).Warn("Invalid card data")
		return entity.PaymentCard{}, err
	}

	s.store.ReplaceCards(next)

	// AddCard may have promoted the card to default.
	created := next[len(next)-1]

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         created.ID,
		"type":       created.Type,
		"is_default": created.IsDefault,
	}).Info("Card registered")

	return created, nil
}

func (s *walletService) UpdateCard(ctx context.Context, id string, req wallet.UpdateCardRequest) (entity.PaymentCard, error) {
	requestID := contextPkg.GetRequestID(ctx)

	next, err := wallet.UpdateCard(s.store.Cards(), id, req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to update card")
		return entity.PaymentCard{}, err
	}

	s.store.ReplaceCards(next)

	for _, c := range next {
		if c.ID == id {
			return c, nil
		}
	}
	return entity.PaymentCard{}, wallet.ErrCardNotFound
}

func (s *walletService) DeleteCard(ctx context.Context, id string) ([]entity.PaymentCard, string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	next, defaultID, err := wallet.RemoveCard(s.store.Cards(), id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to delete card")
		return nil, "", err
	}

	s.store.ReplaceCards(next)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         id,
		"default_id": defaultID,
	}).Info("Card deleted")

	return next, defaultID, nil
}

func (s *walletService) SetDefaultCard(ctx context.Context, id string) ([]entity.PaymentCard, error) {
	requestID := contextPkg.GetRequestID(ctx)

	next, err := wallet.SetDefault(s.store.Cards(), id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to set default card")
		return nil, err
	}

	s.store.ReplaceCards(next)
	return next, nil
}

func (s *walletService) Transfer(ctx context.Context, req wallet.TransferRequest) (entity.TransferReceipt, error) {
	requestID := contextPkg.GetRequestID(ctx)

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.TransferReceipt{}, err
	}

	next, receipt, err := wallet.Transfer(s.store.Cards(), req.SourceID, req.Amount, ULID, time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"source_id":  req.SourceID,
			"amount":     req.Amount,
			"error":      err.Error(),
		}).Warn("Transfer rejected")
		return entity.TransferReceipt{}, err
	}

	s.store.ReplaceCards(next)

	s.log.WithFields(logrus.Fields{
		"request_id":    requestID,
		"receipt_id":    receipt.ID,
		"source_id":     receipt.CardID,
		"amount":        receipt.Amount,
		"balance_after": receipt.BalanceAfter,
	}).Info("Savings transfer completed")

	return receipt, nil
}

func (s *walletService) GetSubscriptions(ctx context.Context) ([]entity.Transaction, float64, error) {
	txs := s.store.Transactions()

	// Most recent first so the representative per merchant is the latest charge.
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date > txs[j].Date
	})

	subs := finmath.UniqueSubscriptions(txs)

	var monthlyCost float64
	for _, sub := range subs {
		monthlyCost += sub.Amount
	}

	return subs, monthlyCost, nil
}
