package transactionService

import (
	"ProjectWafeer/internal/api/transaction"
	"ProjectWafeer/internal/entity"
	contextPkg "ProjectWafeer/pkg/context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *transactionService) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Transaction{}, err
	}

	tx := entity.Transaction{
		ID:             ULID,
		Date:           req.Date,
		Amount:         req.Amount,
		Merchant:       req.Merchant,
		Category:       req.Category,
		IsSubscription: req.IsSubscription,
		CreatedAt:      time.Now(),
	}

	if err := tx.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	txs := s.store.Transactions()
	s.store.ReplaceTransactions(append(txs, tx))

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         tx.ID,
		"merchant":   tx.Merchant,
		"amount":     tx.Amount,
	}).Info("Transaction recorded")

	return tx, nil
}

func (s *transactionService) GetTransactions(ctx context.Context, period string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	txs := s.store.Transactions()

	now := time.Now()
	var cutoff time.Time
	switch period {
	case "", "all":
	case "week":
		cutoff = now.AddDate(0, 0, -7)
	case "month":
		cutoff = now.AddDate(0, -1, 0)
	default:
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"period":     period,
		}).Warn("Invalid period filter")
		return nil, transaction.ErrInvalidPeriod
	}

	filtered := make([]entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !cutoff.IsZero() {
			d, err := time.Parse(entity.DateLayout, tx.Date)
			if err != nil || d.Before(cutoff) {
				continue
			}
		}
		filtered = append(filtered, tx)
	}

	// Most recent first; CreatedAt breaks ties within a day.
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date > filtered[j].Date
		}
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return filtered, nil
}
