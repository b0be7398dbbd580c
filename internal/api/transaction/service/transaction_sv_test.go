package transactionService

import (
	"ProjectWafeer/internal/api/transaction"
	"ProjectWafeer/internal/session"
	"ProjectWafeer/pkg/utils"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func newTestService(t *testing.T) (ITransactionService, *session.Store) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := session.New(logger)
	return NewTransactionService(logger, store, utils.New()), store
}

func TestCreateTransaction(t *testing.T) {
	svc, store := newTestService(t)
	before := len(store.Transactions())

	created, err := svc.CreateTransaction(context.Background(), transaction.CreateTransactionRequest{
		Date:     time.Now().Format("2006-01-02"),
		Amount:   120.50,
		Merchant: "Al Baik",
		Category: "Dining",
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if created.ID == "" {
		t.Error("created transaction has no ID")
	}
	if got := len(store.Transactions()); got != before+1 {
		t.Errorf("ledger size = %d, want %d", got, before+1)
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	svc, store := newTestService(t)
	before := len(store.Transactions())

	tests := []struct {
		name string
		req  transaction.CreateTransactionRequest
		want error
	}{
		{
			name: "bad category",
			req: transaction.CreateTransactionRequest{
				Date: "2025-01-15", Amount: 10, Merchant: "X", Category: "Gambling",
			},
			want: transaction.ErrInvalidCategory,
		},
		{
			name: "zero amount",
			req: transaction.CreateTransactionRequest{
				Date: "2025-01-15", Amount: 0, Merchant: "X", Category: "Dining",
			},
			want: transaction.ErrInvalidAmount,
		},
		{
			name: "bad date",
			req: transaction.CreateTransactionRequest{
				Date: "15/01/2025", Amount: 10, Merchant: "X", Category: "Dining",
			},
			want: transaction.ErrInvalidDate,
		},
		{
			name: "empty merchant",
			req: transaction.CreateTransactionRequest{
				Date: "2025-01-15", Amount: 10, Category: "Dining",
			},
			want: transaction.ErrInvalidMerchant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateTransaction(context.Background(), tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if got := len(store.Transactions()); got != before {
		t.Errorf("rejected transactions changed the ledger: %d -> %d", before, got)
	}
}

func TestGetTransactionsPeriods(t *testing.T) {
	svc, _ := newTestService(t)

	all, err := svc.GetTransactions(context.Background(), "all")
	if err != nil {
		t.Fatalf("GetTransactions all: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("seeded ledger came back empty")
	}

	// Sorted most recent first.
	for i := 1; i < len(all); i++ {
		if all[i].Date > all[i-1].Date {
			t.Fatalf("transactions out of order at %d: %s after %s", i, all[i].Date, all[i-1].Date)
		}
	}

	week, err := svc.GetTransactions(context.Background(), "week")
	if err != nil {
		t.Fatalf("GetTransactions week: %v", err)
	}
	month, err := svc.GetTransactions(context.Background(), "month")
	if err != nil {
		t.Fatalf("GetTransactions month: %v", err)
	}
	if len(week) > len(month) || len(month) > len(all) {
		t.Errorf("window sizes inverted: week %d, month %d, all %d", len(week), len(month), len(all))
	}

	if _, err := svc.GetTransactions(context.Background(), "decade"); !errors.Is(err, transaction.ErrInvalidPeriod) {
		t.Fatalf("err = %v, want ErrInvalidPeriod", err)
	}
}
