package entity

import (
	"ProjectWafeer/internal/api/transaction"
	"time"
)

// DateLayout is the calendar-day format used across the ledger (no clock component).
const DateLayout = "2006-01-02"

type SpendingCategory string

const (
	CategoryGroceries     SpendingCategory = "Groceries"
	CategoryDining        SpendingCategory = "Dining"
	CategoryShopping      SpendingCategory = "Shopping"
	CategoryUtilities     SpendingCategory = "Utilities"
	CategoryEntertainment SpendingCategory = "Entertainment"
	CategoryTransport     SpendingCategory = "Transport"
)

func IsValidSpendingCategory(category string) bool {
	switch SpendingCategory(category) {
	case CategoryGroceries, CategoryDining, CategoryShopping,
		CategoryUtilities, CategoryEntertainment, CategoryTransport:
		return true
	default:
		return false
	}
}

// Transaction is immutable once recorded. Identity is the ULID in ID.
type Transaction struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`
	Amount         float64   `json:"amount"`
	Merchant       string    `json:"merchant"`
	Category       string    `json:"category"`
	IsSubscription bool      `json:"is_subscription"`
	CreatedAt      time.Time `json:"created_at"`
}

func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return transaction.ErrInvalidAmount
	}

	if t.Merchant == "" {
		return transaction.ErrInvalidMerchant
	}

	if !IsValidSpendingCategory(t.Category) {
		return transaction.ErrInvalidCategory
	}

	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return transaction.ErrInvalidDate
	}

	return nil
}
