package entity

import "time"

type CardType string

const (
	CardVisa       CardType = "Visa"
	CardMastercard CardType = "Mastercard"
	CardMada       CardType = "Mada"
)

func IsValidCardType(t string) bool {
	switch CardType(t) {
	case CardVisa, CardMastercard, CardMada:
		return true
	default:
		return false
	}
}

// PaymentCard balance is mutated only through transfers. Exactly one card in
// the registry carries IsDefault at a time.
type PaymentCard struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Last4     string  `json:"last4"`
	Expiry    string  `json:"expiry"`
	Holder    string  `json:"holder"`
	Color     string  `json:"color"`
	Balance   float64 `json:"balance"`
	IsDefault bool    `json:"is_default"`
}

// TransferReceipt records a one-sided savings debit. The vault the money moves
// to is conceptual, so there is no destination balance.
type TransferReceipt struct {
	ID           string    `json:"id"`
	CardID       string    `json:"card_id"`
	Amount       float64   `json:"amount"`
	BalanceAfter float64   `json:"balance_after"`
	CreatedAt    time.Time `json:"created_at"`
}
