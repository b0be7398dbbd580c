package wallet

import (
	"ProjectWafeer/internal/entity"
	"time"
	"unicode"
)

// Pure card-registry operations. Input slices are never mutated; each
// mutation returns a fresh list the session store swaps in atomically.

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// AddCard registers a card. Balance defaults to zero and the first card in
// the registry becomes the default funding source.
func AddCard(cards []entity.PaymentCard, c entity.PaymentCard) ([]entity.PaymentCard, error) {
	if !isFourDigits(c.Last4) || !entity.IsValidCardType(c.Type) || c.Balance < 0 {
		return nil, ErrInvalidCard
	}

	c.IsDefault = len(cards) == 0

	next := make([]entity.PaymentCard, len(cards), len(cards)+1)
	copy(next, cards)
	return append(next, c), nil
}

// UpdateCard patches cosmetic fields; empty patch fields keep the current
// value. Balance and default flag are out of reach here, transfers and
// SetDefault own those.
func UpdateCard(cards []entity.PaymentCard, id string, patch UpdateCardRequest) ([]entity.PaymentCard, error) {
	if patch.Last4 != "" && !isFourDigits(patch.Last4) {
		return nil, ErrInvalidCard
	}
	if patch.Type != "" && !entity.IsValidCardType(patch.Type) {
		return nil, ErrInvalidCard
	}

	next := make([]entity.PaymentCard, len(cards))
	copy(next, cards)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		if patch.Type != "" {
			next[i].Type = patch.Type
		}
		if patch.Last4 != "" {
			next[i].Last4 = patch.Last4
		}
		if patch.Expiry != "" {
			next[i].Expiry = patch.Expiry
		}
		if patch.Holder != "" {
			next[i].Holder = patch.Holder
		}
		if patch.Color != "" {
			next[i].Color = patch.Color
		}
		return next, nil
	}
	return nil, ErrCardNotFound
}

// RemoveCard deletes a card and returns the surviving default card's ID so
// callers can reselect the funding source. When the removed card was the
// default, the first remaining card inherits the flag.
func RemoveCard(cards []entity.PaymentCard, id string) ([]entity.PaymentCard, string, error) {
	next := make([]entity.PaymentCard, 0, len(cards))
	removedDefault := false
	found := false
	for _, c := range cards {
		if c.ID == id {
			found = true
			removedDefault = c.IsDefault
			continue
		}
		next = append(next, c)
	}
	if !found {
		return nil, "", ErrCardNotFound
	}

	if removedDefault && len(next) > 0 {
		next[0].IsDefault = true
	}

	defaultID := ""
	for _, c := range next {
		if c.IsDefault {
			defaultID = c.ID
			break
		}
	}
	return next, defaultID, nil
}

// SetDefault marks one card as the default funding source and clears the flag
// everywhere else, keeping the exactly-one-default invariant.
func SetDefault(cards []entity.PaymentCard, id string) ([]entity.PaymentCard, error) {
	next := make([]entity.PaymentCard, len(cards))
	copy(next, cards)
	found := false
	for i := range next {
		next[i].IsDefault = next[i].ID == id
		if next[i].IsDefault {
			found = true
		}
	}
	if !found {
		return nil, ErrCardNotFound
	}
	return next, nil
}

// Transfer debits the source card and issues a receipt. Nothing is credited:
// the savings vault is conceptual, so the ledger is one-sided by design of
// the product, not by omission. On any failure the input state is untouched.
func Transfer(cards []entity.PaymentCard, sourceID string, amount float64, receiptID string, now time.Time) ([]entity.PaymentCard, entity.TransferReceipt, error) {
	if amount <= 0 {
		return nil, entity.TransferReceipt{}, ErrInvalidAmount
	}

	idx := -1
	for i, c := range cards {
		if c.ID == sourceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, entity.TransferReceipt{}, ErrCardNotFound
	}
	if cards[idx].Balance < amount {
		return nil, entity.TransferReceipt{}, ErrInsufficientFunds
	}

	next := make([]entity.PaymentCard, len(cards))
	copy(next, cards)
	next[idx].Balance -= amount

	receipt := entity.TransferReceipt{
		ID:           receiptID,
		CardID:       sourceID,
		Amount:       amount,
		BalanceAfter: next[idx].Balance,
		CreatedAt:    now,
	}
	return next, receipt, nil
}
