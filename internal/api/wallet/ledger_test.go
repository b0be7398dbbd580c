package wallet

import (
	"ProjectWafeer/internal/entity"
	"errors"
	"testing"
	"time"
)

func seedCards() []entity.PaymentCard {
	return []entity.PaymentCard{
		{ID: "c1", Type: "Mada", Last4: "4242", Balance: 1000, IsDefault: true},
		{ID: "c2", Type: "Visa", Last4: "8831", Balance: 3200},
	}
}

func TestAddCard(t *testing.T) {
	next, err := AddCard(nil, entity.PaymentCard{ID: "c1", Type: "Visa", Last4: "1234"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !next[0].IsDefault {
		t.Fatal("first card must become default")
	}

	next, err = AddCard(next, entity.PaymentCard{ID: "c2", Type: "Mada", Last4: "9999", IsDefault: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next[1].IsDefault {
		t.Fatal("second card must not become default even when requested")
	}
}

func TestAddCardInvalid(t *testing.T) {
	cases := []entity.PaymentCard{
		{ID: "x", Type: "Visa", Last4: "123"},
		{ID: "x", Type: "Visa", Last4: "12a4"},
		{ID: "x", Type: "Amex", Last4: "1234"},
		{ID: "x", Type: "Visa", Last4: "1234", Balance: -1},
	}
	for i, c := range cases {
		if _, err := AddCard(nil, c); !errors.Is(err, ErrInvalidCard) {
			t.Fatalf("case %d expected ErrInvalidCard, got %v", i, err)
		}
	}
}

func TestUpdateCard(t *testing.T) {
	cards := seedCards()
	next, err := UpdateCard(cards, "c2", UpdateCardRequest{Holder: "AMIR", Expiry: "01/28"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next[1].Holder != "AMIR" || next[1].Expiry != "01/28" {
		t.Fatalf("patch not applied: %+v", next[1])
	}
	if next[1].Last4 != "8831" || next[1].Balance != 3200 {
		t.Fatalf("untouched fields changed: %+v", next[1])
	}

	if _, err := UpdateCard(cards, "missing", UpdateCardRequest{}); !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestRemoveCardReassignsDefault(t *testing.T) {
	cards := seedCards()
	next, defaultID, err := RemoveCard(cards, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != 1 || !next[0].IsDefault || defaultID != "c2" {
		t.Fatalf("default not reassigned: %+v default=%s", next, defaultID)
	}

	if _, _, err := RemoveCard(cards, "missing"); !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestSetDefaultExactlyOne(t *testing.T) {
	next, err := SetDefault(seedCards(), "c2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defaults := 0
	for _, c := range next {
		if c.IsDefault {
			defaults++
			if c.ID != "c2" {
				t.Fatalf("wrong default: %s", c.ID)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}

	if _, err := SetDefault(seedCards(), "missing"); !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestTransferInsufficientFunds(t *testing.T) {
	cards := []entity.PaymentCard{{ID: "c1", Type: "Visa", Last4: "4242", Balance: 1000}}
	_, _, err := Transfer(cards, "c1", 1500, "r1", time.Now())
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if cards[0].Balance != 1000 {
		t.Fatalf("failed transfer mutated state: %v", cards[0].Balance)
	}
}

func TestTransferDebitsSourceOnly(t *testing.T) {
	cards := []entity.PaymentCard{{ID: "c1", Type: "Visa", Last4: "4242", Balance: 1000}}
	now := time.Now()
	next, receipt, err := Transfer(cards, "c1", 400, "r1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next[0].Balance != 600 {
		t.Fatalf("expected balance 600, got %v", next[0].Balance)
	}
	if cards[0].Balance != 1000 {
		t.Fatal("input slice mutated")
	}
	if receipt.CardID != "c1" || receipt.Amount != 400 || receipt.BalanceAfter != 600 || !receipt.CreatedAt.Equal(now) {
		t.Fatalf("bad receipt: %+v", receipt)
	}
}

func TestTransferValidation(t *testing.T) {
	cards := seedCards()
	if _, _, err := Transfer(cards, "c1", 0, "r1", time.Now()); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, _, err := Transfer(cards, "missing", 10, "r1", time.Now()); !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}
