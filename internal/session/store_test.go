package session

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestStore() *Store {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger)
}

func TestNewSeedsSession(t *testing.T) {
	s := newTestStore()

	if got := s.Profile().Name; got != "Amir" {
		t.Fatalf("profile name = %q, want Amir", got)
	}
	if got := len(s.Transactions()); got != 56 {
		t.Errorf("transactions = %d, want 56", got)
	}
	if got := len(s.Goals()); got != 3 {
		t.Errorf("goals = %d, want 3", got)
	}
	if got := len(s.Cards()); got != 2 {
		t.Errorf("cards = %d, want 2", got)
	}
	if got := len(s.Events()); got != 2 {
		t.Errorf("events = %d, want 2", got)
	}
	if got := len(s.Conversation()); got != 0 {
		t.Errorf("conversation = %d, want empty", got)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := newTestStore()

	goals := s.Goals()
	goals[0].Name = "mutated"

	if got := s.Goals()[0].Name; got == "mutated" {
		t.Fatal("mutating a read snapshot leaked into the store")
	}

	cards := s.Cards()
	cards[0].Balance = -1

	if got := s.Cards()[0].Balance; got == -1 {
		t.Fatal("mutating a card snapshot leaked into the store")
	}
}

func TestReplaceSwapsWholesale(t *testing.T) {
	s := newTestStore()

	s.ReplaceGoals(nil)
	if got := len(s.Goals()); got != 0 {
		t.Fatalf("goals after replace = %d, want 0", got)
	}

	next := s.Cards()[:1]
	s.ReplaceCards(next)
	if got := len(s.Cards()); got != 1 {
		t.Fatalf("cards after replace = %d, want 1", got)
	}

	// The store must own its copy of the replacement slice.
	next[0].Balance = 999999
	if got := s.Cards()[0].Balance; got == 999999 {
		t.Fatal("store aliased the caller's slice on replace")
	}
}

func TestProfileObligationsAreCopied(t *testing.T) {
	s := newTestStore()

	p := s.Profile()
	p.MonthlyIncome = 1

	if got := s.Profile().MonthlyIncome; got == 1 {
		t.Fatal("mutating a profile snapshot leaked into the store")
	}
}
