// Package session owns the single logical session's state. There is exactly
// one logical writer (the UI event loop); the store still guards its fields
// with a mutex and swaps whole collections so a reader can never observe a
// half-applied mutation. Nothing here is durable: reload loses the session.
package session

import (
	"ProjectWafeer/internal/entity"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Store struct {
	mu sync.RWMutex

	profile       entity.UserProfile
	transactions  []entity.Transaction
	goals         []entity.Goal
	cards         []entity.PaymentCard
	notifications []entity.Notification
	events        []entity.ForecastEvent
	conversation  []entity.ChatTurn
}

// New builds a store pre-loaded with the demo dataset.
func New(log *logrus.Logger) *Store {
	now := time.Now()
	profile := seedProfile()

	s := &Store{
		profile:       profile,
		transactions:  seedTransactions(now),
		goals:         seedGoals(),
		cards:         seedCards(profile.Name),
		notifications: seedNotifications(now),
		events:        seedEvents(now),
	}

	log.WithFields(logrus.Fields{
		"transactions": len(s.transactions),
		"goals":        len(s.goals),
		"cards":        len(s.cards),
		"events":       len(s.events),
	}).Info("Session store seeded")

	return s
}

func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func (s *Store) Profile() entity.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.profile
	p.Obligations = copySlice(p.Obligations)
	p.InterestedEvents = copySlice(p.InterestedEvents)
	return p
}

// ReplaceProfile swaps the profile wholesale; the settings flow never patches
// individual fields in place.
func (s *Store) ReplaceProfile(p entity.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}

func (s *Store) Transactions() []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.transactions)
}

func (s *Store) ReplaceTransactions(txs []entity.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = copySlice(txs)
}

func (s *Store) Goals() []entity.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.goals)
}

func (s *Store) ReplaceGoals(goals []entity.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = copySlice(goals)
}

func (s *Store) Cards() []entity.PaymentCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.cards)
}

func (s *Store) ReplaceCards(cards []entity.PaymentCard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = copySlice(cards)
}

func (s *Store) Notifications() []entity.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.notifications)
}

func (s *Store) ReplaceNotifications(notifications []entity.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = copySlice(notifications)
}

// Events are read-only reference data; there is no replace.
func (s *Store) Events() []entity.ForecastEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.events)
}

func (s *Store) Conversation() []entity.ChatTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.conversation)
}

func (s *Store) ReplaceConversation(turns []entity.ChatTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversation = copySlice(turns)
}
