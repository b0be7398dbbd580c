package profileService

import (
	"ProjectWafeer/internal/api/profile"
	"ProjectWafeer/internal/entity"
	contextPkg "ProjectWafeer/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *profileService) GetProfile(ctx context.Context) (entity.UserProfile, error) {
	return s.store.Profile(), nil
}

// ReplaceProfile swaps the whole profile. Obligations are managed through
// their own operations and survive the swap untouched.
func (s *profileService) ReplaceProfile(ctx context.Context, req profile.ReplaceProfileRequest) (entity.UserProfile, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.MonthlyIncome < 0 || req.SavingsGoal < 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"income":     req.MonthlyIncome,
		}).Warn("Invalid profile data")
		return entity.UserProfile{}, profile.ErrInvalidProfile
	}

	current := s.store.Profile()

	next := entity.UserProfile{
		Name:             req.Name,
		MonthlyIncome:    req.MonthlyIncome,
		MonthlyBudget:    req.MonthlyBudget,
		Currency:         req.Currency,
		SavingsGoal:      req.SavingsGoal,
		Language:         entity.Language(req.Language),
		Obligations:      current.Obligations,
		InterestedEvents: req.InterestedEvents,
	}

	s.store.ReplaceProfile(next)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"name":       next.Name,
		"language":   next.Language,
	}).Info("Profile replaced")

	return next, nil
}

func (s *profileService) AddObligation(ctx context.Context, req profile.AddObligationRequest) (entity.UserProfile, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidObligationType(req.Type) || req.Amount <= 0 || req.DayOfMonth < 1 || req.DayOfMonth > 31 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
		}).Warn("Invalid obligation data")
		return entity.UserProfile{}, profile.ErrInvalidObligation
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.UserProfile{}, err
	}

	current := s.store.Profile()
	current.Obligations = append(current.Obligations, entity.FinancialObligation{
		ID:         ULID,
		Type:       req.Type,
		Name:       req.Name,
		Amount:     req.Amount,
		DayOfMonth: req.DayOfMonth,
		EndYear:    req.EndYear,
	})

	s.store.ReplaceProfile(current)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         ULID,
		"type":       req.Type,
	}).Info("Obligation added")

	return current, nil
}

func (s *profileService) RemoveObligation(ctx context.Context, id string) (entity.UserProfile, error) {
	requestID := contextPkg.GetRequestID(ctx)

	current := s.store.Profile()

	next := make([]entity.FinancialObligation, 0, len(current.Obligations))
	found := false
	for _, o := range current.Obligations {
		if o.ID == id {
			found = true
			continue
		}
		next = append(next, o)
	}
	if !found {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Obligation not found")
		return entity.UserProfile{}, profile.ErrObligationNotFound
	}

	current.Obligations = next
	s.store.ReplaceProfile(current)

	return current, nil
}
