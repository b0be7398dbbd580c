package analyticsService

import (
	"ProjectWafeer/internal/api/analytics"
	contextPkg "ProjectWafeer/pkg/context"
	"ProjectWafeer/pkg/finmath"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// subscriptionAlertThreshold is the subscription count above which the
// dashboard flags the user's recurring spend.
const subscriptionAlertThreshold = 5

// maxWindowDays caps the daily-series window a client may request.
const maxWindowDays = 90

func (s *analyticsService) GetDashboard(ctx context.Context, windowDays int) (analytics.DashboardResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if windowDays <= 0 || windowDays > maxWindowDays {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"window":     windowDays,
		}).Warn("Invalid daily-series window")
		return analytics.DashboardResponse{}, analytics.ErrInvalidWindow
	}

	profile := s.store.Profile()
	txs := s.store.Transactions()
	now := time.Now()

	monthSpend, err := finmath.CurrentMonthSpend(txs, now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to compute month spend")
		return analytics.DashboardResponse{}, err
	}

	safeToSpend, err := finmath.SafeToSpend(profile.MonthlyIncome, monthSpend)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to compute safe-to-spend")
		return analytics.DashboardResponse{}, err
	}

	series, err := finmath.DailySeries(txs, now, windowDays)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to compute daily series")
		return analytics.DashboardResponse{}, err
	}

	subCount := finmath.SubscriptionCount(txs)

	return analytics.DashboardResponse{
		MonthSpend:        monthSpend,
		SafeToSpend:       safeToSpend,
		MonthlyIncome:     profile.MonthlyIncome,
		SubscriptionCount: subCount,
		SubscriptionAlert: subCount > subscriptionAlertThreshold,
		DailySeries:       series,
	}, nil
}

func (s *analyticsService) GetForecast(ctx context.Context) (analytics.ForecastResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	events := s.store.Events()
	now := time.Now()

	responses := make([]analytics.ForecastEventResponse, 0, len(events))
	for _, event := range events {
		days, err := finmath.DaysUntil(event.Date, now)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"event":      event.Name,
				"error":      err.Error(),
			}).Error("Failed to project days until event")
			return analytics.ForecastResponse{}, err
		}

		need, err := finmath.EventMonthlyNeed(event, now)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"event":      event.Name,
				"error":      err.Error(),
			}).Error("Failed to amortize event cost")
			return analytics.ForecastResponse{}, err
		}

		responses = append(responses, analytics.ForecastEventResponse{
			Name:           event.Name,
			Date:           event.Date,
			EstimatedCost:  event.EstimatedCost,
			DaysUntil:      days,
			MonthlyNeed:    need,
			Recommendation: event.Recommendation,
		})
	}

	total, err := finmath.TotalEventNeed(events, now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to total event need")
		return analytics.ForecastResponse{}, err
	}

	return analytics.ForecastResponse{
		Events:           responses,
		TotalMonthlyNeed: total,
	}, nil
}

func (s *analyticsService) Calculate(ctx context.Context, req analytics.CalculatorRequest) (analytics.CalculatorResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	now := time.Now()

	eventNeed, err := finmath.TotalEventNeed(s.store.Events(), now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to total event need")
		return analytics.CalculatorResponse{}, err
	}

	emergency, err := finmath.EmergencyMonthlyTarget(req.EmergencyTarget, req.MonthsToAchieve)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"months":     req.MonthsToAchieve,
			"error":      err.Error(),
		}).Warn("Invalid emergency fund input")
		return analytics.CalculatorResponse{}, analytics.ErrInvalidCalculator
	}

	recommended, err := finmath.RecommendedMonthlyContribution(eventNeed, req.GoalContribution, emergency)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid contribution input")
		return analytics.CalculatorResponse{}, analytics.ErrInvalidCalculator
	}

	return analytics.CalculatorResponse{
		EventMonthlyNeed:        eventNeed,
		EmergencyMonthlyTarget:  emergency,
		GoalContribution:        req.GoalContribution,
		RecommendedContribution: recommended,
	}, nil
}
