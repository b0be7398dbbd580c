package analyticsService

import (
	"ProjectWafeer/internal/api/analytics"
	"ProjectWafeer/internal/session"
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestService() IAnalyticsService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewAnalyticsService(logger, session.New(logger))
}

func TestGetDashboard(t *testing.T) {
	svc := newTestService()

	dashboard, err := svc.GetDashboard(context.Background(), 30)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	if dashboard.MonthlyIncome != 20000 {
		t.Errorf("monthly income = %v, want 20000", dashboard.MonthlyIncome)
	}
	if dashboard.SafeToSpend != dashboard.MonthlyIncome-dashboard.MonthSpend {
		t.Errorf("safe-to-spend %v inconsistent with income %v - spend %v",
			dashboard.SafeToSpend, dashboard.MonthlyIncome, dashboard.MonthSpend)
	}
	if len(dashboard.DailySeries) != 30 {
		t.Errorf("daily series = %d points, want 30", len(dashboard.DailySeries))
	}
	// Seed carries six subscriptions, which is over the alert threshold.
	if dashboard.SubscriptionCount != 6 {
		t.Errorf("subscription count = %d, want 6", dashboard.SubscriptionCount)
	}
	if !dashboard.SubscriptionAlert {
		t.Error("subscription alert not raised")
	}
}

func TestGetForecast(t *testing.T) {
	svc := newTestService()

	forecast, err := svc.GetForecast(context.Background())
	if err != nil {
		t.Fatalf("GetForecast: %v", err)
	}
	if len(forecast.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(forecast.Events))
	}

	// Seeded 25 and 55 days out. Under a month away amortizes over one month;
	// 55 days spreads the cost across 55/30 months.
	ramadan, eid := forecast.Events[0], forecast.Events[1]
	if ramadan.DaysUntil != 25 || eid.DaysUntil != 55 {
		t.Fatalf("days until = %d/%d, want 25/55", ramadan.DaysUntil, eid.DaysUntil)
	}
	if ramadan.MonthlyNeed != 3000 {
		t.Errorf("ramadan monthly need = %v, want 3000", ramadan.MonthlyNeed)
	}
	if math.Abs(eid.MonthlyNeed-2454.5454) > 0.001 {
		t.Errorf("eid monthly need = %v, want ≈2454.5454", eid.MonthlyNeed)
	}
	if math.Abs(forecast.TotalMonthlyNeed-(ramadan.MonthlyNeed+eid.MonthlyNeed)) > 1e-9 {
		t.Errorf("total = %v, want sum of event needs", forecast.TotalMonthlyNeed)
	}
}

func TestCalculate(t *testing.T) {
	svc := newTestService()

	result, err := svc.Calculate(context.Background(), analytics.CalculatorRequest{
		EmergencyTarget:  12000,
		MonthsToAchieve:  12,
		GoalContribution: 500,
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if result.EmergencyMonthlyTarget != 1000 {
		t.Errorf("emergency monthly = %v, want 1000", result.EmergencyMonthlyTarget)
	}
	want := math.Round(result.EventMonthlyNeed + 500 + 1000)
	if result.RecommendedContribution != want {
		t.Errorf("recommended = %v, want %v", result.RecommendedContribution, want)
	}
}

func TestGetDashboardRejectsBadWindow(t *testing.T) {
	svc := newTestService()

	for _, window := range []int{0, -1, 91} {
		if _, err := svc.GetDashboard(context.Background(), window); !errors.Is(err, analytics.ErrInvalidWindow) {
			t.Errorf("window %d: err = %v, want ErrInvalidWindow", window, err)
		}
	}
}

func TestCalculateRejectsBadMonths(t *testing.T) {
	svc := newTestService()

	_, err := svc.Calculate(context.Background(), analytics.CalculatorRequest{
		EmergencyTarget: 12000,
		MonthsToAchieve: 0,
	})
	if !errors.Is(err, analytics.ErrInvalidCalculator) {
		t.Fatalf("err = %v, want ErrInvalidCalculator", err)
	}
}
