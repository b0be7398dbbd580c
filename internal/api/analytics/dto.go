package analytics

import "ProjectWafeer/pkg/finmath"

type DashboardResponse struct {
	MonthSpend        float64              `json:"month_spend"`
	SafeToSpend       float64              `json:"safe_to_spend"`
	MonthlyIncome     float64              `json:"monthly_income"`
	SubscriptionCount int                  `json:"subscription_count"`
	SubscriptionAlert bool                 `json:"subscription_alert"`
	DailySeries       []finmath.DailyPoint `json:"daily_series"`
}

type ForecastEventResponse struct {
	Name           string  `json:"name"`
	Date           string  `json:"date"`
	EstimatedCost  float64 `json:"estimated_cost"`
	DaysUntil      int     `json:"days_until"`
	MonthlyNeed    float64 `json:"monthly_need"`
	Recommendation string  `json:"recommendation"`
}

type ForecastResponse struct {
	Events           []ForecastEventResponse `json:"events"`
	TotalMonthlyNeed float64                 `json:"total_monthly_need"`
}

type CalculatorRequest struct {
	EmergencyTarget  float64 `json:"emergency_target" validate:"gte=0"`
	MonthsToAchieve  int     `json:"months_to_achieve" validate:"required,min=3,max=36"`
	GoalContribution float64 `json:"goal_contribution" validate:"gte=0"`
}

type CalculatorResponse struct {
	EventMonthlyNeed        float64 `json:"event_monthly_need"`
	EmergencyMonthlyTarget  float64 `json:"emergency_monthly_target"`
	GoalContribution        float64 `json:"goal_contribution"`
	RecommendedContribution float64 `json:"recommended_contribution"`
}
