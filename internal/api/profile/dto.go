package profile

import "ProjectWafeer/internal/entity"

// ReplaceProfileRequest carries the whole profile; partial updates are not a
// thing, the session profile is swapped in one piece.
type ReplaceProfileRequest struct {
	Name             string   `json:"name" validate:"required"`
	MonthlyIncome    float64  `json:"monthly_income" validate:"gte=0"`
	MonthlyBudget    float64  `json:"monthly_budget" validate:"gte=0"`
	Currency         string   `json:"currency" validate:"required"`
	SavingsGoal      float64  `json:"savings_goal" validate:"gte=0"`
	Language         string   `json:"language" validate:"required,oneof=en ar"`
	InterestedEvents []string `json:"interested_events"`
}

type AddObligationRequest struct {
	Type       string  `json:"type" validate:"required,oneof=Family Loan Installment Other"`
	Name       string  `json:"name" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	DayOfMonth int     `json:"day_of_month" validate:"required,min=1,max=31"`
	EndYear    int     `json:"end_year" validate:"omitempty,min=2024"`
}

type ProfileResponse struct {
	Profile entity.UserProfile `json:"profile"`
}
