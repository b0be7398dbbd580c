package entity

type ObligationType string

const (
	ObligationFamily      ObligationType = "Family"
	ObligationLoan        ObligationType = "Loan"
	ObligationInstallment ObligationType = "Installment"
	ObligationOther       ObligationType = "Other"
)

func IsValidObligationType(t string) bool {
	switch ObligationType(t) {
	case ObligationFamily, ObligationLoan, ObligationInstallment, ObligationOther:
		return true
	default:
		return false
	}
}

// FinancialObligation is a recurring monthly deduction, e.g. a car loan
// installment due on DayOfMonth.
type FinancialObligation struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	DayOfMonth int     `json:"day_of_month"`
	EndYear    int     `json:"end_year,omitempty"`
}

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// UserProfile is a per-session singleton. It is replaced wholesale on update,
// never patched field by field outside the settings flow.
type UserProfile struct {
	Name             string                `json:"name"`
	MonthlyIncome    float64               `json:"monthly_income"`
	MonthlyBudget    float64               `json:"monthly_budget,omitempty"`
	Currency         string                `json:"currency"`
	SavingsGoal      float64               `json:"savings_goal"`
	Language         Language              `json:"language"`
	Obligations      []FinancialObligation `json:"obligations,omitempty"`
	InterestedEvents []string              `json:"interested_events,omitempty"`
}
