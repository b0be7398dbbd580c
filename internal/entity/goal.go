package entity

type ContributionFrequency string

const (
	FrequencyWeekly  ContributionFrequency = "Weekly"
	FrequencyMonthly ContributionFrequency = "Monthly"
)

type RecurringContribution struct {
	Amount    float64               `json:"amount"`
	Frequency ContributionFrequency `json:"frequency"`
}

// Goal is a user-defined savings target. Current may exceed Target (over-funded);
// progress display clamps at 100%. Current is never auto-decremented.
type Goal struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Current   float64                `json:"current"`
	Target    float64                `json:"target"`
	Color     string                 `json:"color"`
	Deadline  string                 `json:"deadline,omitempty"`
	Recurring *RecurringContribution `json:"recurring,omitempty"`
}
