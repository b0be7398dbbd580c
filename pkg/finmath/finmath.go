// Package finmath holds the budget and forecast arithmetic behind the
// dashboard, calculator and wallet views. Every function is pure and
// deterministic given its inputs and an explicit reference date, so the
// numbers can be recomputed at any time from the raw entities.
package finmath

import (
	"ProjectWafeer/internal/entity"
	"ProjectWafeer/pkg/response"
	"math"
	"time"
)

var ErrInvalidInput = response.NewError(400, "invalid input")

// DefaultWindowDays is the daily-series window the dashboard chart uses.
const DefaultWindowDays = 30

// ParseDay parses a calendar day in the ledger's date layout.
func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return d, nil
}

// CurrentMonthSpend sums the amounts of transactions falling in the same
// calendar month and year as ref. There is no partial-month weighting.
func CurrentMonthSpend(txs []entity.Transaction, ref time.Time) (float64, error) {
	var total float64
	for _, tx := range txs {
		if tx.Amount < 0 {
			return 0, ErrInvalidInput
		}
		d, err := ParseDay(tx.Date)
		if err != nil {
			return 0, err
		}
		if d.Month() == ref.Month() && d.Year() == ref.Year() {
			total += tx.Amount
		}
	}
	return total, nil
}

// SafeToSpend is income minus month-to-date spend. The result may be
// negative; rendering a deficit is the caller's concern.
func SafeToSpend(monthlyIncome, monthSpend float64) (float64, error) {
	if monthlyIncome < 0 || monthSpend < 0 {
		return 0, ErrInvalidInput
	}
	return monthlyIncome - monthSpend, nil
}

type DailyPoint struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
}

// DailySeries returns one point per day for the last windowDays days,
// inclusive of ref and oldest first. Days without transactions yield zero.
func DailySeries(txs []entity.Transaction, ref time.Time, windowDays int) ([]DailyPoint, error) {
	if windowDays <= 0 {
		return nil, ErrInvalidInput
	}

	totals := make(map[string]float64, len(txs))
	for _, tx := range txs {
		if tx.Amount < 0 {
			return nil, ErrInvalidInput
		}
		if _, err := ParseDay(tx.Date); err != nil {
			return nil, err
		}
		totals[tx.Date] += tx.Amount
	}

	series := make([]DailyPoint, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i).Format(entity.DateLayout)
		series = append(series, DailyPoint{Day: day, Total: totals[day]})
	}
	return series, nil
}

// SubscriptionCount counts transactions flagged as subscriptions, duplicates
// included.
func SubscriptionCount(txs []entity.Transaction) int {
	count := 0
	for _, tx := range txs {
		if tx.IsSubscription {
			count++
		}
	}
	return count
}

// UniqueSubscriptions keeps one representative subscription transaction per
// merchant, first seen in input order. Callers wanting most-recent-per-merchant
// semantics pre-sort by date descending.
func UniqueSubscriptions(txs []entity.Transaction) []entity.Transaction {
	seen := make(map[string]struct{}, len(txs))
	var unique []entity.Transaction
	for _, tx := range txs {
		if !tx.IsSubscription {
			continue
		}
		if _, ok := seen[tx.Merchant]; ok {
			continue
		}
		seen[tx.Merchant] = struct{}{}
		unique = append(unique, tx)
	}
	return unique
}

// DaysUntil projects the whole days between ref and a calendar day, clamped
// at zero for past dates.
func DaysUntil(date string, ref time.Time) (int, error) {
	d, err := ParseDay(date)
	if err != nil {
		return 0, err
	}
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	days := int(d.Sub(refDay).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days, nil
}

// EventMonthlyNeed amortizes an event's cost over the months remaining until
// it occurs. The denominator is clamped at one month, so an event due
// tomorrow still spreads over a full month; coarse on purpose.
func EventMonthlyNeed(event entity.ForecastEvent, ref time.Time) (float64, error) {
	if event.EstimatedCost < 0 {
		return 0, ErrInvalidInput
	}
	days, err := DaysUntil(event.Date, ref)
	if err != nil {
		return 0, err
	}
	months := math.Max(1, float64(days)/30)
	return event.EstimatedCost / months, nil
}

// TotalEventNeed sums EventMonthlyNeed across all events.
func TotalEventNeed(events []entity.ForecastEvent, ref time.Time) (float64, error) {
	var total float64
	for _, event := range events {
		need, err := EventMonthlyNeed(event, ref)
		if err != nil {
			return 0, err
		}
		total += need
	}
	return total, nil
}

// EmergencyMonthlyTarget spreads an emergency-fund target evenly over months.
// The UI restricts months to [3,36]; the engine still rejects anything below one.
func EmergencyMonthlyTarget(target float64, months int) (float64, error) {
	if target < 0 || months <= 0 {
		return 0, ErrInvalidInput
	}
	return math.Round(target / float64(months)), nil
}

// RecommendedMonthlyContribution is the sum of the amortized event need, the
// goal contribution and the emergency target, rounded to whole currency units.
func RecommendedMonthlyContribution(eventNeed, goalContribution, emergencyTarget float64) (float64, error) {
	if eventNeed < 0 || goalContribution < 0 || emergencyTarget < 0 {
		return 0, ErrInvalidInput
	}
	return math.Round(eventNeed + goalContribution + emergencyTarget), nil
}
