package finmath

import (
	"ProjectWafeer/internal/entity"
	"math"
	"testing"
	"time"
)

var ref = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func tx(date string, amount float64) entity.Transaction {
	return entity.Transaction{Date: date, Amount: amount, Merchant: "m", Category: "Dining"}
}

func sub(merchant string, amount float64) entity.Transaction {
	return entity.Transaction{Date: "2025-01-02", Amount: amount, Merchant: merchant, IsSubscription: true}
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 0.01
}

func TestCurrentMonthSpend(t *testing.T) {
	cases := []struct {
		name string
		txs  []entity.Transaction
		want float64
	}{
		{"empty", nil, 0},
		{"only current month counted", []entity.Transaction{
			tx("2025-01-01", 100), tx("2025-01-31", 50.5), tx("2024-12-31", 900), tx("2025-02-01", 900),
		}, 150.5},
		{"same month previous year excluded", []entity.Transaction{
			tx("2024-01-10", 75), tx("2025-01-10", 25),
		}, 25},
	}
	for _, tc := range cases {
		got, err := CurrentMonthSpend(tc.txs, ref)
		if err != nil || !approx(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v (err=%v)", tc.name, tc.want, got, err)
		}
	}
}

func TestCurrentMonthSpendOrderInsensitive(t *testing.T) {
	a := []entity.Transaction{tx("2025-01-03", 10), tx("2025-01-04", 20), tx("2025-01-05", 30)}
	b := []entity.Transaction{a[2], a[0], a[1]}

	gotA, _ := CurrentMonthSpend(a, ref)
	gotB, _ := CurrentMonthSpend(b, ref)
	if gotA != gotB {
		t.Fatalf("order changed the sum: %v vs %v", gotA, gotB)
	}
}

func TestCurrentMonthSpendInvalid(t *testing.T) {
	if _, err := CurrentMonthSpend([]entity.Transaction{tx("not-a-date", 10)}, ref); err == nil {
		t.Fatal("expected error for unparseable date")
	}
	if _, err := CurrentMonthSpend([]entity.Transaction{tx("2025-01-03", -10)}, ref); err == nil {
		t.Fatal("expected error for negative amount")
	}
}

func TestSafeToSpend(t *testing.T) {
	got, err := SafeToSpend(20000, 4500)
	if err != nil || got != 15500 {
		t.Fatalf("expected 15500, got %v (err=%v)", got, err)
	}

	// Overspend yields a negative number; the engine does not clamp it.
	got, err = SafeToSpend(1000, 1500)
	if err != nil || got != -500 {
		t.Fatalf("expected -500, got %v (err=%v)", got, err)
	}

	if _, err := SafeToSpend(-1, 0); err == nil {
		t.Fatal("expected error for negative income")
	}
}

func TestDailySeries(t *testing.T) {
	txs := []entity.Transaction{
		tx("2025-01-15", 40), tx("2025-01-15", 10), tx("2025-01-01", 5), tx("2024-12-17", 7),
	}

	series, err := DailySeries(txs, ref, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 30 {
		t.Fatalf("expected 30 points, got %d", len(series))
	}
	if series[0].Day != "2024-12-17" || series[29].Day != "2025-01-15" {
		t.Fatalf("window misaligned: %s .. %s", series[0].Day, series[29].Day)
	}
	for i := 1; i < len(series); i++ {
		if series[i].Day <= series[i-1].Day {
			t.Fatalf("series not chronological at %d", i)
		}
	}

	var total float64
	for _, p := range series {
		total += p.Total
	}
	if !approx(total, 62) {
		t.Fatalf("window total expected 62, got %v", total)
	}
	if !approx(series[29].Total, 50) {
		t.Fatalf("reference day expected 50, got %v", series[29].Total)
	}
}

func TestDailySeriesInvalidWindow(t *testing.T) {
	if _, err := DailySeries(nil, ref, 0); err == nil {
		t.Fatal("expected error for zero window")
	}
	if _, err := DailySeries(nil, ref, -5); err == nil {
		t.Fatal("expected error for negative window")
	}
}

func TestSubscriptionCount(t *testing.T) {
	txs := []entity.Transaction{sub("Netflix", 45), sub("Netflix", 45), sub("Spotify", 20), tx("2025-01-03", 99)}
	if got := SubscriptionCount(txs); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestUniqueSubscriptionsFirstSeenWins(t *testing.T) {
	first := sub("Netflix", 45)
	txs := []entity.Transaction{first, sub("Netflix", 48), sub("Spotify", 20)}

	unique := UniqueSubscriptions(txs)
	if len(unique) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(unique))
	}
	if unique[0].Merchant != "Netflix" || unique[0].Amount != first.Amount {
		t.Fatalf("first occurrence not kept: %+v", unique[0])
	}
	if unique[1].Merchant != "Spotify" {
		t.Fatalf("expected Spotify second, got %s", unique[1].Merchant)
	}
}

func TestDaysUntil(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2025-01-16", 1},
		{"2025-02-14", 30},
		{"2025-01-15", 0},
		{"2024-06-01", 0}, // past dates clamp to zero
	}
	for _, tc := range cases {
		got, err := DaysUntil(tc.date, ref)
		if err != nil || got != tc.want {
			t.Fatalf("%s: expected %d, got %d (err=%v)", tc.date, tc.want, got, err)
		}
	}

	if _, err := DaysUntil("15/01/2025", ref); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}

func TestEventMonthlyNeed(t *testing.T) {
	// 4500 over 55 days: 4500 / (55/30) = 2454.54...
	event := entity.ForecastEvent{Name: "Eid al-Fitr Gifts", Date: "2025-03-11", EstimatedCost: 4500}
	got, err := EventMonthlyNeed(event, ref)
	if err != nil || !approx(got, 2454.55) {
		t.Fatalf("expected ~2454.55, got %v (err=%v)", got, err)
	}

	// Near-term events amortize over at least one month.
	near := entity.ForecastEvent{Name: "Tomorrow", Date: "2025-01-16", EstimatedCost: 900}
	got, err = EventMonthlyNeed(near, ref)
	if err != nil || got != 900 {
		t.Fatalf("expected 900, got %v (err=%v)", got, err)
	}

	if _, err := EventMonthlyNeed(entity.ForecastEvent{Date: "2025-02-01", EstimatedCost: -1}, ref); err == nil {
		t.Fatal("expected error for negative cost")
	}
}

func TestTotalEventNeed(t *testing.T) {
	events := []entity.ForecastEvent{
		{Name: "Ramadan Prep", Date: "2025-02-09", EstimatedCost: 3000},   // 25 days
		{Name: "Eid al-Fitr Gifts", Date: "2025-03-11", EstimatedCost: 4500}, // 55 days
	}
	got, err := TotalEventNeed(events, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 3000.0 + 4500.0/(55.0/30.0) // 25 days clamps to 1 month
	if !approx(got, want) {
		t.Fatalf("expected ~%v, got %v", want, got)
	}
}

func TestEmergencyMonthlyTarget(t *testing.T) {
	got, err := EmergencyMonthlyTarget(20000, 12)
	if err != nil || got != 1667 {
		t.Fatalf("expected 1667, got %v (err=%v)", got, err)
	}

	if _, err := EmergencyMonthlyTarget(20000, 0); err == nil {
		t.Fatal("expected error for zero months")
	}
	if _, err := EmergencyMonthlyTarget(-1, 12); err == nil {
		t.Fatal("expected error for negative target")
	}
}

func TestRecommendedMonthlyContribution(t *testing.T) {
	got, err := RecommendedMonthlyContribution(2454.55, 2500, 1667)
	if err != nil || got != 6622 {
		t.Fatalf("expected 6622, got %v (err=%v)", got, err)
	}

	if _, err := RecommendedMonthlyContribution(-1, 0, 0); err == nil {
		t.Fatal("expected error for negative input")
	}
}
