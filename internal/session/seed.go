package session

import (
	"ProjectWafeer/internal/entity"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Demo dataset for a session without a real bank feed. Amounts are in SAR.

var seedMerchants = map[entity.SpendingCategory][]string{
	entity.CategoryGroceries:     {"Danube", "Tamimi Markets", "Carrefour", "Lulu Hypermarket"},
	entity.CategoryDining:        {"HungerStation", "Al Baik", "Starbucks", "Maestro Pizza"},
	entity.CategoryShopping:      {"Amazon SA", "Jarir Bookstore", "Extra", "Namshi"},
	entity.CategoryUtilities:     {"SEC", "NWC", "STC", "Mobily"},
	entity.CategoryEntertainment: {"Netflix", "Spotify", "VOX Cinemas", "Steam"},
	entity.CategoryTransport:     {"Petromin", "Uber", "Riyadh Metro", "Careem"},
}

var seedCategories = []entity.SpendingCategory{
	entity.CategoryGroceries,
	entity.CategoryDining,
	entity.CategoryShopping,
	entity.CategoryUtilities,
	entity.CategoryEntertainment,
	entity.CategoryTransport,
}

func seedProfile() entity.UserProfile {
	return entity.UserProfile{
		Name:          "Amir",
		MonthlyIncome: 20000,
		MonthlyBudget: 15000,
		Currency:      "SAR",
		SavingsGoal:   40000,
		Language:      entity.LanguageEnglish,
	}
}

func seedTransactions(now time.Time) []entity.Transaction {
	// Fixed source: the same session always sees the same ledger.
	rng := rand.New(rand.NewSource(now.Truncate(24 * time.Hour).Unix()))

	subs := []struct {
		name   string
		amount float64
	}{
		{"Netflix", 45.00},
		{"Spotify", 20.00},
		{"Adobe Creative Cloud", 205.00},
		{"Amazon Prime", 16.00},
		{"Fitness Time", 450.00},
		{"OSN+", 35.00},
	}

	txs := make([]entity.Transaction, 0, len(subs)+50)
	for i, sub := range subs {
		day := time.Date(now.Year(), now.Month(), (i%28)+1, 0, 0, 0, 0, time.UTC)
		txs = append(txs, entity.Transaction{
			ID:             fmt.Sprintf("sub-%d", i),
			Date:           day.Format(entity.DateLayout),
			Amount:         sub.amount,
			Merchant:       sub.name,
			Category:       string(entity.CategoryEntertainment),
			IsSubscription: true,
			CreatedAt:      day,
		})
	}

	for i := 0; i < 50; i++ {
		category := seedCategories[rng.Intn(len(seedCategories))]
		merchants := seedMerchants[category]
		merchant := merchants[rng.Intn(len(merchants))]
		day := now.AddDate(0, 0, -rng.Intn(60))

		var amount float64
		switch category {
		case entity.CategoryGroceries:
			amount = 150 + rng.Float64()*600
		case entity.CategoryDining:
			amount = 30 + rng.Float64()*250
		case entity.CategoryShopping:
			amount = 100 + rng.Float64()*800
		case entity.CategoryUtilities:
			amount = 200 + rng.Float64()*400
		default:
			amount = 20 + rng.Float64()*150
		}

		txs = append(txs, entity.Transaction{
			ID:        fmt.Sprintf("tx-%d", i),
			Date:      day.Format(entity.DateLayout),
			Amount:    float64(int(amount*100)) / 100,
			Merchant:  merchant,
			Category:  string(category),
			CreatedAt: day,
		})
	}

	return txs
}

func seedEvents(now time.Time) []entity.ForecastEvent {
	return []entity.ForecastEvent{
		{
			Name:           "Ramadan Prep",
			Date:           now.AddDate(0, 0, 25).Format(entity.DateLayout),
			EstimatedCost:  3000,
			Recommendation: "Increase grocery budget by 30% for bulk buying. Start saving SAR 120/day.",
		},
		{
			Name:           "Eid al-Fitr Gifts",
			Date:           now.AddDate(0, 0, 55).Format(entity.DateLayout),
			EstimatedCost:  4500,
			Recommendation: "Set aside SAR 750/week. Look for early discounts on gifts at Jarir or Extra.",
		},
	}
}

func seedGoals() []entity.Goal {
	return []entity.Goal{
		{
			ID:       "goal-1",
			Name:     "Ramadan Prep",
			Current:  2000,
			Target:   3000,
			Color:    "from-emerald-400 to-emerald-600",
			Deadline: "2025-02-28",
			Recurring: &entity.RecurringContribution{
				Amount:    120,
				Frequency: entity.FrequencyWeekly,
			},
		},
		{
			ID:      "goal-2",
			Name:    "Emergency Fund",
			Current: 12500,
			Target:  40000,
			Color:   "from-red-400 to-red-600",
			Recurring: &entity.RecurringContribution{
				Amount:    1000,
				Frequency: entity.FrequencyMonthly,
			},
		},
		{
			ID:       "goal-3",
			Name:     "Eid al-Fitr Gifts",
			Current:  600,
			Target:   4500,
			Color:    "from-blue-400 to-blue-600",
			Deadline: "2025-03-30",
		},
	}
}

func seedCards(holder string) []entity.PaymentCard {
	return []entity.PaymentCard{
		{
			ID:        "card-1",
			Type:      string(entity.CardMada),
			Last4:     "4242",
			Expiry:    "12/25",
			Holder:    strings.ToUpper(holder),
			Color:     "bg-gradient-to-br from-indigo-600 to-blue-800",
			Balance:   15420,
			IsDefault: true,
		},
		{
			ID:      "card-2",
			Type:    string(entity.CardVisa),
			Last4:   "8831",
			Expiry:  "09/26",
			Holder:  strings.ToUpper(holder),
			Color:   "bg-gradient-to-br from-slate-700 to-slate-900",
			Balance: 3200,
		},
	}
}

func seedNotifications(now time.Time) []entity.Notification {
	return []entity.Notification{
		{
			ID:        "ntf-1",
			Title:     "Spending Alert",
			Message:   "You have exceeded 80% of your Dining budget for this month.",
			Type:      entity.NotificationWarning,
			Timestamp: now.Add(-2 * time.Minute),
		},
		{
			ID:        "ntf-2",
			Title:     "Upcoming Bill",
			Message:   "Your STC internet bill (SAR 250) is due in 3 days.",
			Type:      entity.NotificationAlert,
			Timestamp: now.Add(-1 * time.Hour),
		},
		{
			ID:        "ntf-3",
			Title:     "Goal Milestone",
			Message:   "Congratulations! You reached 25% of your Emergency Fund goal.",
			Type:      entity.NotificationSuccess,
			Timestamp: now.AddDate(0, 0, -1),
			IsRead:    true,
		},
		{
			ID:        "ntf-4",
			Title:     "Ramadan Prep",
			Message:   "Tip: Start bulk buying non-perishables now to save ~15%.",
			Type:      entity.NotificationInfo,
			Timestamp: now.AddDate(0, 0, -2),
			IsRead:    true,
		},
	}
}
