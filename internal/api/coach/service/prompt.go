package coachService

import (
	"ProjectWafeer/internal/entity"
	"ProjectWafeer/pkg/finmath"
	"fmt"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// recentTransactionLimit bounds how much of the ledger goes into a prompt.
const recentTransactionLimit = 15

// recentTransactions returns the newest transactions first, CreatedAt breaking
// ties within a day, truncated to the prompt limit. The ledger arrives in
// store insertion order, which is not recency order.
func recentTransactions(txs []entity.Transaction) []entity.Transaction {
	recent := make([]entity.Transaction, len(txs))
	copy(recent, txs)

	sort.SliceStable(recent, func(i, j int) bool {
		if recent[i].Date != recent[j].Date {
			return recent[i].Date > recent[j].Date
		}
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}
	return recent
}

func eventsContext(events []entity.ForecastEvent, now time.Time) string {
	parts := make([]string, 0, len(events))
	for _, e := range events {
		days, err := finmath.DaysUntil(e.Date, now)
		if err != nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s in %d days (est. cost SAR %.0f)", e.Name, days, e.EstimatedCost))
	}
	return strings.Join(parts, ", ")
}

func buildSummaryPrompt(profile entity.UserProfile, txs []entity.Transaction, events []entity.ForecastEvent, now time.Time) string {
	txJSON, err := jsoniter.MarshalIndent(recentTransactions(txs), "", "  ")
	if err != nil {
		txJSON = []byte("[]")
	}

	return fmt.Sprintf(`You are Wafeer, an expert personal finance coach for a user in Saudi Arabia. Analyze the following financial snapshot for %s.

Context:
- Monthly Income: SAR %.0f
- Savings Goal: SAR %.0f total
- Upcoming Major Events: %s

Recent Transactions:
%s

Please provide a concise, actionable 3-bullet point summary focusing on:
1. Current spending pacing relative to income (in SAR).
2. Specific advice for the upcoming events (e.g. Ramadan/Eid).
3. Identify one area to cut costs immediately.

Keep the tone encouraging but direct. Output in plain text with bullet points.`,
		profile.Name, profile.MonthlyIncome, profile.SavingsGoal, eventsContext(events, now), txJSON)
}

func buildChatSystemInstruction(profile entity.UserProfile, events []entity.ForecastEvent) string {
	eventsJSON, err := jsoniter.Marshal(events)
	if err != nil {
		eventsJSON = []byte("[]")
	}

	return fmt.Sprintf(`You are Wafeer, a smart, empathetic, and event-aware financial budget coach for a user in Saudi Arabia.
You have access to the user's financial data.

User Profile:
- Name: %s
- Income: SAR %.0f/mo

Upcoming Events:
%s

Key Behaviors:
- All monetary values should be in Saudi Riyals (SAR).
- Be proactive about upcoming cultural events (like Ramadan, Eid, National Day) if they appear in the data or context.
- If a user asks "Can I afford X?", calculate based on their income and recent spending trends.
- Keep responses concise (under 100 words unless detailed explanation is requested).
- Use emoji occasionally to be friendly. 🌙 ✨ 💰`,
		profile.Name, profile.MonthlyIncome, eventsJSON)
}
