package coachService

import (
	"ProjectWafeer/internal/api/coach"
	"ProjectWafeer/internal/entity"
	"ProjectWafeer/internal/session"
	"ProjectWafeer/pkg/insight"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type fakeInsight struct {
	summary     string
	reply       string
	err         error
	lastHistory []insight.Message
}

func (f *fakeInsight) Summarize(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.summary, nil
}

func (f *fakeInsight) Respond(ctx context.Context, systemInstruction string, history []insight.Message, message string) (string, error) {
	f.lastHistory = history
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (f *fakeCache) SetInsight(ctx context.Context, key string, text string, expiration time.Duration) error {
	f.values[key] = text
	return nil
}

func (f *fakeCache) GetInsight(ctx context.Context, key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func newTestStore() *session.Store {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return session.New(logger)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestGetSummaryCachesResult(t *testing.T) {
	provider := &fakeInsight{summary: "spend less on dining"}
	cache := newFakeCache()
	svc := NewCoachService(testLogger(), newTestStore(), provider, cache)

	first, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if first.Summary != "spend less on dining" {
		t.Errorf("summary = %q", first.Summary)
	}
	if first.Cached || first.Degraded {
		t.Errorf("first call flags = cached %v degraded %v, want false/false", first.Cached, first.Degraded)
	}

	second, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary cached: %v", err)
	}
	if !second.Cached {
		t.Error("second call not served from cache")
	}
	if second.Summary != first.Summary {
		t.Errorf("cached summary = %q, want %q", second.Summary, first.Summary)
	}
}

func TestGetSummaryFallsBackOnProviderError(t *testing.T) {
	provider := &fakeInsight{err: insight.ErrProviderError}
	svc := NewCoachService(testLogger(), newTestStore(), provider, nil)

	got, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("provider failure must not surface: %v", err)
	}
	if !got.Degraded {
		t.Error("degraded flag not set")
	}
	if got.Summary != coach.FallbackSummary {
		t.Errorf("summary = %q, want fallback", got.Summary)
	}
}

func TestGetSummaryWithoutProvider(t *testing.T) {
	svc := NewCoachService(testLogger(), newTestStore(), nil, nil)

	got, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if !got.Degraded || got.Summary != coach.FallbackSummary {
		t.Errorf("got %+v, want degraded fallback", got)
	}
}

func TestChatAppendsConversation(t *testing.T) {
	provider := &fakeInsight{reply: "You can afford it 💰"}
	store := newTestStore()
	svc := NewCoachService(testLogger(), store, provider, nil)

	got, err := svc.Chat(context.Background(), coach.ChatRequest{Message: "Can I afford a new phone?"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if got.Degraded {
		t.Error("degraded flag set on success")
	}
	if got.Reply != "You can afford it 💰" {
		t.Errorf("reply = %q", got.Reply)
	}

	turns := store.Conversation()
	if len(turns) != 2 {
		t.Fatalf("conversation = %d turns, want 2", len(turns))
	}
	if turns[0].Role != entity.ChatRoleUser || turns[1].Role != entity.ChatRoleModel {
		t.Errorf("turn roles = %s/%s", turns[0].Role, turns[1].Role)
	}
}

func TestChatTrimsHistory(t *testing.T) {
	provider := &fakeInsight{reply: "ok"}
	store := newTestStore()
	svc := NewCoachService(testLogger(), store, provider, nil)

	turns := make([]entity.ChatTurn, 0, 24)
	for i := 0; i < 24; i++ {
		role := entity.ChatRoleUser
		if i%2 == 1 {
			role = entity.ChatRoleModel
		}
		turns = append(turns, entity.ChatTurn{Role: role, Text: strings.Repeat("x", i+1), Timestamp: time.Now()})
	}
	store.ReplaceConversation(turns)

	if _, err := svc.Chat(context.Background(), coach.ChatRequest{Message: "hi"}); err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if len(provider.lastHistory) != 10 {
		t.Fatalf("history sent to provider = %d turns, want 10", len(provider.lastHistory))
	}
	// Most recent turns survive the trim.
	if provider.lastHistory[9].Text != strings.Repeat("x", 24) {
		t.Error("trim dropped the wrong end of the history")
	}
}

func TestChatFallsBackOnProviderError(t *testing.T) {
	provider := &fakeInsight{err: insight.ErrProviderError}
	store := newTestStore()
	svc := NewCoachService(testLogger(), store, provider, nil)

	got, err := svc.Chat(context.Background(), coach.ChatRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("provider failure must not surface: %v", err)
	}
	if !got.Degraded || got.Reply != coach.FallbackReply {
		t.Errorf("got %+v, want degraded fallback", got)
	}

	// The fallback turn still lands in the session.
	if turns := store.Conversation(); len(turns) != 2 {
		t.Fatalf("conversation = %d turns, want 2", len(turns))
	}
}

func TestSummaryPromptKeepsNewestTransactions(t *testing.T) {
	txs := make([]entity.Transaction, 0, 17)
	for i := 0; i < 16; i++ {
		txs = append(txs, entity.Transaction{
			ID:        strings.Repeat("a", i+1),
			Date:      "2024-01-02",
			Amount:    50,
			Merchant:  "Old Charge",
			Category:  "Dining",
			CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute),
		})
	}
	// Newest by date, appended last like a freshly recorded transaction.
	txs = append(txs, entity.Transaction{
		ID:        "newest",
		Date:      time.Now().Format("2006-01-02"),
		Amount:    320,
		Merchant:  "Jarir Bookstore",
		Category:  "Shopping",
		CreatedAt: time.Now(),
	})

	profile := entity.UserProfile{Name: "Amir", MonthlyIncome: 20000, SavingsGoal: 40000}

	prompt := buildSummaryPrompt(profile, txs, nil, time.Now())
	if !strings.Contains(prompt, "Jarir Bookstore") {
		t.Fatal("summary prompt dropped the newest transaction")
	}

	recent := recentTransactions(txs)
	if len(recent) != 15 {
		t.Fatalf("recent window = %d transactions, want 15", len(recent))
	}
	if recent[0].ID != "newest" {
		t.Errorf("first prompt transaction = %q, want the newest", recent[0].ID)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Date > recent[i-1].Date {
			t.Fatalf("prompt transactions out of order at %d", i)
		}
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc := NewCoachService(testLogger(), newTestStore(), &fakeInsight{reply: "ok"}, nil)

	if _, err := svc.Chat(context.Background(), coach.ChatRequest{}); err != coach.ErrEmptyMessage {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
}
