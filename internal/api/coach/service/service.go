package coachService

import (
	"ProjectWafeer/internal/api/coach"
	"ProjectWafeer/internal/session"
	"ProjectWafeer/pkg/insight"
	"ProjectWafeer/pkg/redis"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ICoachService interface {
	GetSummary(ctx context.Context) (coach.SummaryResponse, error)
	Chat(ctx context.Context, req coach.ChatRequest) (coach.ChatResponse, error)
}

type coachService struct {
	log     *logrus.Logger
	store   *session.Store
	insight insight.IInsight
	cache   redis.ICache
}

// NewCoachService tolerates a nil insight provider; every call then degrades
// to the static fallback text instead of failing.
func NewCoachService(log *logrus.Logger, store *session.Store, provider insight.IInsight, cache redis.ICache) ICoachService {
	return &coachService{
		log:     log,
		store:   store,
		insight: provider,
		cache:   cache,
	}
}
