package coachService

import (
	"ProjectWafeer/internal/api/coach"
	"ProjectWafeer/internal/entity"
	contextPkg "ProjectWafeer/pkg/context"
	"ProjectWafeer/pkg/insight"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	summaryCacheKey = "insight:summary"
	summaryCacheTTL = 15 * time.Minute

	// historyLimit is how many conversation turns a chat request carries to
	// the provider. Older turns age out of the session.
	historyLimit = 10
)

func (s *coachService) GetSummary(ctx context.Context) (coach.SummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.cache != nil {
		cached, found, err := s.cache.GetInsight(ctx, summaryCacheKey)
		if err == nil && found {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Debug("Serving summary from cache")
			return coach.SummaryResponse{Summary: cached, Cached: true}, nil
		}
	}

	if s.insight == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Insight provider not configured, serving fallback summary")
		return coach.SummaryResponse{Summary: coach.FallbackSummary, Degraded: true}, nil
	}

	prompt := buildSummaryPrompt(s.store.Profile(), s.store.Transactions(), s.store.Events(), time.Now())

	summary, err := s.insight.Summarize(ctx, prompt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Summary generation failed, serving fallback")
		return coach.SummaryResponse{Summary: coach.FallbackSummary, Degraded: true}, nil
	}

	if s.cache != nil {
		if err := s.cache.SetInsight(ctx, summaryCacheKey, summary, summaryCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to cache summary")
		}
	}

	return coach.SummaryResponse{Summary: summary}, nil
}

func (s *coachService) Chat(ctx context.Context, req coach.ChatRequest) (coach.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Message == "" {
		return coach.ChatResponse{}, coach.ErrEmptyMessage
	}

	now := time.Now()
	turns := s.store.Conversation()

	history := make([]insight.Message, 0, len(turns))
	for _, turn := range turns {
		history = append(history, insight.Message{
			Role: string(turn.Role),
			Text: turn.Text,
		})
	}
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	reply := coach.FallbackReply
	degraded := true

	if s.insight != nil {
		instruction := buildChatSystemInstruction(s.store.Profile(), s.store.Events())

		text, err := s.insight.Respond(ctx, instruction, history, req.Message)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Chat reply failed, serving fallback")
		} else {
			reply = text
			degraded = false
		}
	} else {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Insight provider not configured, serving fallback reply")
	}

	turns = append(turns,
		entity.ChatTurn{Role: entity.ChatRoleUser, Text: req.Message, Timestamp: now},
		entity.ChatTurn{Role: entity.ChatRoleModel, Text: reply, Timestamp: time.Now()},
	)
	s.store.ReplaceConversation(turns)

	return coach.ChatResponse{
		Reply:     reply,
		Degraded:  degraded,
		Timestamp: now.Format(time.RFC3339),
	}, nil
}
