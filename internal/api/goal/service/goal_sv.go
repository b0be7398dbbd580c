package goalService

import (
	"ProjectWafeer/internal/api/goal"
	"ProjectWafeer/internal/entity"
	contextPkg "ProjectWafeer/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// goalPalette cycles when the client does not pick a color for a new goal.
var goalPalette = []string{"#10b981", "#8b5cf6", "#f59e0b", "#3b82f6", "#ec4899"}

func (s *goalService) GetGoals(ctx context.Context) ([]entity.Goal, error) {
	return s.store.Goals(), nil
}

func (s *goalService) CreateGoal(ctx context.Context, req goal.CreateGoalRequest) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Goal{}, err
	}

	goals := s.store.Goals()

	color := req.Color
	if color == "" {
		color = goalPalette[len(goals)%len(goalPalette)]
	}

	g := entity.Goal{
		ID:       ULID,
		Name:     req.Name,
		Current:  req.Current,
		Target:   req.Target,
		Color:    color,
		Deadline: req.Deadline,
	}
	if req.Recurring != nil {
		g.Recurring = &entity.RecurringContribution{
			Amount:    req.Recurring.Amount,
			Frequency: entity.ContributionFrequency(req.Recurring.Frequency),
		}
	}

	next, err := goal.Add(goals, g)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       req.Name,
			"error":      err.Error(),
		}).Warn("Invalid goal data")
		return entity.Goal{}, err
	}

	s.store.ReplaceGoals(next)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         g.ID,
		"name":       g.Name,
		"target":     g.Target,
	}).Info("Goal created")

	return g, nil
}

func (s *goalService) UpdateGoalTarget(ctx context.Context, id string, target float64) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	next, err := goal.UpdateTarget(s.store.Goals(), id, target)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"target":     target,
			"error":      err.Error(),
		}).Warn("Failed to update goal target")
		return entity.Goal{}, err
	}

	s.store.ReplaceGoals(next)

	for _, g := range next {
		if g.ID == id {
			return g, nil
		}
	}
	return entity.Goal{}, goal.ErrGoalNotFound
}

func (s *goalService) DeleteGoal(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	next, err := goal.Remove(s.store.Goals(), id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to delete goal")
		return err
	}

	s.store.ReplaceGoals(next)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         id,
	}).Info("Goal deleted")

	return nil
}

func (s *goalService) GetGoalsDueOn(ctx context.Context, day string) ([]entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := time.Parse(entity.DateLayout, day); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"day":        day,
		}).Warn("Invalid calendar day")
		return nil, goal.ErrInvalidDeadline
	}

	return goal.DueOn(s.store.Goals(), day), nil
}
