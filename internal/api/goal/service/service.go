package goalService

import (
	"ProjectWafeer/internal/api/goal"
	"ProjectWafeer/internal/entity"
	"ProjectWafeer/internal/session"
	"ProjectWafeer/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IGoalService interface {
	GetGoals(ctx context.Context) ([]entity.Goal, error)
	CreateGoal(ctx context.Context, req goal.CreateGoalRequest) (entity.Goal, error)
	UpdateGoalTarget(ctx context.Context, id string, target float64) (entity.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
	GetGoalsDueOn(ctx context.Context, day string) ([]entity.Goal, error)
}

type goalService struct {
	log   *logrus.Logger
	store *session.Store
	utils utils.IUtils
}

func NewGoalService(log *logrus.Logger, store *session.Store, utils utils.IUtils) IGoalService {
	return &goalService{
		log:   log,
		store: store,
		utils: utils,
	}
}
