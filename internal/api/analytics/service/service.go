package analyticsService

import (
	"ProjectWafeer/internal/api/analytics"
	"ProjectWafeer/internal/session"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAnalyticsService interface {
	GetDashboard(ctx context.Context, windowDays int) (analytics.DashboardResponse, error)
	GetForecast(ctx context.Context) (analytics.ForecastResponse, error)
	Calculate(ctx context.Context, req analytics.CalculatorRequest) (analytics.CalculatorResponse, error)
}

type analyticsService struct {
	log   *logrus.Logger
	store *session.Store
}

func NewAnalyticsService(log *logrus.Logger, store *session.Store) IAnalyticsService {
	return &analyticsService{
		log:   log,
		store: store,
	}
}
