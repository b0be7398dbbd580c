package config

import (
	analyticsHandler "ProjectWafeer/internal/api/analytics/handler"
	analyticsService "ProjectWafeer/internal/api/analytics/service"
	coachHandler "ProjectWafeer/internal/api/coach/handler"
	coachService "ProjectWafeer/internal/api/coach/service"
	goalHandler "ProjectWafeer/internal/api/goal/handler"
	goalService "ProjectWafeer/internal/api/goal/service"
	notificationHandler "ProjectWafeer/internal/api/notification/handler"
	notificationService "ProjectWafeer/internal/api/notification/service"
	profileHandler "ProjectWafeer/internal/api/profile/handler"
	profileService "ProjectWafeer/internal/api/profile/service"
	transactionHandler "ProjectWafeer/internal/api/transaction/handler"
	transactionService "ProjectWafeer/internal/api/transaction/service"
	walletHandler "ProjectWafeer/internal/api/wallet/handler"
	walletService "ProjectWafeer/internal/api/wallet/service"
	"ProjectWafeer/internal/middleware"
	"ProjectWafeer/internal/session"
	"ProjectWafeer/pkg/insight"
	"ProjectWafeer/pkg/redis"
	"ProjectWafeer/pkg/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine          *fiber.App
	log             *logrus.Logger
	middleware      middleware.Middleware
	validator       *validator.Validate
	utils           utils.IUtils
	store           *session.Store
	insightProvider insight.IInsight
	cache           redis.ICache
	handlers        []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithSessionStore() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before session store")
		}
		s.store = session.New(s.log)
		return nil
	}
}

// WithInsightProvider tolerates initialization failure: without a provider the
// coach endpoints run degraded on fallback text rather than refusing to boot.
func WithInsightProvider() ServerOption {
	return func(s *Server) error {
		provider, err := insight.New()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Insight provider unavailable, coach runs degraded: %v", err)
			}
			return nil
		}
		s.insightProvider = provider
		return nil
	}
}

func WithCache(cache redis.ICache) ServerOption {
	return func(s *Server) error {
		s.cache = cache
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Transactions
	transactionServices := transactionService.NewTransactionService(s.log, s.store, s.utils)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	// Analytics
	analyticsServices := analyticsService.NewAnalyticsService(s.log, s.store)
	analyticsHandlers := analyticsHandler.New(s.log, s.validator, s.middleware, analyticsServices)

	// Goals
	goalServices := goalService.NewGoalService(s.log, s.store, s.utils)
	goalHandlers := goalHandler.New(s.log, s.validator, s.middleware, goalServices)

	// Wallet
	walletServices := walletService.NewWalletService(s.log, s.store, s.utils)
	walletHandlers := walletHandler.New(s.log, s.validator, s.middleware, walletServices)

	// Profile
	profileServices := profileService.NewProfileService(s.log, s.store, s.utils)
	profileHandlers := profileHandler.New(s.log, s.validator, s.middleware, profileServices)

	// Notifications
	notificationServices := notificationService.NewNotificationService(s.log, s.store)
	notificationHandlers := notificationHandler.New(s.log, s.validator, s.middleware, notificationServices)

	// Coach
	coachServices := coachService.NewCoachService(s.log, s.store, s.insightProvider, s.cache)
	coachHandlers := coachHandler.New(s.log, s.validator, s.middleware, coachServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		transactionHandlers,
		analyticsHandlers,
		goalHandlers,
		walletHandlers,
		profileHandlers,
		notificationHandlers,
		coachHandlers,
	)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
