package notificationService

import (
	"ProjectWafeer/internal/entity"
	"ProjectWafeer/internal/session"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type INotificationService interface {
	GetNotifications(ctx context.Context) ([]entity.Notification, int, error)
	MarkRead(ctx context.Context, id string) (entity.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
}

type notificationService struct {
	log   *logrus.Logger
	store *session.Store
}

func NewNotificationService(log *logrus.Logger, store *session.Store) INotificationService {
	return &notificationService{
		log:   log,
		store: store,
	}
}
