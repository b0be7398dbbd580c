package notificationService

import (
	"ProjectWafeer/internal/api/notification"
	"ProjectWafeer/internal/entity"
	contextPkg "ProjectWafeer/pkg/context"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *notificationService) GetNotifications(ctx context.Context) ([]entity.Notification, int, error) {
	items := s.store.Notifications()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	unread := 0
	for _, n := range items {
		if !n.IsRead {
			unread++
		}
	}

	return items, unread, nil
}

// MarkRead is idempotent: marking an already-read notification changes nothing.
// Read state never moves back to unread.
func (s *notificationService) MarkRead(ctx context.Context, id string) (entity.Notification, error) {
	requestID := contextPkg.GetRequestID(ctx)

	items := s.store.Notifications()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].IsRead = true
		s.store.ReplaceNotifications(items)
		return items[i], nil
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         id,
	}).Warn("Notification not found")
	return entity.Notification{}, notification.ErrNotificationNotFound
}

func (s *notificationService) MarkAllRead(ctx context.Context) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	items := s.store.Notifications()
	marked := 0
	for i := range items {
		if !items[i].IsRead {
			items[i].IsRead = true
			marked++
		}
	}
	if marked > 0 {
		s.store.ReplaceNotifications(items)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"marked":     marked,
	}).Debug("Marked all notifications read")

	return marked, nil
}
