package notificationService

import (
	"ProjectWafeer/internal/api/notification"
	"ProjectWafeer/internal/session"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestService() INotificationService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewNotificationService(logger, session.New(logger))
}

func TestGetNotificationsCountsUnread(t *testing.T) {
	svc := newTestService()

	items, unread, err := svc.GetNotifications(context.Background())
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("notifications = %d, want 4", len(items))
	}
	if unread != 2 {
		t.Errorf("unread = %d, want 2", unread)
	}

	// Newest first.
	for i := 1; i < len(items); i++ {
		if items[i].Timestamp.After(items[i-1].Timestamp) {
			t.Fatalf("notifications out of order at %d", i)
		}
	}
}

func TestMarkReadIsOneWayAndIdempotent(t *testing.T) {
	svc := newTestService()

	marked, err := svc.MarkRead(context.Background(), "ntf-1")
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if !marked.IsRead {
		t.Fatal("notification not marked read")
	}

	// Second mark changes nothing.
	again, err := svc.MarkRead(context.Background(), "ntf-1")
	if err != nil {
		t.Fatalf("MarkRead twice: %v", err)
	}
	if !again.IsRead {
		t.Fatal("read state moved backwards")
	}

	_, unread, err := svc.GetNotifications(context.Background())
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	if unread != 1 {
		t.Errorf("unread after mark = %d, want 1", unread)
	}
}

func TestMarkReadUnknownID(t *testing.T) {
	svc := newTestService()

	_, err := svc.MarkRead(context.Background(), "nope")
	if !errors.Is(err, notification.ErrNotificationNotFound) {
		t.Fatalf("err = %v, want ErrNotificationNotFound", err)
	}
}

func TestMarkAllRead(t *testing.T) {
	svc := newTestService()

	marked, err := svc.MarkAllRead(context.Background())
	if err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	if marked != 2 {
		t.Errorf("marked = %d, want 2", marked)
	}

	_, unread, err := svc.GetNotifications(context.Background())
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread after mark-all = %d, want 0", unread)
	}

	// Idempotent.
	marked, err = svc.MarkAllRead(context.Background())
	if err != nil {
		t.Fatalf("MarkAllRead twice: %v", err)
	}
	if marked != 0 {
		t.Errorf("second mark-all marked %d, want 0", marked)
	}
}
