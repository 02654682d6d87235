package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/uxdsrini/quick-admin/internal/app/domain"
	"github.com/uxdsrini/quick-admin/internal/app/ports"
)

// FeedLimit bounds the inbox feed to the most recent records. Older rows
// are retained in storage, just not served.
const FeedLimit = 50

// ErrNotificationNotFound indicates an unknown notification identifier.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationInbox is the read-model over persisted notification records:
// ordered feed, unread counting and the mark-read transition.
type NotificationInbox struct {
	store ports.NotificationStore
}

// NewNotificationInbox creates an inbox over the given store.
func NewNotificationInbox(store ports.NotificationStore) *NotificationInbox {
	return &NotificationInbox{store: store}
}

// Feed returns the most recent notifications, newest first.
func (i *NotificationInbox) Feed(ctx context.Context) ([]domain.Notification, error) {
	return i.store.ListNotifications(ctx, FeedLimit)
}

// UnreadCount returns the number of records still unread.
func (i *NotificationInbox) UnreadCount(ctx context.Context) (int64, error) {
	return i.store.CountUnreadNotifications(ctx)
}

// MarkRead flips the record's read flag. Re-marking an already-read record
// is a no-op, not an error; unknown ids return ErrNotificationNotFound.
func (i *NotificationInbox) MarkRead(ctx context.Context, id string) error {
	n, err := i.store.GetNotification(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("load notification %s: %w", id, err)
	}
	if n.Read {
		return nil
	}
	if err := i.store.MarkNotificationRead(ctx, id); err != nil {
		return fmt.Errorf("mark notification %s read: %w", id, err)
	}
	return nil
}

// Open marks the notification read and returns it, for drill-through
// navigation from the inbox.
func (i *NotificationInbox) Open(ctx context.Context, id string) (domain.Notification, error) {
	if err := i.MarkRead(ctx, id); err != nil {
		return domain.Notification{}, err
	}
	n, err := i.store.GetNotification(ctx, id)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("load notification %s: %w", id, err)
	}
	return n, nil
}
