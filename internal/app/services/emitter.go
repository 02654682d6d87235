package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/uxdsrini/quick-admin/internal/app/domain"
	"github.com/uxdsrini/quick-admin/internal/app/ports"
)

// NotificationPublisher pushes a persisted notification to an external
// consumer. Publishing is best-effort; errors are logged, never retried.
type NotificationPublisher interface {
	Publish(ctx context.Context, n domain.Notification) error
}

// NotificationEmitter converts a qualifying order event into a persisted
// notification record. It never mutates an existing record and never
// deduplicates by content: callers are responsible for invoking it at most
// once per triggering event.
type NotificationEmitter struct {
	store     ports.NotificationStore
	publisher NotificationPublisher
	log       *slog.Logger
}

// NewNotificationEmitter creates an emitter. publisher may be nil when no
// webhook egress is configured.
func NewNotificationEmitter(store ports.NotificationStore, publisher NotificationPublisher, log *slog.Logger) *NotificationEmitter {
	if log == nil {
		log = slog.Default()
	}
	return &NotificationEmitter{store: store, publisher: publisher, log: log}
}

// Emit persists a notification for the order and returns the stored record.
// A persistence failure is returned to the caller without retry; the
// triggering action is not rolled back.
func (e *NotificationEmitter) Emit(ctx context.Context, order domain.Order, typ domain.NotificationType, message string) (domain.Notification, error) {
	n := domain.Notification{
		ID:           uuid.New().String(),
		OrderID:      order.ID,
		OrderNumber:  order.Number,
		CustomerName: order.CustomerName,
		Total:        order.Total,
		Type:         typ,
		Message:      message,
		Read:         false,
		CreatedAt:    time.Now().UTC(),
	}
	if err := e.store.InsertNotification(ctx, n); err != nil {
		return domain.Notification{}, fmt.Errorf("persist %s notification for order %s: %w", typ, order.ID, err)
	}

	if e.publisher != nil {
		if err := e.publisher.Publish(ctx, n); err != nil {
			e.log.Warn("notification webhook publish failed", "notification_id", n.ID, "type", typ, "error", err)
		}
	}
	return n, nil
}

// NewOrderMessage renders the inbox message for a newly observed order.
func NewOrderMessage(order domain.Order, storeName string) string {
	return fmt.Sprintf("New order %s from %s at %s, total %.2f.",
		order.Number, order.CustomerName, storeName, order.Total)
}

// StatusChangeMessage renders the inbox message for a status transition.
func StatusChangeMessage(order domain.Order, from, to domain.OrderStatus) string {
	return fmt.Sprintf("Order %s status changed from '%s' to '%s'.", order.Number, from, to)
}

// PaymentChangeMessage renders the inbox message for a payment transition.
func PaymentChangeMessage(order domain.Order, from, to domain.PaymentStatus) string {
	return fmt.Sprintf("Order %s payment changed from '%s' to '%s'.", order.Number, from, to)
}
