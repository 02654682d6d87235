package ports

import (
	"context"
	"errors"

	"github.com/uxdsrini/quick-admin/internal/app/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// OrderStore defines order-collection operations used by the engine and the
// admin transition surface. It is intentionally backend-agnostic: the
// SQLite-backed store implements it today, but any document store with
// ordered range queries can implement it later.
type OrderStore interface {
	// ListOrdersByCreatedDesc returns all orders, most recent first,
	// with line items attached.
	ListOrdersByCreatedDesc(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
	UpdateOrderPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}

// StoreDirectory resolves store records by identifier.
type StoreDirectory interface {
	// GetStore returns ErrNotFound when no store exists for the id.
	GetStore(ctx context.Context, id string) (domain.Store, error)
}

// NotificationStore persists and reads back notification records.
type NotificationStore interface {
	InsertNotification(ctx context.Context, n domain.Notification) error
	// ListNotifications returns up to limit records, most recent first.
	ListNotifications(ctx context.Context, limit int) ([]domain.Notification, error)
	GetNotification(ctx context.Context, id string) (domain.Notification, error)
	CountUnreadNotifications(ctx context.Context) (int64, error)
	MarkNotificationRead(ctx context.Context, id string) error
}
