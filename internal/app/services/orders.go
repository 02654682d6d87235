package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/uxdsrini/quick-admin/internal/app/domain"
	"github.com/uxdsrini/quick-admin/internal/app/ports"
)

var (
	// ErrUnknownStatus indicates a status value outside the lifecycle enum.
	ErrUnknownStatus = errors.New("unknown order status")
	// ErrUnknownPaymentStatus indicates an unrecognized payment status.
	ErrUnknownPaymentStatus = errors.New("unknown payment status")
	// ErrOrderNotFound indicates an unknown order identifier.
	ErrOrderNotFound = errors.New("order not found")
	// ErrNotificationLost signals the transition was applied but its
	// notification could not be persisted. Best-effort: not retried.
	ErrNotificationLost = errors.New("transition applied, notification lost")
)

// OrderAdminService is the admin-triggered transition surface. It is the
// only path that emits status_update/payment_update notifications; the
// poller never re-derives these from field diffs.
type OrderAdminService struct {
	orders  ports.OrderStore
	emitter *NotificationEmitter
}

// NewOrderAdminService creates the transition service.
func NewOrderAdminService(orders ports.OrderStore, emitter *NotificationEmitter) *OrderAdminService {
	return &OrderAdminService{orders: orders, emitter: emitter}
}

// UpdateStatus applies a delivery-status transition and emits exactly one
// status_update notification for it. A failed write leaves the order
// unchanged and emits nothing.
func (s *OrderAdminService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if !status.Valid() {
		return ErrUnknownStatus
	}
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.orders.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("update order %s status: %w", orderID, err)
	}
	if _, err := s.emitter.Emit(ctx, order, domain.NotificationStatusUpdate, StatusChangeMessage(order, order.Status, status)); err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationLost, err)
	}
	return nil
}

// UpdatePaymentStatus applies a payment-status transition and emits exactly
// one payment_update notification for it.
func (s *OrderAdminService) UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) error {
	if !status.Valid() {
		return ErrUnknownPaymentStatus
	}
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.orders.UpdateOrderPaymentStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("update order %s payment status: %w", orderID, err)
	}
	if _, err := s.emitter.Emit(ctx, order, domain.NotificationPaymentUpdate, PaymentChangeMessage(order, order.PaymentStatus, status)); err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationLost, err)
	}
	return nil
}

func (s *OrderAdminService) loadOrder(ctx context.Context, orderID string) (domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("load order %s: %w", orderID, err)
	}
	return order, nil
}
