package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/uxdsrini/quick-admin/internal/app/domain"
)

func TestUpdateStatusEmitsExactlyOneNotification(t *testing.T) {
	orders := &fakeOrderStore{orders: []domain.Order{{ID: "a", Number: "QA-1001", Status: domain.StatusPending}}}
	notifications := &fakeNotificationStore{}
	svc := NewOrderAdminService(orders, NewNotificationEmitter(notifications, nil, nil))

	if err := svc.UpdateStatus(context.Background(), "a", domain.StatusConfirmed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders.statusUpdates["a"] != domain.StatusConfirmed {
		t.Fatalf("expected status written, got %v", orders.statusUpdates)
	}
	updates := notifications.byType(domain.NotificationStatusUpdate)
	if len(updates) != 1 {
		t.Fatalf("expected one status_update notification, got %d", len(updates))
	}
	if !strings.Contains(updates[0].Message, "'pending' to 'confirmed'") {
		t.Fatalf("unexpected message %q", updates[0].Message)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	orders := &fakeOrderStore{orders: []domain.Order{{ID: "a"}}}
	notifications := &fakeNotificationStore{}
	svc := NewOrderAdminService(orders, NewNotificationEmitter(notifications, nil, nil))

	err := svc.UpdateStatus(context.Background(), "a", domain.OrderStatus("teleported"))
	if !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
	if len(notifications.records) != 0 {
		t.Fatal("expected no notification for rejected transition")
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc := NewOrderAdminService(&fakeOrderStore{}, NewNotificationEmitter(&fakeNotificationStore{}, nil, nil))
	err := svc.UpdateStatus(context.Background(), "missing", domain.StatusConfirmed)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestUpdateStatusWriteFailureEmitsNothing(t *testing.T) {
	orders := &fakeOrderStore{
		orders:    []domain.Order{{ID: "a", Status: domain.StatusPending}},
		updateErr: errors.New("collection unavailable"),
	}
	notifications := &fakeNotificationStore{}
	svc := NewOrderAdminService(orders, NewNotificationEmitter(notifications, nil, nil))

	if err := svc.UpdateStatus(context.Background(), "a", domain.StatusConfirmed); err == nil {
		t.Fatal("expected write failure to surface")
	}
	if len(notifications.records) != 0 {
		t.Fatal("expected no notification when transition failed")
	}
}

func TestUpdateStatusNotificationLossIsReported(t *testing.T) {
	orders := &fakeOrderStore{orders: []domain.Order{{ID: "a", Status: domain.StatusPending}}}
	notifications := &fakeNotificationStore{insertErr: errors.New("write failed")}
	svc := NewOrderAdminService(orders, NewNotificationEmitter(notifications, nil, nil))

	err := svc.UpdateStatus(context.Background(), "a", domain.StatusConfirmed)
	if !errors.Is(err, ErrNotificationLost) {
		t.Fatalf("expected ErrNotificationLost, got %v", err)
	}
	// The transition itself is not rolled back.
	if orders.statusUpdates["a"] != domain.StatusConfirmed {
		t.Fatal("expected status transition to stand despite notification loss")
	}
}

func TestUpdatePaymentStatusEmitsPaymentUpdate(t *testing.T) {
	orders := &fakeOrderStore{orders: []domain.Order{{ID: "a", Number: "QA-1001", PaymentStatus: domain.PaymentUnpaid}}}
	notifications := &fakeNotificationStore{}
	svc := NewOrderAdminService(orders, NewNotificationEmitter(notifications, nil, nil))

	if err := svc.UpdatePaymentStatus(context.Background(), "a", domain.PaymentPaid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders.paymentUpdates["a"] != domain.PaymentPaid {
		t.Fatalf("expected payment status written, got %v", orders.paymentUpdates)
	}
	if got := len(notifications.byType(domain.NotificationPaymentUpdate)); got != 1 {
		t.Fatalf("expected one payment_update notification, got %d", got)
	}
}

func TestAdminTransitionAndPollDoNotDoubleNotify(t *testing.T) {
	orders := &fakeOrderStore{orders: []domain.Order{{ID: "a", Number: "QA-1001", Status: domain.StatusPending}}}
	notifications := &fakeNotificationStore{}
	emitter := NewNotificationEmitter(notifications, nil, nil)
	svc := NewOrderAdminService(orders, emitter)
	watcher, _ := newTestWatcher(orders, notifications)
	ctx := context.Background()

	if err := watcher.PollOnce(ctx); err != nil {
		t.Fatalf("bootstrap cycle: %v", err)
	}
	if err := svc.UpdateStatus(ctx, "a", domain.StatusConfirmed); err != nil {
		t.Fatalf("transition: %v", err)
	}

	// The next poll observes the changed status but must not re-derive a
	// status_update from field values.
	orders.mu.Lock()
	orders.orders[0].Status = domain.StatusConfirmed
	orders.mu.Unlock()
	if err := watcher.PollOnce(ctx); err != nil {
		t.Fatalf("poll after transition: %v", err)
	}

	if got := len(notifications.byType(domain.NotificationStatusUpdate)); got != 1 {
		t.Fatalf("expected exactly one status_update notification, got %d", got)
	}
	if got := len(notifications.byType(domain.NotificationNewOrder)); got != 0 {
		t.Fatalf("expected no new_order notifications, got %d", got)
	}
}
