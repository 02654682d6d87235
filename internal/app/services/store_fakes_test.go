package services

import (
	"context"
	"errors"
	"sync"

	"github.com/uxdsrini/quick-admin/internal/app/domain"
	"github.com/uxdsrini/quick-admin/internal/app/ports"
)

type fakeOrderStore struct {
	mu             sync.Mutex
	orders         []domain.Order
	fetchErr       error
	fetches        int
	statusUpdates  map[string]domain.OrderStatus
	paymentUpdates map[string]domain.PaymentStatus
	updateErr      error
}

func (f *fakeOrderStore) ListOrdersByCreatedDesc(context.Context) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]domain.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeOrderStore) GetOrder(_ context.Context, id string) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, ports.ErrNotFound
}

func (f *fakeOrderStore) UpdateOrderStatus(_ context.Context, id string, status domain.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[string]domain.OrderStatus)
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeOrderStore) UpdateOrderPaymentStatus(_ context.Context, id string, status domain.PaymentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.paymentUpdates == nil {
		f.paymentUpdates = make(map[string]domain.PaymentStatus)
	}
	f.paymentUpdates[id] = status
	return nil
}

type fakeDirectory struct {
	mu      sync.Mutex
	stores  map[string]domain.Store
	lookups int
	err     error
}

func (f *fakeDirectory) GetStore(_ context.Context, id string) (domain.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.err != nil {
		return domain.Store{}, f.err
	}
	store, ok := f.stores[id]
	if !ok {
		return domain.Store{}, ports.ErrNotFound
	}
	return store, nil
}

type fakeNotificationStore struct {
	mu        sync.Mutex
	records   []domain.Notification
	insertErr error
}

func (f *fakeNotificationStore) InsertNotification(_ context.Context, n domain.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.records = append(f.records, n)
	return nil
}

func (f *fakeNotificationStore) ListNotifications(_ context.Context, limit int) ([]domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Notification, 0, limit)
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.records[i])
	}
	return out, nil
}

func (f *fakeNotificationStore) GetNotification(_ context.Context, id string) (domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.records {
		if n.ID == id {
			return n, nil
		}
	}
	return domain.Notification{}, ports.ErrNotFound
}

func (f *fakeNotificationStore) CountUnreadNotifications(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, n := range f.records {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationStore) MarkNotificationRead(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].Read = true
			return nil
		}
	}
	return errors.New("no such notification")
}

func (f *fakeNotificationStore) byType(typ domain.NotificationType) []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Notification
	for _, n := range f.records {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

var (
	_ ports.OrderStore        = (*fakeOrderStore)(nil)
	_ ports.StoreDirectory    = (*fakeDirectory)(nil)
	_ ports.NotificationStore = (*fakeNotificationStore)(nil)
)
