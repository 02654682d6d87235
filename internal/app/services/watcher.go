package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/uxdsrini/quick-admin/internal/app/domain"
	"github.com/uxdsrini/quick-admin/internal/app/ports"
)

// OrderWatcher drives the poll cycle: fetch orders, diff against the
// previous snapshot, emit new-order notifications, mark the delta fresh,
// then replace the snapshot. It owns the snapshot exclusively; cycles run
// on a single goroutine, so a slow fetch coalesces later ticks instead of
// overlapping them.
type OrderWatcher struct {
	orders     ports.OrderStore
	names      *StoreNameCache
	emitter    *NotificationEmitter
	highlights *HighlightTracker
	interval   time.Duration
	log        *slog.Logger

	mu           sync.Mutex
	previous     Snapshot
	bootstrapped bool
	lastPolledAt time.Time
}

// NewOrderWatcher wires the poll pipeline. interval must be positive.
func NewOrderWatcher(orders ports.OrderStore, names *StoreNameCache, emitter *NotificationEmitter, highlights *HighlightTracker, interval time.Duration, log *slog.Logger) *OrderWatcher {
	if log == nil {
		log = slog.Default()
	}
	return &OrderWatcher{
		orders:     orders,
		names:      names,
		emitter:    emitter,
		highlights: highlights,
		interval:   interval,
		log:        log,
		previous:   make(Snapshot),
	}
}

// Run polls immediately, then on every interval tick until ctx is
// cancelled. A failed cycle is logged and the next tick proceeds normally.
func (w *OrderWatcher) Run(ctx context.Context) {
	if err := w.PollOnce(ctx); err != nil {
		w.log.Error("order poll cycle failed", "error", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.highlights.Stop()
			return
		case <-ticker.C:
			if err := w.PollOnce(ctx); err != nil {
				w.log.Error("order poll cycle failed", "error", err)
			}
		}
	}
}

// PollOnce runs a single fetch-and-reconcile pass. On fetch failure the
// snapshot is left untouched and the error is returned.
func (w *OrderWatcher) PollOnce(ctx context.Context) error {
	orders, err := w.orders.ListOrdersByCreatedDesc(ctx)
	if err != nil {
		return fmt.Errorf("fetch orders: %w", err)
	}

	w.mu.Lock()
	previous := w.previous
	bootstrap := !w.bootstrapped
	w.mu.Unlock()

	delta := DiffNewOrders(previous, orders, bootstrap)

	freshIDs := make([]string, 0, len(delta))
	for _, order := range delta {
		freshIDs = append(freshIDs, order.ID)
		storeName := w.names.Resolve(ctx, order.StoreID)
		if _, err := w.emitter.Emit(ctx, order, domain.NotificationNewOrder, NewOrderMessage(order, storeName)); err != nil {
			// Notification loss is accepted; the order still joins the
			// snapshot so it is never re-detected.
			w.log.Warn("new-order notification lost", "order_id", order.ID, "error", err)
		}
	}
	w.highlights.MarkFresh(freshIDs)

	w.mu.Lock()
	w.previous = SnapshotOf(orders)
	w.bootstrapped = true
	w.lastPolledAt = time.Now()
	w.mu.Unlock()

	if len(delta) > 0 {
		w.log.Info("new orders observed", "count", len(delta))
	}
	return nil
}

// LastPolledAt returns when the last successful cycle completed; the zero
// time before the first successful cycle.
func (w *OrderWatcher) LastPolledAt() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastPolledAt
}
