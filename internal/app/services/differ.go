package services

import "github.com/uxdsrini/quick-admin/internal/app/domain"

// Snapshot is the set of order identifiers observed as of the last
// completed poll cycle. It is owned by the OrderWatcher and replaced
// wholesale after each successful cycle, never partially updated.
type Snapshot map[string]struct{}

// SnapshotOf builds a snapshot from a fetched order collection.
func SnapshotOf(orders []domain.Order) Snapshot {
	s := make(Snapshot, len(orders))
	for _, o := range orders {
		s[o.ID] = struct{}{}
	}
	return s
}

// Contains reports snapshot membership.
func (s Snapshot) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// DiffNewOrders returns the orders in current whose identifiers are absent
// from previous, preserving the order of current. When bootstrap is true
// (no poll has completed yet) it reports nothing regardless of contents, so
// that pre-existing orders do not raise a notification storm on first load.
// Bootstrap is an explicit flag rather than emptiness of previous: an empty
// order collection is a valid non-bootstrap state.
func DiffNewOrders(previous Snapshot, current []domain.Order, bootstrap bool) []domain.Order {
	if bootstrap {
		return nil
	}
	var fresh []domain.Order
	for _, o := range current {
		if !previous.Contains(o.ID) {
			fresh = append(fresh, o)
		}
	}
	return fresh
}
