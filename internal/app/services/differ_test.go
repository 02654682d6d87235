package services

import (
	"testing"

	"github.com/uxdsrini/quick-admin/internal/app/domain"
)

func ordersWithIDs(ids ...string) []domain.Order {
	out := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Order{ID: id})
	}
	return out
}

func TestDiffNewOrdersBootstrapSuppressesEverything(t *testing.T) {
	delta := DiffNewOrders(make(Snapshot), ordersWithIDs("a", "b", "c"), true)
	if len(delta) != 0 {
		t.Fatalf("expected empty delta on bootstrap cycle, got %d orders", len(delta))
	}
}

func TestDiffNewOrdersReportsOnlyUnseen(t *testing.T) {
	previous := SnapshotOf(ordersWithIDs("a", "b"))
	delta := DiffNewOrders(previous, ordersWithIDs("a", "b", "c", "d"), false)
	if len(delta) != 2 {
		t.Fatalf("expected delta of 2, got %d", len(delta))
	}
	if delta[0].ID != "c" || delta[1].ID != "d" {
		t.Fatalf("expected delta [c d], got [%s %s]", delta[0].ID, delta[1].ID)
	}
}

func TestDiffNewOrdersEmptyPreviousIsNotBootstrap(t *testing.T) {
	// An empty collection on the last poll is a valid non-bootstrap state:
	// everything fetched now is new.
	delta := DiffNewOrders(make(Snapshot), ordersWithIDs("a"), false)
	if len(delta) != 1 || delta[0].ID != "a" {
		t.Fatalf("expected delta [a], got %v", delta)
	}
}

func TestDiffNewOrdersIgnoresDisappearedOrders(t *testing.T) {
	previous := SnapshotOf(ordersWithIDs("a", "b"))
	delta := DiffNewOrders(previous, ordersWithIDs("b"), false)
	if len(delta) != 0 {
		t.Fatalf("expected no delta when orders only disappear, got %d", len(delta))
	}
}

func TestSnapshotOfContains(t *testing.T) {
	s := SnapshotOf(ordersWithIDs("a", "b"))
	if !s.Contains("a") || !s.Contains("b") {
		t.Fatal("expected snapshot to contain a and b")
	}
	if s.Contains("c") {
		t.Fatal("did not expect snapshot to contain c")
	}
}
