package services

import (
	"sync"
	"time"
)

// DefaultHighlightWindow is how long a newly observed order stays marked
// fresh in the UI.
const DefaultHighlightWindow = 5 * time.Second

// HighlightTracker marks order identifiers as fresh for a fixed window and
// clears them with one-shot per-identifier timers. Re-marking an identifier
// that already has a live deadline resets its window; the superseded timer
// is disarmed so it can never clear the newer mark early.
type HighlightTracker struct {
	window time.Duration

	mu        sync.Mutex
	deadlines map[string]time.Time
	timers    map[string]*time.Timer
	now       func() time.Time
}

// NewHighlightTracker creates a tracker with the given freshness window.
// Non-positive windows fall back to DefaultHighlightWindow.
func NewHighlightTracker(window time.Duration) *HighlightTracker {
	if window <= 0 {
		window = DefaultHighlightWindow
	}
	return &HighlightTracker{
		window:    window,
		deadlines: make(map[string]time.Time),
		timers:    make(map[string]*time.Timer),
		now:       time.Now,
	}
}

// MarkFresh installs each identifier with a deadline of now + window and
// schedules its removal. Most recent mark wins.
func (t *HighlightTracker) MarkFresh(ids []string) {
	if len(ids) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	deadline := t.now().Add(t.window)
	for _, id := range ids {
		if timer, ok := t.timers[id]; ok {
			timer.Stop()
		}
		t.deadlines[id] = deadline
		t.timers[id] = time.AfterFunc(t.window, func() {
			t.expire(id, deadline)
		})
	}
}

// expire removes exactly the identifier the timer was armed for, and only
// if its deadline has not been superseded by a later MarkFresh.
func (t *HighlightTracker) expire(id string, deadline time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if current, ok := t.deadlines[id]; ok && current.Equal(deadline) {
		delete(t.deadlines, id)
		delete(t.timers, id)
	}
}

// IsFresh reports whether the identifier is within its freshness window,
// checked against the clock at query time.
func (t *HighlightTracker) IsFresh(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	deadline, ok := t.deadlines[id]
	return ok && t.now().Before(deadline)
}

// FreshIDs returns every identifier currently within its window.
func (t *HighlightTracker) FreshIDs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	ids := make([]string, 0, len(t.deadlines))
	for id, deadline := range t.deadlines {
		if now.Before(deadline) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Stop disarms all pending timers and clears the set. Used at teardown.
func (t *HighlightTracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
	t.deadlines = make(map[string]time.Time)
}
