package stats

import (
	"sync"
	"time"
)

// FreshnessTracker holds the timestamp of the last successful ingestion
// across any year. The timestamp only ever moves forward, even when
// ingestions complete out of order.
type FreshnessTracker struct {
	mu   sync.RWMutex
	last time.Time
}

func NewFreshnessTracker() *FreshnessTracker {
	return &FreshnessTracker{}
}

// RecordSuccess advances the timestamp. Older timestamps are ignored.
func (t *FreshnessTracker) RecordSuccess(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if now.After(t.last) {
		t.last = now
	}
}

// Get returns the last success timestamp; ok is false before the first
// successful ingestion.
func (t *FreshnessTracker) Get() (time.Time, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.last, !t.last.IsZero()
}
