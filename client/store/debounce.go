package store

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into one trailing-edge invocation,
// the usual treatment for search-as-you-type input.
type Debouncer struct {
	mu    sync.Mutex
	d     time.Duration
	timer *time.Timer
}

// NewDebouncer returns a debouncer with the given quiet interval.
func NewDebouncer(d time.Duration) *Debouncer {
	return &Debouncer{d: d}
}

// Do schedules fn to run after the quiet interval, replacing any
// previously scheduled call. fn runs on a timer goroutine.
func (db *Debouncer) Do(fn func()) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.timer != nil {
		db.timer.Stop()
	}
	db.timer = time.AfterFunc(db.d, fn)
}

// Stop cancels any pending invocation.
func (db *Debouncer) Stop() {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.timer != nil {
		db.timer.Stop()
		db.timer = nil
	}
}
