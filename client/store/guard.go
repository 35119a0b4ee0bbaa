package store

import (
	"context"
	"sync"
)

// Guard serializes overlapping fetches for one view. Each Begin cancels
// the previous in-flight request and returns a token; Accept reports
// whether that token still corresponds to the newest request, so late
// responses from superseded fetches are discarded instead of
// overwriting fresher data.
type Guard struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// Begin starts a new request generation. The returned context is
// canceled when a newer Begin supersedes it.
func (g *Guard) Begin(parent context.Context) (context.Context, uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	g.cancel = cancel
	g.gen++
	return ctx, g.gen
}

// Accept reports whether token belongs to the newest request.
func (g *Guard) Accept(token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return token == g.gen
}

// Stop cancels the in-flight request, if any.
func (g *Guard) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}
