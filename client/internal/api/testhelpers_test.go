package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/pawplanet/pawplanet-go/client/internal/shardqueue"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// failingExec implements types.Executor and always fails Submit.
type failingExec struct{}

func (f *failingExec) Submit(ctx context.Context, shard string, job shardqueue.Job) error {
	return fmt.Errorf("submit failed")
}

// mockExec records submitted shards and runs jobs inline.
type mockExec struct {
	mu     sync.Mutex
	n      int
	shards []string
}

func (m *mockExec) Submit(ctx context.Context, shard string, job shardqueue.Job) error {
	m.mu.Lock()
	m.n++
	m.shards = append(m.shards, shard)
	m.mu.Unlock()
	return job.Run(ctx)
}
