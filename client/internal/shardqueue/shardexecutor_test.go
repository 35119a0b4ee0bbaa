package shardqueue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestShardExecutor_SubmitRunsDelivery(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{})
	defer ex.Stop()

	delivered := make(chan struct{})
	if err := ex.Submit(context.Background(), "p1", JobFunc(func(context.Context) error {
		close(delivered)
		return nil
	})); err != nil {
		t.Fatalf("submit: %v", err)
	}
	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("delivery never ran")
	}
}

func TestShardExecutor_FullQueueTimesOut(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{Shards: 1, QueueSize: 1, EnqueueTimeout: 10 * time.Millisecond})
	defer ex.Stop()

	release := occupyShard(t, ex, "p2")
	defer release()

	// One delivery fits in the queue; the next must time out.
	if err := ex.Submit(context.Background(), "p2", JobFunc(func(context.Context) error { return nil })); err != nil {
		t.Fatalf("fill queue: %v", err)
	}
	err := ex.Submit(context.Background(), "p2", JobFunc(func(context.Context) error { return nil }))
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
}

func TestShardExecutor_ViewsForOnePostStayOrdered(t *testing.T) {
	ex := NewShardExecutor(Config{Shards: 4, QueueSize: 16})
	defer ex.Stop()

	const n = 8
	var mu sync.Mutex
	var got []int
	for i := 0; i < n; i++ {
		seq := i
		if err := ex.Submit(context.Background(), "p3", JobFunc(func(context.Context) error {
			mu.Lock()
			got = append(got, seq)
			mu.Unlock()
			return nil
		})); err != nil {
			t.Fatalf("submit view %d: %v", seq, err)
		}
	}
	if err := ex.Barrier(context.Background(), "p3"); err != nil {
		t.Fatalf("barrier: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != n {
		t.Fatalf("delivered %d of %d views", len(got), n)
	}
	for i, seq := range got {
		if i != seq {
			t.Fatalf("views reordered: %v", got)
		}
	}
}

func TestShardExecutor_DifferentKeysDoNotBlockEachOther(t *testing.T) {
	ex := NewShardExecutor(Config{Shards: 4, QueueSize: 16})
	defer ex.Stop()

	// Two deliveries that can only finish if both are running at once.
	aRunning := make(chan struct{})
	bDone := make(chan struct{})
	_ = ex.Submit(context.Background(), "user:a", JobFunc(func(context.Context) error {
		close(aRunning)
		<-bDone
		return nil
	}))
	_ = ex.Submit(context.Background(), "user:b", JobFunc(func(context.Context) error {
		<-aRunning
		close(bDone)
		return nil
	}))

	select {
	case <-bDone:
	case <-time.After(time.Second):
		t.Fatal("deliveries for distinct keys serialized")
	}
}

func TestShardExecutor_OneKeyNeverRunsConcurrently(t *testing.T) {
	const n = 200
	ex := NewShardExecutor(Config{Shards: 4, QueueSize: n})
	defer ex.Stop()

	var inFlight, overlaps int32
	for i := 0; i < n; i++ {
		if err := ex.Submit(context.Background(), "p4", JobFunc(func(context.Context) error {
			if atomic.AddInt32(&inFlight, 1) > 1 {
				atomic.StoreInt32(&overlaps, 1)
			}
			time.Sleep(100 * time.Microsecond)
			atomic.AddInt32(&inFlight, -1)
			return nil
		})); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if err := ex.Barrier(context.Background(), "p4"); err != nil {
		t.Fatalf("barrier: %v", err)
	}
	if atomic.LoadInt32(&overlaps) == 1 {
		t.Fatal("two deliveries for one key overlapped")
	}
}

func TestShardExecutor_SubmitAfterStop(t *testing.T) {
	ex := NewShardExecutor(Config{Shards: 2, QueueSize: 2})
	ex.Stop()

	err := ex.Submit(context.Background(), "u1", JobFunc(func(context.Context) error { return nil }))
	if !errors.Is(err, ErrExecutorClosed) {
		t.Fatalf("expected ErrExecutorClosed, got %v", err)
	}
	// Stop is idempotent.
	ex.Stop()
}

func TestShardExecutor_StopRacingSubmits(t *testing.T) {
	ex := NewShardExecutor(Config{Shards: 4, QueueSize: 32})

	var wg sync.WaitGroup
	for i := 0; i < 500; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := ex.Submit(context.Background(), "p5", JobFunc(func(context.Context) error { return nil }))
			if err != nil && !errors.Is(err, ErrExecutorClosed) && !errors.Is(err, ErrQueueFull) {
				t.Errorf("unexpected submit error during shutdown: %v", err)
			}
		}()
	}
	go ex.Stop()
	wg.Wait()
}
