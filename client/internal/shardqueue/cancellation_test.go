package shardqueue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// occupyShard parks the single worker on a delivery that holds until the
// returned release func is called.
func occupyShard(t *testing.T, ex *ShardExecutor, key string) (release func()) {
	t.Helper()
	hold, release := context.WithCancel(context.Background())
	started := make(chan struct{})
	if err := ex.Submit(context.Background(), key, JobFunc(func(context.Context) error {
		close(started)
		<-hold.Done()
		return nil
	})); err != nil {
		t.Fatalf("submit holding delivery: %v", err)
	}
	<-started
	return release
}

func TestWorker_SkipsDeliveryCanceledWhileQueued(t *testing.T) {
	var skipped int32
	cfg := Config{Shards: 1, QueueSize: 2, MaxAttempts: 1}
	cfg.ErrorHandler = func(err error) {
		if errors.Is(err, context.Canceled) {
			atomic.AddInt32(&skipped, 1)
		}
	}
	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	release := occupyShard(t, ex, "u1")

	// A view recorded for a page the user already left: queued behind the
	// held delivery, then canceled before the worker reaches it.
	var ran int32
	viewCtx, abandonView := context.WithCancel(context.Background())
	if err := ex.Submit(viewCtx, "u1", JobFunc(func(context.Context) error {
		atomic.StoreInt32(&ran, 1)
		return nil
	})); err != nil {
		t.Fatalf("submit queued view: %v", err)
	}
	abandonView()
	release()

	deadline := time.After(time.Second)
	for atomic.LoadInt32(&skipped) == 0 {
		select {
		case <-deadline:
			t.Fatal("handler never saw the canceled delivery")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	if atomic.LoadInt32(&ran) == 1 {
		t.Fatal("canceled delivery must not run")
	}
}

func TestSubmit_CallerCancelWinsOverFullQueue(t *testing.T) {
	ex := NewShardExecutor(Config{Shards: 1, QueueSize: 1, EnqueueTimeout: time.Second})
	defer ex.Stop()

	release := occupyShard(t, ex, "p1")
	defer release()

	// Fill the single queue slot so the next Submit blocks on send.
	if err := ex.Submit(context.Background(), "p1", JobFunc(func(context.Context) error { return nil })); err != nil {
		t.Fatalf("fill queue: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ex.Submit(ctx, "p1", JobFunc(func(context.Context) error { return nil }))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from blocked Submit, got %v", err)
	}
}
