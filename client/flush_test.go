package client

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pawplanet/pawplanet-go/client/internal/job"
)

func TestFlush(t *testing.T) {
	c := New("http://example.com")
	defer func() { _ = c.Close() }()

	postID := "post-123"
	var ranFirst int32

	// enqueue a dummy job then barrier
	if err := c.exec.Submit(context.Background(), postID, job.New(func(ctx context.Context) error {
		time.Sleep(30 * time.Millisecond)
		atomic.StoreInt32(&ranFirst, 1)
		return nil
	})); err != nil {
		t.Fatalf("submit: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	start := time.Now()
	if err := c.Flush(ctx, postID); err != nil {
		t.Fatalf("flush: %v", err)
	}
	elapsed := time.Since(start)

	if atomic.LoadInt32(&ranFirst) == 0 {
		t.Fatalf("barrier returned before previous job executed")
	}

	if elapsed < 25*time.Millisecond {
		t.Fatalf("flush returned too quickly: %v", elapsed)
	}
}
