package client

import (
	"context"

	"github.com/pawplanet/pawplanet-go/client/internal/shardqueue"
)

// executor abstracts the internal async job runner used by async APIs.
type executor interface {
	Submit(context.Context, string, shardqueue.Job) error
	Stop()
}

// syncOnlyExecutor backs clients built with WithoutExecutor. Async
// operations fail with ErrExecutorDisabled instead of enqueueing.
type syncOnlyExecutor struct{}

func (syncOnlyExecutor) Submit(context.Context, string, shardqueue.Job) error {
	return ErrExecutorDisabled
}

func (syncOnlyExecutor) Stop() {}
