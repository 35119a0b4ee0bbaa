package shardqueue

import "context"

// Job is one unit of asynchronous work, in practice a single HTTP
// delivery to the backend (a view count, a history append, a logout
// notification). Run may be invoked several times on the same receiver
// when the executor retries, so implementations must be re-runnable.
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc adapts a plain function to Job.
type JobFunc func(ctx context.Context) error

// Run invokes f.
func (f JobFunc) Run(ctx context.Context) error { return f(ctx) }
