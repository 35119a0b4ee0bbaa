// Package job adapts delivery closures and submission keys for the
// shard executor.
package job

import (
	"context"
	"errors"
)

// ErrNilJob is returned when Run is invoked on a nil adapter.
var ErrNilJob = errors.New("job: nil function")

// jobFunc carries a single backend delivery into the executor.
type jobFunc func(context.Context) error

// Run executes the wrapped closure. A nil adapter fails instead of
// panicking so a bad submission never takes down a shard worker.
func (f jobFunc) Run(ctx context.Context) error {
	if f == nil {
		return ErrNilJob
	}
	return f(ctx)
}

// New wraps fn so it can be submitted to the shard executor.
func New(fn func(context.Context) error) jobFunc {
	return jobFunc(fn)
}
