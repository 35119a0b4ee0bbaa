package client

import (
	"errors"

	"github.com/pawplanet/pawplanet-go/client/internal/apierr"
)

// ErrBackPressure is returned when the client's internal shard queue is full.
var ErrBackPressure = errors.New("back-pressure (queue full)")

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// ErrNoSession is returned by operations that need an authenticated user
// when no session is active.
var ErrNoSession = errors.New("no active session")

// ErrExecutorDisabled is returned by async operations (RecordView,
// RecordHistory, Flush) on a client built with WithoutExecutor.
var ErrExecutorDisabled = errors.New("async executor disabled (client built with WithoutExecutor)")

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrNotFound     = apierr.ErrNotFound
	ErrUnauthorized = apierr.ErrUnauthorized
)
