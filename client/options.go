package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the session transport wrapper is installed,
// so transport-related options (like debug logging) will be placed underneath
// the bearer-token wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. Useful for
// tests and for callers that manage their own transport (proxies, tracing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the bearer-token wrapper; logs are
// emitted before the request is forwarded to the next transport.
// Do not enable this option in production environments as it increases
// verbosity and may include headers and method/URL metadata in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithAssetBaseURL overrides the host used by ResolveAssetURL for relative
// media paths. Defaults to the value of PAWPLANET_API_URL, falling back to
// http://localhost:5000.
func WithAssetBaseURL(base string) Option {
	return func(c *Client) error {
		if base == "" {
			return fmt.Errorf("asset base URL must not be empty")
		}
		c.assetBase = base
		return nil
	}
}

// WithTokenStore sets where the session token is persisted across client
// restarts. Defaults to in-memory (token lost on Close).
func WithTokenStore(ts TokenStore) Option {
	return func(c *Client) error {
		if ts == nil {
			return fmt.Errorf("token store must not be nil")
		}
		c.tokens = ts
		return nil
	}
}

// WithoutExecutor disables the internal shard-queue executor. Useful for
// short-lived processes that only call synchronous endpoints; async
// operations (RecordView, RecordHistory, Flush) then return
// ErrExecutorDisabled, and Logout skips the backend notification.
func WithoutExecutor() Option {
	return func(c *Client) error {
		c.exec = syncOnlyExecutor{}
		return nil
	}
}

// WithShardQueueConfig overrides the async executor configuration
// (shard count, queue size, backoff bounds).
func WithShardQueueConfig(cfg ShardQueueConfig) Option {
	return func(c *Client) error {
		c.exec = newExecutor(cfg)
		return nil
	}
}
