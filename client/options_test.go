package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPClientAndDebugLogging(t *testing.T) {
	// timeout option sets http timeout
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}

	// the session wrapper must still forward to the base transport
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c2 := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithHTTPTimeout(2*time.Second))
	defer func() { _ = c2.Close() }()

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c2.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestWithAssetBaseURL(t *testing.T) {
	c := New("http://example.com", WithAssetBaseURL("https://cdn.pawplanet.io"))
	defer func() { _ = c.Close() }()
	if got := c.ResolveAssetURL("/uploads/a.png"); got != "https://cdn.pawplanet.io/uploads/a.png" {
		t.Fatalf("ResolveAssetURL = %q", got)
	}
}

func TestWithoutExecutor_AsyncOpsDisabled(t *testing.T) {
	c := New("http://example.com", WithoutExecutor())
	defer func() { _ = c.Close() }()

	if _, err := c.RecordView(context.Background(), "p1"); !errors.Is(err, ErrExecutorDisabled) {
		t.Fatalf("RecordView: expected ErrExecutorDisabled, got %v", err)
	}
	if err := c.Flush(context.Background(), "p1"); !errors.Is(err, ErrExecutorDisabled) {
		t.Fatalf("Flush: expected ErrExecutorDisabled, got %v", err)
	}

	// Logout must still clear local state even though the backend
	// notification cannot be enqueued.
	c.session.set(&User{ID: "u1"}, "tok")
	if err := c.Session().Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if c.Session().IsAuthenticated() {
		t.Fatalf("session should be cleared")
	}
}

func TestOptionValidation(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
	if err := WithHTTPClient(nil)(c); err == nil {
		t.Fatalf("expected error for nil http client")
	}
	if err := WithAssetBaseURL("")(c); err == nil {
		t.Fatalf("expected error for empty asset base")
	}
	if err := WithTokenStore(nil)(c); err == nil {
		t.Fatalf("expected error for nil token store")
	}
}
