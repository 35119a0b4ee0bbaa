package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFromResponse_MessageExtraction(t *testing.T) {
	t.Parallel()
	e := FromResponse("create booking", http.StatusBadRequest, []byte(`{"message":"petName is required"}`))
	if e.Message != "petName is required" {
		t.Fatalf("message = %q", e.Message)
	}
	if e.Category != Irrecoverable {
		t.Fatalf("400 should be irrecoverable, got %s", e.Category)
	}
}

func TestFromResponse_ErrorFieldFallback(t *testing.T) {
	t.Parallel()
	e := FromResponse("login", http.StatusUnauthorized, []byte(`{"error":"bad credentials"}`))
	if e.Message != "bad credentials" {
		t.Fatalf("message = %q", e.Message)
	}
	if !errors.Is(e, ErrUnauthorized) {
		t.Fatal("401 should match ErrUnauthorized")
	}
}

func TestFromResponse_UnparseableBody(t *testing.T) {
	t.Parallel()
	e := FromResponse("list posts", http.StatusInternalServerError, []byte("oops"))
	if e.Message != "oops" {
		t.Fatalf("message = %q", e.Message)
	}
	if e.Category != Recoverable {
		t.Fatalf("500 should be recoverable, got %s", e.Category)
	}
}

func TestCategoryFor_RetryableClientErrors(t *testing.T) {
	t.Parallel()
	for _, status := range []int{http.StatusRequestTimeout, http.StatusTooManyRequests} {
		if got := categoryFor(status); got != Recoverable {
			t.Fatalf("status %d: got %s, want Recoverable", status, got)
		}
	}
	for _, status := range []int{400, 401, 403, 404, 409, 422} {
		if got := categoryFor(status); got != Irrecoverable {
			t.Fatalf("status %d: got %s, want Irrecoverable", status, got)
		}
	}
}

func TestNotFoundSentinel(t *testing.T) {
	t.Parallel()
	e := FromResponse("get pet", http.StatusNotFound, nil)
	if !errors.Is(e, ErrNotFound) {
		t.Fatal("404 should match ErrNotFound")
	}
	if errors.Is(e, ErrUnauthorized) {
		t.Fatal("404 must not match ErrUnauthorized")
	}
}

func TestIsIrrecoverable(t *testing.T) {
	t.Parallel()
	if !IsIrrecoverable(FromResponse("op", 403, nil)) {
		t.Fatal("403 should be irrecoverable")
	}
	if IsIrrecoverable(NewNetworkError("op", errors.New("conn refused"))) {
		t.Fatal("network errors are recoverable")
	}
	if IsIrrecoverable(errors.New("plain")) {
		t.Fatal("unclassified errors default to recoverable")
	}
	wrapped := fmt.Errorf("outer: %w", FromResponse("op", 400, nil))
	if !IsIrrecoverable(wrapped) {
		t.Fatal("classification must survive wrapping")
	}
}

func TestNewNetworkError_Unwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("dial tcp: connection refused")
	e := NewNetworkError("list products", cause)
	if !errors.Is(e, cause) {
		t.Fatal("underlying cause should be reachable via errors.Is")
	}
}
