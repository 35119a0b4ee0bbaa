package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchAll_AllBranchesSettle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search"); got != "cat" {
			t.Errorf("search param = %q", got)
		}
		switch r.URL.Path {
		case "/api/posts":
			_, _ = w.Write([]byte(`[{"id":"p1"}]`))
		case "/api/products":
			_, _ = w.Write([]byte(`[{"id":"pr1"},{"id":"pr2"}]`))
		case "/api/services":
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	defer func() { _ = c.Close() }()

	res, err := c.SearchAll(context.Background(), "cat")
	if err != nil {
		t.Fatalf("SearchAll: %v", err)
	}
	if res.Posts.Err != nil || len(res.Posts.Items) != 1 {
		t.Fatalf("posts branch: %+v", res.Posts)
	}
	if res.Products.Err != nil || len(res.Products.Items) != 2 {
		t.Fatalf("products branch: %+v", res.Products)
	}
	if res.Services.Err != nil || len(res.Services.Items) != 0 {
		t.Fatalf("services branch: %+v", res.Services)
	}
}

func TestSearchAll_FailedBranchDoesNotBlankOthers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/posts":
			_, _ = w.Write([]byte(`[{"id":"p1"}]`))
		case "/api/products":
			w.WriteHeader(http.StatusInternalServerError)
		case "/api/services":
			_, _ = w.Write([]byte(`[{"id":"s1"}]`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	defer func() { _ = c.Close() }()

	res, err := c.SearchAll(context.Background(), "food")
	if err != nil {
		t.Fatalf("SearchAll: %v", err)
	}
	if res.Products.Err == nil {
		t.Fatal("expected products branch error")
	}
	if res.Posts.Err != nil || len(res.Posts.Items) != 1 {
		t.Fatalf("posts branch should have settled: %+v", res.Posts)
	}
	if res.Services.Err != nil || len(res.Services.Items) != 1 {
		t.Fatalf("services branch should have settled: %+v", res.Services)
	}
}

func TestSearchAll_CanceledContext(t *testing.T) {
	c := New("http://example.com")
	defer func() { _ = c.Close() }()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.SearchAll(ctx, "cat"); err == nil {
		t.Fatal("expected context error")
	}
}
