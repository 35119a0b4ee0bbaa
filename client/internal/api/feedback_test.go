package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

func TestCreateFeedback_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"fb1","type":"bug","content":"broken","status":"pending"}`))
	}))
	defer srv.Close()
	got, err := CreateFeedback(context.Background(), srv.Client(), srv.URL, types.CreateFeedbackRequest{Type: "bug", Content: "broken"})
	if err != nil || got.Status != types.FeedbackPending {
		t.Fatalf("CreateFeedback unexpected: got=%+v err=%v", got, err)
	}
}

func TestCreateFeedback_EmptyContent(t *testing.T) {
	t.Parallel()
	if _, err := CreateFeedback(context.Background(), http.DefaultClient, "http://example.com", types.CreateFeedbackRequest{Type: "bug"}); err == nil {
		t.Fatal("expected validation error for empty content")
	}
}

func TestUpdateFeedback_AdminReply(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/feedback/fb1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"fb1","status":"resolved","response":"fixed in v2"}`))
	}))
	defer srv.Close()
	got, err := UpdateFeedback(context.Background(), srv.Client(), srv.URL, "fb1", types.UpdateFeedbackRequest{Status: types.FeedbackResolved, Response: "fixed in v2"})
	if err != nil || got.Status != types.FeedbackResolved {
		t.Fatalf("UpdateFeedback unexpected: got=%+v err=%v", got, err)
	}
}

func TestListMyFeedback_Path(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/feedback/mine") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	got, err := ListMyFeedback(context.Background(), srv.Client(), srv.URL)
	if err != nil || got.Count != 0 {
		t.Fatalf("ListMyFeedback unexpected: got=%+v err=%v", got, err)
	}
}
