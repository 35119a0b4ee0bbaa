package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pawplanet/pawplanet-go/client"
)

func TestRootCmd_HasExpectedSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{
		"login", "logout", "whoami",
		"feed", "create-post", "like-post",
		"pets", "create-pet", "feed-plan",
		"products", "services", "search",
		"bookings", "create-booking", "cancel-booking",
		"orders", "points", "redeem", "admin-stats",
	}
	have := map[string]bool{}
	for _, c := range root.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestLikePostCmd_ReconcilesWithBackendCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/posts/p1":
			_ = json.NewEncoder(w).Encode(client.Post{ID: "p1", Likes: 3, IsLiked: false})
		case r.Method == http.MethodPut && r.URL.Path == "/api/posts/p1/like":
			// Backend answers with a count the optimistic guess (4)
			// cannot know; the command must print this one.
			_ = json.NewEncoder(w).Encode(client.LikeResponse{Likes: 7, IsLiked: true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	t.Setenv("PAWPLANET_TOKEN_PATH", filepath.Join(t.TempDir(), "token"))

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"like-post", "--post-id", "p1", "--service-url", srv.URL})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "7") {
		t.Fatalf("expected reconciled like count in output, got %q", out.String())
	}
}

func TestFeedPlanCmd_ComputesLocally(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"feed-plan", "--weight", "10", "--activity", "high"})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
}

func TestFeedPlanCmd_RejectsBadActivity(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"feed-plan", "--weight", "10", "--activity", "hyper"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "activity") {
		t.Fatalf("expected activity error, got %v", err)
	}
}
