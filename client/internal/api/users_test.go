package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

func TestFollowUser_PathAndDecode(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/users/u2/follow" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(types.FollowResponse{Following: true})
	}))
	defer srv.Close()
	got, err := FollowUser(context.Background(), srv.Client(), srv.URL, "u2")
	if err != nil || !got.Following {
		t.Fatalf("FollowUser unexpected: got=%+v err=%v", got, err)
	}
}

func TestUnfollowUser_Path(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/users/u2/follow" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(types.FollowResponse{Following: false})
	}))
	defer srv.Close()
	got, err := UnfollowUser(context.Background(), srv.Client(), srv.URL, "u2")
	if err != nil || got.Following {
		t.Fatalf("UnfollowUser unexpected: got=%+v err=%v", got, err)
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/users/me" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(types.User{ID: "u1", Bio: "cat person"})
	}))
	defer srv.Close()
	got, err := UpdateProfile(context.Background(), srv.Client(), srv.URL, types.UpdateProfileRequest{Bio: "cat person"})
	if err != nil || got.Bio != "cat person" {
		t.Fatalf("UpdateProfile unexpected: got=%+v err=%v", got, err)
	}
}

func TestListFollowers_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/u1/followers" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":"u2","username":"tao"}]`))
	}))
	defer srv.Close()
	got, err := ListFollowers(context.Background(), srv.Client(), srv.URL, "u1")
	if err != nil || got.Data[0].Username != "tao" {
		t.Fatalf("ListFollowers unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetAdminStats_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/stats" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"users":10,"posts":40,"orders":5,"bookings":3,"feedback":2}`))
	}))
	defer srv.Close()
	got, err := GetAdminStats(context.Background(), srv.Client(), srv.URL)
	if err != nil || got.Users != 10 || got.Posts != 40 {
		t.Fatalf("GetAdminStats unexpected: got=%+v err=%v", got, err)
	}
}
