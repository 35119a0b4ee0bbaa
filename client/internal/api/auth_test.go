package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pawplanet/pawplanet-go/client/internal/apierr"
	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	want := types.AuthResponse{Token: "tok-1", User: types.User{ID: "u1", Username: "mei"}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()
	got, err := Login(context.Background(), srv.Client(), srv.URL, types.Credentials{Email: "a@b.c", Password: "pw"})
	if err != nil || got == nil || got.Token != "tok-1" || got.User.ID != "u1" {
		t.Fatalf("Login unexpected: got=%+v err=%v", got, err)
	}
}

func TestLogin_Unauthorized(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	}))
	defer srv.Close()
	_, err := Login(context.Background(), srv.Client(), srv.URL, types.Credentials{Email: "a@b.c", Password: "bad"})
	if err == nil {
		t.Fatal("expected error for 401")
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.StatusCode != http.StatusUnauthorized || ae.Message != "invalid credentials" {
		t.Fatalf("expected classified 401 with backend message, got %v", err)
	}
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	want := types.AuthResponse{Token: "tok-2", User: types.User{ID: "u2"}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()
	got, err := Register(context.Background(), srv.Client(), srv.URL, types.RegisterRequest{Username: "mei", Email: "a@b.c", Password: "pw"})
	if err != nil || got == nil || got.Token != "tok-2" {
		t.Fatalf("Register unexpected: got=%+v err=%v", got, err)
	}
}

func TestMe_Success(t *testing.T) {
	t.Parallel()
	want := types.User{ID: "u1", Role: types.RoleAdmin}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()
	got, err := Me(context.Background(), srv.Client(), srv.URL)
	if err != nil || got == nil || got.Role != types.RoleAdmin {
		t.Fatalf("Me unexpected: got=%+v err=%v", got, err)
	}
}

func TestLogout_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	if err := Logout(context.Background(), srv.Client(), srv.URL); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
}

func TestAuth_HTTPDoError(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	if _, err := Login(context.Background(), hc, "http://example.com", types.Credentials{}); err == nil {
		t.Fatal("expected Do error for Login")
	}
	if _, err := Me(context.Background(), hc, "http://example.com"); err == nil {
		t.Fatal("expected Do error for Me")
	}
}
