package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// Login exchanges credentials for a token. POST /api/auth/login
func Login(ctx context.Context, hc *http.Client, baseURL string, creds types.Credentials) (*types.AuthResponse, error) {
	var resp types.AuthResponse
	u := fmt.Sprintf("%s/api/auth/login", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, u, creds, &resp, http.StatusOK, "login"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account. POST /api/auth/register
func Register(ctx context.Context, hc *http.Client, baseURL string, req types.RegisterRequest) (*types.AuthResponse, error) {
	var resp types.AuthResponse
	u := fmt.Sprintf("%s/api/auth/register", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, u, req, &resp, http.StatusCreated, "register"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the user bound to the current token. GET /api/auth/me
func Me(ctx context.Context, hc *http.Client, baseURL string) (*types.User, error) {
	var user types.User
	u := fmt.Sprintf("%s/api/auth/me", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &user, http.StatusOK, "whoami"); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout notifies the backend that the token is abandoned.
// POST /api/auth/logout. Local state is cleared regardless of the outcome.
func Logout(ctx context.Context, hc *http.Client, baseURL string) error {
	u := fmt.Sprintf("%s/api/auth/logout", baseURL)
	return doJSON(ctx, hc, http.MethodPost, u, nil, nil, http.StatusOK, "logout")
}
