package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// GetAdminStats retrieves platform-wide aggregate counts; admin only.
// GET /api/admin/stats
func GetAdminStats(ctx context.Context, hc *http.Client, baseURL string) (*types.AdminStats, error) {
	var stats types.AdminStats
	u := fmt.Sprintf("%s/api/admin/stats", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &stats, http.StatusOK, "get admin stats"); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListAdminUsers retrieves all registered users; admin only.
// GET /api/admin/users
func ListAdminUsers(ctx context.Context, hc *http.Client, baseURL string, params types.ListParams) (*types.List[types.User], error) {
	var list types.List[types.User]
	u := listURL(fmt.Sprintf("%s/api/admin/users", baseURL), params)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list admin users"); err != nil {
		return nil, err
	}
	return &list, nil
}
