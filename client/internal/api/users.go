package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// GetUser retrieves a user profile. GET /api/users/{id}
func GetUser(ctx context.Context, hc *http.Client, baseURL, userID string) (*types.User, error) {
	if err := types.ValidateID(userID, "userId"); err != nil {
		return nil, err
	}
	var user types.User
	u := fmt.Sprintf("%s/api/users/%s", baseURL, pathEscape(userID))
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &user, http.StatusOK, "get user"); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile patches the caller's profile. PUT /api/users/me
func UpdateProfile(ctx context.Context, hc *http.Client, baseURL string, req types.UpdateProfileRequest) (*types.User, error) {
	var user types.User
	u := fmt.Sprintf("%s/api/users/me", baseURL)
	if err := doJSON(ctx, hc, http.MethodPut, u, req, &user, http.StatusOK, "update profile"); err != nil {
		return nil, err
	}
	return &user, nil
}

// FollowUser follows a user. POST /api/users/{id}/follow
func FollowUser(ctx context.Context, hc *http.Client, baseURL, userID string) (*types.FollowResponse, error) {
	if err := types.ValidateID(userID, "userId"); err != nil {
		return nil, err
	}
	var resp types.FollowResponse
	u := fmt.Sprintf("%s/api/users/%s/follow", baseURL, pathEscape(userID))
	if err := doJSON(ctx, hc, http.MethodPost, u, nil, &resp, http.StatusOK, "follow user"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UnfollowUser removes the follow edge. DELETE /api/users/{id}/follow
func UnfollowUser(ctx context.Context, hc *http.Client, baseURL, userID string) (*types.FollowResponse, error) {
	if err := types.ValidateID(userID, "userId"); err != nil {
		return nil, err
	}
	var resp types.FollowResponse
	u := fmt.Sprintf("%s/api/users/%s/follow", baseURL, pathEscape(userID))
	if err := doJSON(ctx, hc, http.MethodDelete, u, nil, &resp, http.StatusOK, "unfollow user"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListFollowers retrieves a user's followers. GET /api/users/{id}/followers
func ListFollowers(ctx context.Context, hc *http.Client, baseURL, userID string) (*types.List[types.User], error) {
	if err := types.ValidateID(userID, "userId"); err != nil {
		return nil, err
	}
	var list types.List[types.User]
	u := fmt.Sprintf("%s/api/users/%s/followers", baseURL, pathEscape(userID))
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list followers"); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListFollowing retrieves who a user follows. GET /api/users/{id}/following
func ListFollowing(ctx context.Context, hc *http.Client, baseURL, userID string) (*types.List[types.User], error) {
	if err := types.ValidateID(userID, "userId"); err != nil {
		return nil, err
	}
	var list types.List[types.User]
	u := fmt.Sprintf("%s/api/users/%s/following", baseURL, pathEscape(userID))
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list following"); err != nil {
		return nil, err
	}
	return &list, nil
}
