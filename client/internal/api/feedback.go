package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// CreateFeedback submits a feedback ticket. POST /api/feedback
func CreateFeedback(ctx context.Context, hc *http.Client, baseURL string, req types.CreateFeedbackRequest) (*types.Feedback, error) {
	if req.Content == "" {
		return nil, fmt.Errorf("create feedback: content is required")
	}
	var fb types.Feedback
	u := fmt.Sprintf("%s/api/feedback", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, u, req, &fb, http.StatusCreated, "create feedback"); err != nil {
		return nil, err
	}
	return &fb, nil
}

// ListMyFeedback retrieves the caller's own tickets. GET /api/feedback/mine
func ListMyFeedback(ctx context.Context, hc *http.Client, baseURL string) (*types.List[types.Feedback], error) {
	var list types.List[types.Feedback]
	u := fmt.Sprintf("%s/api/feedback/mine", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list my feedback"); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListAllFeedback retrieves every ticket; admin only. GET /api/feedback
func ListAllFeedback(ctx context.Context, hc *http.Client, baseURL string, params types.ListParams) (*types.List[types.Feedback], error) {
	var list types.List[types.Feedback]
	u := listURL(fmt.Sprintf("%s/api/feedback", baseURL), params)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list feedback"); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateFeedback sets ticket status and operator response; admin only.
// PUT /api/feedback/{id}
func UpdateFeedback(ctx context.Context, hc *http.Client, baseURL, feedbackID string, req types.UpdateFeedbackRequest) (*types.Feedback, error) {
	if err := types.ValidateID(feedbackID, "feedbackId"); err != nil {
		return nil, err
	}
	var fb types.Feedback
	u := fmt.Sprintf("%s/api/feedback/%s", baseURL, pathEscape(feedbackID))
	if err := doJSON(ctx, hc, http.MethodPut, u, req, &fb, http.StatusOK, "update feedback"); err != nil {
		return nil, err
	}
	return &fb, nil
}
