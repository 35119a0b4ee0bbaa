package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// ListServices retrieves local services. GET /api/services
func ListServices(ctx context.Context, hc *http.Client, baseURL string, params types.ListParams) (*types.List[types.Service], error) {
	var list types.List[types.Service]
	u := listURL(fmt.Sprintf("%s/api/services", baseURL), params)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list services"); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetService retrieves a service. GET /api/services/{id}
func GetService(ctx context.Context, hc *http.Client, baseURL, serviceID string) (*types.Service, error) {
	if err := types.ValidateID(serviceID, "serviceId"); err != nil {
		return nil, err
	}
	var svc types.Service
	u := fmt.Sprintf("%s/api/services/%s", baseURL, pathEscape(serviceID))
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &svc, http.StatusOK, "get service"); err != nil {
		return nil, err
	}
	return &svc, nil
}

// ReviewService submits a service review. POST /api/services/{id}/reviews
func ReviewService(ctx context.Context, hc *http.Client, baseURL, serviceID string, req types.ReviewRequest) (*types.Review, error) {
	if err := types.ValidateID(serviceID, "serviceId"); err != nil {
		return nil, err
	}
	if err := types.ValidateScore(req.Score); err != nil {
		return nil, err
	}
	var review types.Review
	u := fmt.Sprintf("%s/api/services/%s/reviews", baseURL, pathEscape(serviceID))
	if err := doJSON(ctx, hc, http.MethodPost, u, req, &review, http.StatusCreated, "review service"); err != nil {
		return nil, err
	}
	return &review, nil
}
