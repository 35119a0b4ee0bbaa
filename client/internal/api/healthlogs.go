package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// ListHealthLogs retrieves health logs for a pet, newest first.
// GET /api/healthlogs?petId={id}&days={n}
func ListHealthLogs(ctx context.Context, hc *http.Client, baseURL string, params types.ListParams) (*types.List[types.HealthLog], error) {
	if err := types.ValidateID(params.PetID, "petId"); err != nil {
		return nil, err
	}
	var list types.List[types.HealthLog]
	u := listURL(fmt.Sprintf("%s/api/healthlogs", baseURL), params)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list health logs"); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetHealthLog retrieves a single log. GET /api/healthlogs/{id}
func GetHealthLog(ctx context.Context, hc *http.Client, baseURL, logID string) (*types.HealthLog, error) {
	if err := types.ValidateID(logID, "logId"); err != nil {
		return nil, err
	}
	var hl types.HealthLog
	u := fmt.Sprintf("%s/api/healthlogs/%s", baseURL, pathEscape(logID))
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &hl, http.StatusOK, "get health log"); err != nil {
		return nil, err
	}
	return &hl, nil
}

// CreateHealthLog records a daily health entry. POST /api/healthlogs
func CreateHealthLog(ctx context.Context, hc *http.Client, baseURL string, req types.UpsertHealthLogRequest) (*types.HealthLog, error) {
	if err := types.ValidateID(req.PetID, "petId"); err != nil {
		return nil, err
	}
	var hl types.HealthLog
	u := fmt.Sprintf("%s/api/healthlogs", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, u, req, &hl, http.StatusCreated, "create health log"); err != nil {
		return nil, err
	}
	return &hl, nil
}

// UpdateHealthLog patches a log entry. PUT /api/healthlogs/{id}
func UpdateHealthLog(ctx context.Context, hc *http.Client, baseURL, logID string, req types.UpsertHealthLogRequest) (*types.HealthLog, error) {
	if err := types.ValidateID(logID, "logId"); err != nil {
		return nil, err
	}
	var hl types.HealthLog
	u := fmt.Sprintf("%s/api/healthlogs/%s", baseURL, pathEscape(logID))
	if err := doJSON(ctx, hc, http.MethodPut, u, req, &hl, http.StatusOK, "update health log"); err != nil {
		return nil, err
	}
	return &hl, nil
}

// DeleteHealthLog removes a log entry. DELETE /api/healthlogs/{id}
func DeleteHealthLog(ctx context.Context, hc *http.Client, baseURL, logID string) error {
	if err := types.ValidateID(logID, "logId"); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/api/healthlogs/%s", baseURL, pathEscape(logID))
	return doJSON(ctx, hc, http.MethodDelete, u, nil, nil, http.StatusNoContent, "delete health log")
}
