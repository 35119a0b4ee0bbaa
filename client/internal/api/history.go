package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/job"
	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// ListHistory retrieves the caller's browsing history, newest first.
// GET /api/history?days={n}
func ListHistory(ctx context.Context, hc *http.Client, baseURL string, params types.ListParams) (*types.List[types.HistoryItem], error) {
	var list types.List[types.HistoryItem]
	u := listURL(fmt.Sprintf("%s/api/history", baseURL), params)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list history"); err != nil {
		return nil, err
	}
	return &list, nil
}

// RecordHistory appends a browsing-history entry via the sharded executor
// (async, FIFO per user). History writes ride alongside navigation and must
// never block it.
func RecordHistory(ctx context.Context, exec types.Executor, hc *http.Client, baseURL, userID string, req types.RecordHistoryRequest) (*types.EnqueueAck, error) {
	if err := types.ValidateID(userID, "userId"); err != nil {
		return nil, err
	}
	if err := types.ValidateItemType(req.ItemType); err != nil {
		return nil, err
	}
	if err := types.ValidateID(req.ItemID, "itemId"); err != nil {
		return nil, err
	}

	histJob := job.New(func(jobCtx context.Context) error {
		u := fmt.Sprintf("%s/api/history", baseURL)
		return doJSON(jobCtx, hc, http.MethodPost, u, req, nil, http.StatusCreated, "record history")
	})

	if err := exec.Submit(ctx, userID, histJob); err != nil {
		return nil, err
	}
	return &types.EnqueueAck{Key: userID, Status: "enqueued"}, nil
}

// ClearHistory deletes the caller's entire browsing history.
// DELETE /api/history
func ClearHistory(ctx context.Context, hc *http.Client, baseURL string) error {
	u := fmt.Sprintf("%s/api/history", baseURL)
	return doJSON(ctx, hc, http.MethodDelete, u, nil, nil, http.StatusNoContent, "clear history")
}
