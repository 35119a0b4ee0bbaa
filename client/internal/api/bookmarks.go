package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// ListBookmarks retrieves the caller's saved items, optionally filtered by
// item type via params.Category. GET /api/bookmarks
func ListBookmarks(ctx context.Context, hc *http.Client, baseURL string, params types.ListParams) (*types.List[types.Bookmark], error) {
	var list types.List[types.Bookmark]
	u := listURL(fmt.Sprintf("%s/api/bookmarks", baseURL), params)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list bookmarks"); err != nil {
		return nil, err
	}
	return &list, nil
}

// AddBookmark saves an item for later. POST /api/bookmarks/{itemId}
func AddBookmark(ctx context.Context, hc *http.Client, baseURL, itemID string, itemType types.ItemType) (*types.Bookmark, error) {
	if err := types.ValidateID(itemID, "itemId"); err != nil {
		return nil, err
	}
	if err := types.ValidateItemType(itemType); err != nil {
		return nil, err
	}
	var bm types.Bookmark
	u := fmt.Sprintf("%s/api/bookmarks/%s", baseURL, pathEscape(itemID))
	req := types.AddBookmarkRequest{ItemType: itemType}
	if err := doJSON(ctx, hc, http.MethodPost, u, req, &bm, http.StatusCreated, "add bookmark"); err != nil {
		return nil, err
	}
	return &bm, nil
}

// RemoveBookmark unsaves an item. DELETE /api/bookmarks/{itemId}
func RemoveBookmark(ctx context.Context, hc *http.Client, baseURL, itemID string) error {
	if err := types.ValidateID(itemID, "itemId"); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/api/bookmarks/%s", baseURL, pathEscape(itemID))
	return doJSON(ctx, hc, http.MethodDelete, u, nil, nil, http.StatusNoContent, "remove bookmark")
}
