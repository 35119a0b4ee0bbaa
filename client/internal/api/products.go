package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// ListProducts retrieves shop products. GET /api/products
func ListProducts(ctx context.Context, hc *http.Client, baseURL string, params types.ListParams) (*types.List[types.Product], error) {
	var list types.List[types.Product]
	u := listURL(fmt.Sprintf("%s/api/products", baseURL), params)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list products"); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetProduct retrieves a product. GET /api/products/{id}
func GetProduct(ctx context.Context, hc *http.Client, baseURL, productID string) (*types.Product, error) {
	if err := types.ValidateID(productID, "productId"); err != nil {
		return nil, err
	}
	var product types.Product
	u := fmt.Sprintf("%s/api/products/%s", baseURL, pathEscape(productID))
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &product, http.StatusOK, "get product"); err != nil {
		return nil, err
	}
	return &product, nil
}

// ReviewProduct submits a product review. POST /api/products/{id}/reviews
func ReviewProduct(ctx context.Context, hc *http.Client, baseURL, productID string, req types.ReviewRequest) (*types.Review, error) {
	if err := types.ValidateID(productID, "productId"); err != nil {
		return nil, err
	}
	if err := types.ValidateScore(req.Score); err != nil {
		return nil, err
	}
	var review types.Review
	u := fmt.Sprintf("%s/api/products/%s/reviews", baseURL, pathEscape(productID))
	if err := doJSON(ctx, hc, http.MethodPost, u, req, &review, http.StatusCreated, "review product"); err != nil {
		return nil, err
	}
	return &review, nil
}
