package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// ListOrders retrieves the caller's orders. GET /api/orders
func ListOrders(ctx context.Context, hc *http.Client, baseURL string) (*types.List[types.Order], error) {
	var list types.List[types.Order]
	u := fmt.Sprintf("%s/api/orders", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list orders"); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetOrder retrieves an order. GET /api/orders/{id}
func GetOrder(ctx context.Context, hc *http.Client, baseURL, orderID string) (*types.Order, error) {
	if err := types.ValidateID(orderID, "orderId"); err != nil {
		return nil, err
	}
	var order types.Order
	u := fmt.Sprintf("%s/api/orders/%s", baseURL, pathEscape(orderID))
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &order, http.StatusOK, "get order"); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder places an order. POST /api/orders
func CreateOrder(ctx context.Context, hc *http.Client, baseURL string, req types.CreateOrderRequest) (*types.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order requires at least one item")
	}
	for _, item := range req.Items {
		if err := types.ValidateID(item.ProductID, "productId"); err != nil {
			return nil, err
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be positive")
		}
	}
	var order types.Order
	u := fmt.Sprintf("%s/api/orders", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, u, req, &order, http.StatusCreated, "create order"); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder cancels a pending order. PUT /api/orders/{id}/cancel
func CancelOrder(ctx context.Context, hc *http.Client, baseURL, orderID string) (*types.Order, error) {
	if err := types.ValidateID(orderID, "orderId"); err != nil {
		return nil, err
	}
	var order types.Order
	u := fmt.Sprintf("%s/api/orders/%s/cancel", baseURL, pathEscape(orderID))
	if err := doJSON(ctx, hc, http.MethodPut, u, nil, &order, http.StatusOK, "cancel order"); err != nil {
		return nil, err
	}
	return &order, nil
}
