package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// ListBookings retrieves the caller's bookings. GET /api/bookings
func ListBookings(ctx context.Context, hc *http.Client, baseURL string) (*types.List[types.Booking], error) {
	var list types.List[types.Booking]
	u := fmt.Sprintf("%s/api/bookings", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list bookings"); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetBooking retrieves a booking. GET /api/bookings/{id}
func GetBooking(ctx context.Context, hc *http.Client, baseURL, bookingID string) (*types.Booking, error) {
	if err := types.ValidateID(bookingID, "bookingId"); err != nil {
		return nil, err
	}
	var booking types.Booking
	u := fmt.Sprintf("%s/api/bookings/%s", baseURL, pathEscape(bookingID))
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &booking, http.StatusOK, "get booking"); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateBooking reserves a service slot. POST /api/bookings
func CreateBooking(ctx context.Context, hc *http.Client, baseURL string, req types.CreateBookingRequest) (*types.Booking, error) {
	if err := types.ValidateID(req.ServiceID, "serviceId"); err != nil {
		return nil, err
	}
	if err := types.ValidateSpecies(req.PetType); err != nil {
		return nil, err
	}
	var booking types.Booking
	u := fmt.Sprintf("%s/api/bookings", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, u, req, &booking, http.StatusCreated, "create booking"); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking cancels a booking. PUT /api/bookings/{id}/cancel
func CancelBooking(ctx context.Context, hc *http.Client, baseURL, bookingID string) (*types.Booking, error) {
	if err := types.ValidateID(bookingID, "bookingId"); err != nil {
		return nil, err
	}
	var booking types.Booking
	u := fmt.Sprintf("%s/api/bookings/%s/cancel", baseURL, pathEscape(bookingID))
	if err := doJSON(ctx, hc, http.MethodPut, u, nil, &booking, http.StatusOK, "cancel booking"); err != nil {
		return nil, err
	}
	return &booking, nil
}
