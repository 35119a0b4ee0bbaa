package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// GetPointsBalance retrieves the caller's current points balance.
// GET /api/points/balance
func GetPointsBalance(ctx context.Context, hc *http.Client, baseURL string) (*types.PointsBalance, error) {
	var bal types.PointsBalance
	u := fmt.Sprintf("%s/api/points/balance", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &bal, http.StatusOK, "get points balance"); err != nil {
		return nil, err
	}
	return &bal, nil
}

// ListPointsTransactions retrieves the caller's earn/spend ledger, newest
// first. GET /api/points/transactions
func ListPointsTransactions(ctx context.Context, hc *http.Client, baseURL string, params types.ListParams) (*types.List[types.PointsTransaction], error) {
	var list types.List[types.PointsTransaction]
	u := listURL(fmt.Sprintf("%s/api/points/transactions", baseURL), params)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list points transactions"); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListRewards retrieves the redeemable rewards catalog. GET /api/points/rewards
func ListRewards(ctx context.Context, hc *http.Client, baseURL string, params types.ListParams) (*types.List[types.Reward], error) {
	var list types.List[types.Reward]
	u := listURL(fmt.Sprintf("%s/api/points/rewards", baseURL), params)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list rewards"); err != nil {
		return nil, err
	}
	return &list, nil
}

// RedeemReward exchanges points for a reward. The server rejects the request
// when the balance is insufficient or the reward is out of stock.
// POST /api/points/redeem
func RedeemReward(ctx context.Context, hc *http.Client, baseURL, rewardID string) (*types.PointsTransaction, error) {
	if err := types.ValidateID(rewardID, "rewardId"); err != nil {
		return nil, err
	}
	var tx types.PointsTransaction
	u := fmt.Sprintf("%s/api/points/redeem", baseURL)
	req := types.RedeemRequest{RewardID: rewardID}
	if err := doJSON(ctx, hc, http.MethodPost, u, req, &tx, http.StatusCreated, "redeem reward"); err != nil {
		return nil, err
	}
	return &tx, nil
}
