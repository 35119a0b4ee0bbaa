package client

import (
	"context"
	"sync"

	"github.com/pawplanet/pawplanet-go/client/internal/api"
	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// SearchAll fans the query out to posts, products, and services in
// parallel and waits for every branch to settle. A failed branch carries
// its error in the result instead of failing the whole search, so one
// slow or broken index never blanks the page.
func (c *Client) SearchAll(ctx context.Context, query string) (*SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := ListParams{Search: query}
	res := &SearchResults{}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		list, err := api.ListPosts(ctx, c.http, c.baseURL, params)
		res.Posts = settle(list, err)
	}()
	go func() {
		defer wg.Done()
		list, err := api.ListProducts(ctx, c.http, c.baseURL, params)
		res.Products = settle(list, err)
	}()
	go func() {
		defer wg.Done()
		list, err := api.ListServices(ctx, c.http, c.baseURL, params)
		res.Services = settle(list, err)
	}()

	wg.Wait()
	return res, nil
}

func settle[T any](list *types.List[T], err error) types.SearchBranch[T] {
	if err != nil {
		return types.SearchBranch[T]{Err: err}
	}
	return types.SearchBranch[T]{Items: list.Data}
}
