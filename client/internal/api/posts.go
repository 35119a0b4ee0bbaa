package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/job"
	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// ListPosts retrieves feed posts. GET /api/posts
func ListPosts(ctx context.Context, hc *http.Client, baseURL string, params types.ListParams) (*types.List[types.Post], error) {
	var list types.List[types.Post]
	u := listURL(fmt.Sprintf("%s/api/posts", baseURL), params)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list posts"); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetPost retrieves a single post. GET /api/posts/{id}
func GetPost(ctx context.Context, hc *http.Client, baseURL, postID string) (*types.Post, error) {
	if err := types.ValidateID(postID, "postId"); err != nil {
		return nil, err
	}
	var post types.Post
	u := fmt.Sprintf("%s/api/posts/%s", baseURL, pathEscape(postID))
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &post, http.StatusOK, "get post"); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost publishes a new post. POST /api/posts
func CreatePost(ctx context.Context, hc *http.Client, baseURL string, req types.CreatePostRequest) (*types.Post, error) {
	if err := types.ValidatePostCategory(req.Category); err != nil {
		return nil, err
	}
	var post types.Post
	u := fmt.Sprintf("%s/api/posts", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, u, req, &post, http.StatusCreated, "create post"); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost patches an existing post. PUT /api/posts/{id}
func UpdatePost(ctx context.Context, hc *http.Client, baseURL, postID string, req types.UpdatePostRequest) (*types.Post, error) {
	if err := types.ValidateID(postID, "postId"); err != nil {
		return nil, err
	}
	var post types.Post
	u := fmt.Sprintf("%s/api/posts/%s", baseURL, pathEscape(postID))
	if err := doJSON(ctx, hc, http.MethodPut, u, req, &post, http.StatusOK, "update post"); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post. DELETE /api/posts/{id}
func DeletePost(ctx context.Context, hc *http.Client, baseURL, postID string) error {
	if err := types.ValidateID(postID, "postId"); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/api/posts/%s", baseURL, pathEscape(postID))
	return doJSON(ctx, hc, http.MethodDelete, u, nil, nil, http.StatusNoContent, "delete post")
}

// LikePost toggles the caller's like on a post. PUT /api/posts/{id}/like
func LikePost(ctx context.Context, hc *http.Client, baseURL, postID string) (*types.LikeResponse, error) {
	if err := types.ValidateID(postID, "postId"); err != nil {
		return nil, err
	}
	var resp types.LikeResponse
	u := fmt.Sprintf("%s/api/posts/%s/like", baseURL, pathEscape(postID))
	if err := doJSON(ctx, hc, http.MethodPut, u, nil, &resp, http.StatusOK, "like post"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CommentPost adds a comment. POST /api/posts/{id}/comments
func CommentPost(ctx context.Context, hc *http.Client, baseURL, postID string, req types.CommentRequest) (*types.Comment, error) {
	if err := types.ValidateID(postID, "postId"); err != nil {
		return nil, err
	}
	var comment types.Comment
	u := fmt.Sprintf("%s/api/posts/%s/comments", baseURL, pathEscape(postID))
	if err := doJSON(ctx, hc, http.MethodPost, u, req, &comment, http.StatusCreated, "comment post"); err != nil {
		return nil, err
	}
	return &comment, nil
}

// RecordView counts a post view via the sharded executor (async, FIFO per
// post). View counting must never block or fail a page load.
func RecordView(ctx context.Context, exec types.Executor, hc *http.Client, baseURL, postID string) (*types.EnqueueAck, error) {
	if err := types.ValidateID(postID, "postId"); err != nil {
		return nil, err
	}

	viewJob := job.New(func(jobCtx context.Context) error {
		u := fmt.Sprintf("%s/api/posts/%s/view", baseURL, pathEscape(postID))
		return doJSON(jobCtx, hc, http.MethodPost, u, nil, nil, http.StatusOK, "record view")
	})

	if err := exec.Submit(ctx, postID, viewJob); err != nil {
		return nil, err
	}
	return &types.EnqueueAck{Key: postID, Status: "enqueued"}, nil
}
