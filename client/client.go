// Package client is the Go SDK for the PawPlanet pet lifestyle platform.
// It wraps the platform's REST API with typed operations for the social
// feed, pet profiles and health tracking, the shop, local service
// bookings, the points mall, and the admin back office.
//
// Construct a Client with New, authenticate through Client.Session, and
// call the typed operations. Engagement writes (view counting, browsing
// history) are fire-and-forget: they ride a sharded FIFO executor with
// retries so they never block a read path.
package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/pawplanet/pawplanet-go/client/internal/api"
	"github.com/pawplanet/pawplanet-go/client/internal/job"
	"github.com/pawplanet/pawplanet-go/client/internal/shardqueue"
)

// ShardQueueConfig tunes the async executor. See shardqueue.Config for
// the SQ_* environment variables that feed the defaults.
type ShardQueueConfig = shardqueue.Config

// Client talks to one PawPlanet backend. Create it with New and release
// it with Close. Safe for concurrent use.
type Client struct {
	baseURL   string
	assetBase string
	http      *http.Client
	exec      executor
	tokens    TokenStore
	session   *Session

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the backend at baseURL.
// Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL:   baseURL,
		assetBase: defaultAssetBase(),
		http:      &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor()
	}
	if c.tokens == nil {
		c.tokens = newMemTokenStore()
	}
	c.session = &Session{c: c}

	// Wrap the transport so every request carries the session token.
	c.wrapTransportWithSession()

	return c
}

// Session returns the authentication state for this client.
func (c *Client) Session() *Session { return c.session }

// wrapTransportWithSession wraps the HTTP client's transport to attach the
// current bearer token and a request id to every call, and to invalidate
// the session when the backend answers 401.
func (c *Client) wrapTransportWithSession() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &sessionTransport{
		base:  baseTransport,
		token: func() string { return c.session.Token() },
		onUnauthorized: func() {
			c.session.invalidate()
		},
	}
}

// sessionTransport injects the Authorization and X-Request-Id headers.
// The token is read per request so logins take effect on in-flight clients.
type sessionTransport struct {
	base           http.RoundTripper
	token          func() string
	onUnauthorized func()
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	if tok := t.token(); tok != "" {
		cloned.Header.Set("Authorization", "Bearer "+tok)
	}
	cloned.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := t.base.RoundTrip(cloned)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
		t.onUnauthorized()
	}
	return resp, nil
}

// Close stops the background executor (if any). Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// Flush blocks until all previously submitted async jobs for the given key
// (a post or user id) have been executed. It works by submitting a no-op
// job and waiting for it to run, thereby guaranteeing FIFO ordering has
// flushed.
func (c *Client) Flush(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	barrier := job.New(func(context.Context) error {
		close(done)
		return nil
	})
	if err := c.exec.Submit(ctx, key, barrier); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// newDefaultExecutor constructs the shardqueue executor, preferring SQ_*
// environment overrides over the built-in defaults.
func newDefaultExecutor() *shardqueue.ShardExecutor {
	cfg, err := shardqueue.LoadConfig()
	if err != nil {
		cfg = shardqueue.Config{Shards: 4, QueueSize: 128, MaxAttempts: 8, BaseBackoff: 100 * time.Millisecond, MaxInterval: 20 * time.Second, EnqueueTimeout: 100 * time.Millisecond}
	}
	return shardqueue.NewShardExecutor(cfg)
}

func newExecutor(cfg ShardQueueConfig) *shardqueue.ShardExecutor {
	return shardqueue.NewShardExecutor(cfg)
}

// defaultAssetBase resolves the host used for relative media paths.
func defaultAssetBase() string {
	if v := os.Getenv("PAWPLANET_API_URL"); v != "" {
		return v
	}
	return "http://localhost:5000"
}

// --------------------------------------------------------------------
// Feed operations - delegated to internal/api
// --------------------------------------------------------------------

// ListPosts retrieves feed posts with optional filtering and pagination.
func (c *Client) ListPosts(ctx context.Context, params ListParams) (*List[Post], error) {
	return api.ListPosts(ctx, c.http, c.baseURL, params)
}

// GetPost retrieves a single post with populated author and comments.
func (c *Client) GetPost(ctx context.Context, postID string) (*Post, error) {
	return api.GetPost(ctx, c.http, c.baseURL, postID)
}

// CreatePost publishes a new feed post.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	return api.CreatePost(ctx, c.http, c.baseURL, req)
}

// UpdatePost edits an existing post. The backend enforces ownership.
func (c *Client) UpdatePost(ctx context.Context, postID string, req UpdatePostRequest) (*Post, error) {
	return api.UpdatePost(ctx, c.http, c.baseURL, postID, req)
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	return api.DeletePost(ctx, c.http, c.baseURL, postID)
}

// LikePost toggles the caller's like and returns the resulting state.
func (c *Client) LikePost(ctx context.Context, postID string) (*LikeResponse, error) {
	return api.LikePost(ctx, c.http, c.baseURL, postID)
}

// CommentPost adds a comment to a post.
func (c *Client) CommentPost(ctx context.Context, postID string, req CommentRequest) (*Comment, error) {
	return api.CommentPost(ctx, c.http, c.baseURL, postID, req)
}

// RecordView counts a view asynchronously. Views for the same post are
// delivered in order; a full queue surfaces as ErrBackPressure.
func (c *Client) RecordView(ctx context.Context, postID string) (*EnqueueAck, error) {
	ack, err := api.RecordView(ctx, c.exec, c.http, c.baseURL, postID)
	if err != nil {
		if errors.Is(err, shardqueue.ErrQueueFull) {
			asyncFailedTotal.WithLabelValues(job.ShardLabel(postID)).Inc()
			return nil, ErrBackPressure
		}
		return nil, err
	}
	asyncEnqueuedTotal.WithLabelValues(job.ShardLabel(postID)).Inc()
	return ack, nil
}

// --------------------------------------------------------------------
// Pet operations - delegated to internal/api
// --------------------------------------------------------------------

// ListPets retrieves the caller's pets.
func (c *Client) ListPets(ctx context.Context) (*List[Pet], error) {
	return api.ListPets(ctx, c.http, c.baseURL)
}

// GetPet retrieves a pet profile with its health sub-document.
func (c *Client) GetPet(ctx context.Context, petID string) (*Pet, error) {
	return api.GetPet(ctx, c.http, c.baseURL, petID)
}

// CreatePet registers a new pet for the caller.
func (c *Client) CreatePet(ctx context.Context, req UpsertPetRequest) (*Pet, error) {
	return api.CreatePet(ctx, c.http, c.baseURL, req)
}

// UpdatePet edits a pet profile.
func (c *Client) UpdatePet(ctx context.Context, petID string, req UpsertPetRequest) (*Pet, error) {
	return api.UpdatePet(ctx, c.http, c.baseURL, petID, req)
}

// DeletePet removes a pet profile.
func (c *Client) DeletePet(ctx context.Context, petID string) error {
	return api.DeletePet(ctx, c.http, c.baseURL, petID)
}

// AddVaccination appends a vaccination to the pet's health record.
func (c *Client) AddVaccination(ctx context.Context, petID string, v Vaccination) (*Pet, error) {
	return api.AddVaccination(ctx, c.http, c.baseURL, petID, v)
}

// AddCheckup appends a vet visit to the pet's health record.
func (c *Client) AddCheckup(ctx context.Context, petID string, ck Checkup) (*Pet, error) {
	return api.AddCheckup(ctx, c.http, c.baseURL, petID, ck)
}

// AddReminder schedules a care task for a pet.
func (c *Client) AddReminder(ctx context.Context, petID string, req AddReminderRequest) (*Reminder, error) {
	return api.AddReminder(ctx, c.http, c.baseURL, petID, req)
}

// --------------------------------------------------------------------
// Health log operations - delegated to internal/api
// --------------------------------------------------------------------

// ListHealthLogs retrieves a pet's daily health records, newest first.
// params.PetID is required; params.Days bounds the window.
func (c *Client) ListHealthLogs(ctx context.Context, params ListParams) (*List[HealthLog], error) {
	return api.ListHealthLogs(ctx, c.http, c.baseURL, params)
}

// GetHealthLog retrieves a single health record.
func (c *Client) GetHealthLog(ctx context.Context, logID string) (*HealthLog, error) {
	return api.GetHealthLog(ctx, c.http, c.baseURL, logID)
}

// CreateHealthLog records a daily health entry; the backend evaluates
// alerts on write.
func (c *Client) CreateHealthLog(ctx context.Context, req UpsertHealthLogRequest) (*HealthLog, error) {
	return api.CreateHealthLog(ctx, c.http, c.baseURL, req)
}

// UpdateHealthLog edits a health record.
func (c *Client) UpdateHealthLog(ctx context.Context, logID string, req UpsertHealthLogRequest) (*HealthLog, error) {
	return api.UpdateHealthLog(ctx, c.http, c.baseURL, logID, req)
}

// DeleteHealthLog removes a health record.
func (c *Client) DeleteHealthLog(ctx context.Context, logID string) error {
	return api.DeleteHealthLog(ctx, c.http, c.baseURL, logID)
}

// --------------------------------------------------------------------
// Shop operations - delegated to internal/api
// --------------------------------------------------------------------

// ListProducts retrieves shop products with filtering and sorting.
func (c *Client) ListProducts(ctx context.Context, params ListParams) (*List[Product], error) {
	return api.ListProducts(ctx, c.http, c.baseURL, params)
}

// GetProduct retrieves one product with variants, specs, and reviews.
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	return api.GetProduct(ctx, c.http, c.baseURL, productID)
}

// ReviewProduct submits a 1-5 review on a product.
func (c *Client) ReviewProduct(ctx context.Context, productID string, req ReviewRequest) (*Review, error) {
	return api.ReviewProduct(ctx, c.http, c.baseURL, productID, req)
}

// ListOrders retrieves the caller's orders, newest first.
func (c *Client) ListOrders(ctx context.Context) (*List[Order], error) {
	return api.ListOrders(ctx, c.http, c.baseURL)
}

// GetOrder retrieves one order.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	return api.GetOrder(ctx, c.http, c.baseURL, orderID)
}

// CreateOrder places an order; the backend prices the lines and checks
// stock.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	return api.CreateOrder(ctx, c.http, c.baseURL, req)
}

// CancelOrder cancels a pending order.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*Order, error) {
	return api.CancelOrder(ctx, c.http, c.baseURL, orderID)
}

// --------------------------------------------------------------------
// Local service operations - delegated to internal/api
// --------------------------------------------------------------------

// ListServices retrieves local services, filterable by category and city.
func (c *Client) ListServices(ctx context.Context, params ListParams) (*List[Service], error) {
	return api.ListServices(ctx, c.http, c.baseURL, params)
}

// GetService retrieves one service with its location and reviews.
func (c *Client) GetService(ctx context.Context, serviceID string) (*Service, error) {
	return api.GetService(ctx, c.http, c.baseURL, serviceID)
}

// ReviewService submits a 1-5 review on a service.
func (c *Client) ReviewService(ctx context.Context, serviceID string, req ReviewRequest) (*Review, error) {
	return api.ReviewService(ctx, c.http, c.baseURL, serviceID, req)
}

// ListBookings retrieves the caller's bookings.
func (c *Client) ListBookings(ctx context.Context) (*List[Booking], error) {
	return api.ListBookings(ctx, c.http, c.baseURL)
}

// GetBooking retrieves one booking.
func (c *Client) GetBooking(ctx context.Context, bookingID string) (*Booking, error) {
	return api.GetBooking(ctx, c.http, c.baseURL, bookingID)
}

// CreateBooking reserves a service slot for a pet.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	return api.CreateBooking(ctx, c.http, c.baseURL, req)
}

// CancelBooking cancels a booking that has not completed.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) (*Booking, error) {
	return api.CancelBooking(ctx, c.http, c.baseURL, bookingID)
}

// --------------------------------------------------------------------
// User and social graph operations - delegated to internal/api
// --------------------------------------------------------------------

// GetUser retrieves a public user profile.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	return api.GetUser(ctx, c.http, c.baseURL, userID)
}

// UpdateProfile edits the caller's profile.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	return api.UpdateProfile(ctx, c.http, c.baseURL, req)
}

// FollowUser follows another user.
func (c *Client) FollowUser(ctx context.Context, userID string) (*FollowResponse, error) {
	return api.FollowUser(ctx, c.http, c.baseURL, userID)
}

// UnfollowUser removes a follow edge.
func (c *Client) UnfollowUser(ctx context.Context, userID string) (*FollowResponse, error) {
	return api.UnfollowUser(ctx, c.http, c.baseURL, userID)
}

// ListFollowers retrieves a user's followers.
func (c *Client) ListFollowers(ctx context.Context, userID string) (*List[User], error) {
	return api.ListFollowers(ctx, c.http, c.baseURL, userID)
}

// ListFollowing retrieves the users someone follows.
func (c *Client) ListFollowing(ctx context.Context, userID string) (*List[User], error) {
	return api.ListFollowing(ctx, c.http, c.baseURL, userID)
}

// --------------------------------------------------------------------
// Bookmarks and history - delegated to internal/api
// --------------------------------------------------------------------

// ListBookmarks retrieves saved items, filterable by item type via
// params.Category.
func (c *Client) ListBookmarks(ctx context.Context, params ListParams) (*List[Bookmark], error) {
	return api.ListBookmarks(ctx, c.http, c.baseURL, params)
}

// AddBookmark saves a post, pet, product, or service for later.
func (c *Client) AddBookmark(ctx context.Context, itemID string, itemType ItemType) (*Bookmark, error) {
	return api.AddBookmark(ctx, c.http, c.baseURL, itemID, itemType)
}

// RemoveBookmark unsaves an item.
func (c *Client) RemoveBookmark(ctx context.Context, itemID string) error {
	return api.RemoveBookmark(ctx, c.http, c.baseURL, itemID)
}

// ListHistory retrieves the caller's browsing history.
func (c *Client) ListHistory(ctx context.Context, params ListParams) (*List[HistoryItem], error) {
	return api.ListHistory(ctx, c.http, c.baseURL, params)
}

// RecordHistory appends a browsing event asynchronously, keyed by the
// authenticated user so entries stay ordered. Requires a session.
func (c *Client) RecordHistory(ctx context.Context, req RecordHistoryRequest) (*EnqueueAck, error) {
	u, err := c.session.Require()
	if err != nil {
		return nil, err
	}
	ack, err := api.RecordHistory(ctx, c.exec, c.http, c.baseURL, u.ID, req)
	if err != nil {
		if errors.Is(err, shardqueue.ErrQueueFull) {
			asyncFailedTotal.WithLabelValues(job.ShardLabel(u.ID)).Inc()
			return nil, ErrBackPressure
		}
		return nil, err
	}
	asyncEnqueuedTotal.WithLabelValues(job.ShardLabel(u.ID)).Inc()
	return ack, nil
}

// ClearHistory deletes the caller's entire browsing history.
func (c *Client) ClearHistory(ctx context.Context) error {
	return api.ClearHistory(ctx, c.http, c.baseURL)
}

// --------------------------------------------------------------------
// Points mall - delegated to internal/api
// --------------------------------------------------------------------

// GetPointsBalance retrieves the caller's points balance.
func (c *Client) GetPointsBalance(ctx context.Context) (*PointsBalance, error) {
	return api.GetPointsBalance(ctx, c.http, c.baseURL)
}

// ListPointsTransactions retrieves the earn/spend ledger.
func (c *Client) ListPointsTransactions(ctx context.Context, params ListParams) (*List[PointsTransaction], error) {
	return api.ListPointsTransactions(ctx, c.http, c.baseURL, params)
}

// ListRewards retrieves the redeemable rewards catalog.
func (c *Client) ListRewards(ctx context.Context, params ListParams) (*List[Reward], error) {
	return api.ListRewards(ctx, c.http, c.baseURL, params)
}

// RedeemReward exchanges points for a reward.
func (c *Client) RedeemReward(ctx context.Context, rewardID string) (*PointsTransaction, error) {
	return api.RedeemReward(ctx, c.http, c.baseURL, rewardID)
}

// --------------------------------------------------------------------
// Feedback - delegated to internal/api
// --------------------------------------------------------------------

// CreateFeedback submits a feedback ticket.
func (c *Client) CreateFeedback(ctx context.Context, req CreateFeedbackRequest) (*Feedback, error) {
	return api.CreateFeedback(ctx, c.http, c.baseURL, req)
}

// ListMyFeedback retrieves the caller's own tickets.
func (c *Client) ListMyFeedback(ctx context.Context) (*List[Feedback], error) {
	return api.ListMyFeedback(ctx, c.http, c.baseURL)
}

// ListAllFeedback retrieves every ticket; admin only.
func (c *Client) ListAllFeedback(ctx context.Context, params ListParams) (*List[Feedback], error) {
	return api.ListAllFeedback(ctx, c.http, c.baseURL, params)
}

// UpdateFeedback sets ticket status and response; admin only.
func (c *Client) UpdateFeedback(ctx context.Context, feedbackID string, req UpdateFeedbackRequest) (*Feedback, error) {
	return api.UpdateFeedback(ctx, c.http, c.baseURL, feedbackID, req)
}

// --------------------------------------------------------------------
// Admin and uploads - delegated to internal/api
// --------------------------------------------------------------------

// GetAdminStats retrieves the back-office dashboard counts; admin only.
func (c *Client) GetAdminStats(ctx context.Context) (*AdminStats, error) {
	return api.GetAdminStats(ctx, c.http, c.baseURL)
}

// ListAdminUsers retrieves all registered users; admin only.
func (c *Client) ListAdminUsers(ctx context.Context, params ListParams) (*List[User], error) {
	return api.ListAdminUsers(ctx, c.http, c.baseURL, params)
}

// UploadFile streams a file to the media endpoint and returns its
// server-assigned URL. Pass the uploaded URL through ResolveAssetURL
// before display.
func (c *Client) UploadFile(ctx context.Context, field, filename string, r io.Reader) (*UploadResponse, error) {
	return api.UploadFile(ctx, c.http, c.baseURL, field, filename, r)
}
