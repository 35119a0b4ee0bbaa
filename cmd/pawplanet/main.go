package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pawplanet/pawplanet-go/client"
	"github.com/pawplanet/pawplanet-go/client/store"
	"github.com/pawplanet/pawplanet-go/internal/config"
)

var serviceURL string
var debug bool

const defaultListLimit = 20

func dbg(v interface{}) {
	if !debug {
		return
	}
	log.Debug().Interface("data", v).Msg("debug output")
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pawplanet",
		Short: "PawPlanet CLI for the pet social, shop, and booking platform",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			cfg.Init()

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("PAWPLANET_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			}
		},
	}

	cfg := config.Load()
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", cfg.ServiceURL, "Base URL of the PawPlanet backend")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newFeedCmd())
	rootCmd.AddCommand(newCreatePostCmd())
	rootCmd.AddCommand(newLikePostCmd())
	rootCmd.AddCommand(newListPetsCmd())
	rootCmd.AddCommand(newCreatePetCmd())
	rootCmd.AddCommand(newFeedPlanCmd())
	rootCmd.AddCommand(newListProductsCmd())
	rootCmd.AddCommand(newListServicesCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newListBookingsCmd())
	rootCmd.AddCommand(newCreateBookingCmd())
	rootCmd.AddCommand(newCancelBookingCmd())
	rootCmd.AddCommand(newListOrdersCmd())
	rootCmd.AddCommand(newPointsCmd())
	rootCmd.AddCommand(newRedeemCmd())
	rootCmd.AddCommand(newAdminStatsCmd())

	return rootCmd
}

// newClient builds a client with the persisted token restored, so commands
// run authenticated when a login token is on disk.
func newClient(ctx context.Context) (*client.Client, error) {
	cfg := config.Load()
	ts, err := client.NewFileTokenStore(cfg.TokenPath)
	if err != nil {
		return nil, err
	}
	c := client.New(serviceURL, client.WithTokenStore(ts), client.WithAssetBaseURL(cfg.AssetBaseURL))
	if _, err := c.Session().Restore(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("email", email).Str("service_url", serviceURL).Msg("logging in")

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			cfg := config.Load()
			ts, err := client.NewFileTokenStore(cfg.TokenPath)
			if err != nil {
				return err
			}
			c := client.New(serviceURL, client.WithTokenStore(ts))
			defer func() { _ = c.Close() }()

			start := time.Now()
			user, err := c.Session().Login(ctx, client.Credentials{Email: email, Password: password})
			if err != nil {
				log.Error().Err(err).Str("email", email).Dur("elapsed", time.Since(start)).Msg("login failed")
				return err
			}

			dbg(user)
			fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if err := c.Session().Logout(ctx); err != nil {
				return err
			}
			_ = c.Flush(ctx, "session")
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			user, err := c.Session().Require()
			if err != nil {
				return fmt.Errorf("not logged in; run `pawplanet login` first")
			}
			dbg(user)
			fmt.Printf("%s (%s) role=%s points=%d\n", user.Username, user.Email, user.Role, user.Points)
			return nil
		},
	}
}

func newFeedCmd() *cobra.Command {
	var category, search string
	var limit, page int

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "List feed posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			start := time.Now()
			list, err := c.ListPosts(ctx, client.ListParams{Category: category, Search: search, Limit: limit, Page: page})
			if err != nil {
				log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("list posts failed")
				return err
			}

			dbg(list)
			for _, p := range list.Data {
				fmt.Printf("%s  [%s]  %s  likes=%d views=%d\n", p.ID, p.Category, p.Author.Name, p.Likes, p.Views)
			}
			fmt.Printf("%d post(s)\n", list.Count)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (daily, funny, medical, food, training, travel, other)")
	cmd.Flags().StringVar(&search, "search", "", "Full-text search")
	cmd.Flags().IntVar(&limit, "limit", defaultListLimit, "Page size")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")

	return cmd
}

func newCreatePostCmd() *cobra.Command {
	var content, category string

	cmd := &cobra.Command{
		Use:   "create-post",
		Short: "Publish a feed post",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			post, err := c.CreatePost(ctx, client.CreatePostRequest{
				Content:  content,
				Category: client.PostCategory(category),
			})
			if err != nil {
				log.Error().Err(err).Str("category", category).Msg("create post failed")
				return err
			}

			dbg(post)
			fmt.Printf("Post created: %s\n", post.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Post text (required)")
	cmd.Flags().StringVar(&category, "category", "daily", "Post category")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newLikePostCmd() *cobra.Command {
	var postID string

	cmd := &cobra.Command{
		Use:   "like-post",
		Short: "Toggle a like on a post",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			post, err := c.GetPost(ctx, postID)
			if err != nil {
				return err
			}

			// Same code path the app uses: flip optimistically, then
			// reconcile with the backend's answer.
			cache := store.New[client.Post]()
			cache.Put(post.ID, *post)
			cache.Apply(post.ID, store.TogglePostLike)

			resp, err := c.LikePost(ctx, postID)
			if err != nil {
				cache.Apply(post.ID, store.TogglePostLike) // roll back
				return err
			}
			cache.Apply(post.ID, store.SetLikeState(resp))

			dbg(resp)
			final, _ := cache.Get(post.ID)
			if final.IsLiked {
				cmd.Printf("Liked. The post now has %d like(s)\n", final.Likes)
			} else {
				cmd.Printf("Unliked. The post now has %d like(s)\n", final.Likes)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&postID, "post-id", "", "Post ID (required)")
	_ = cmd.MarkFlagRequired("post-id")

	return cmd
}

func newListPetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pets",
		Short: "List your pets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			list, err := c.ListPets(ctx)
			if err != nil {
				return err
			}
			dbg(list)
			for _, p := range list.Data {
				fmt.Printf("%s  %s (%s %s)  %.1fkg\n", p.ID, p.Name, p.Breed, p.Species, p.Appearance.Weight)
			}
			fmt.Printf("%d pet(s)\n", list.Count)
			return nil
		},
	}
}

func newCreatePetCmd() *cobra.Command {
	var name, species, breed string
	var weight float64

	cmd := &cobra.Command{
		Use:   "create-pet",
		Short: "Register a pet profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			pet, err := c.CreatePet(ctx, client.UpsertPetRequest{
				Name:       name,
				Species:    client.Species(species),
				Breed:      breed,
				Appearance: client.Appearance{Weight: weight},
			})
			if err != nil {
				log.Error().Err(err).Str("name", name).Str("species", species).Msg("create pet failed")
				return err
			}

			dbg(pet)
			fmt.Printf("Pet created: %s - %s\n", pet.ID, pet.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Pet name (required)")
	cmd.Flags().StringVar(&species, "species", "", "Species: cat, dog, rabbit, hamster, bird, fish, other (required)")
	cmd.Flags().StringVar(&breed, "breed", "", "Breed (optional)")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kilograms (optional)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("species")

	return cmd
}

func newFeedPlanCmd() *cobra.Command {
	var weight float64
	var activity string

	cmd := &cobra.Command{
		Use:   "feed-plan",
		Short: "Compute a daily feeding recommendation",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := client.StaticAdvisor{}.FeedingPlan(weight, client.ActivityLevel(activity))
			if err != nil {
				return err
			}
			dbg(plan)
			fmt.Printf("Daily target: %d kcal\n", plan.DailyCalories)
			for _, m := range plan.Meals {
				fmt.Printf("  %-9s %3d kcal  (%d g)\n", m.Name, m.Calories, m.Grams)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 0, "Pet weight in kilograms (required)")
	cmd.Flags().StringVar(&activity, "activity", "low", "Activity level: high, medium, low")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

func newListProductsCmd() *cobra.Command {
	var category, search, sort string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List shop products",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			list, err := c.ListProducts(ctx, client.ListParams{Category: category, Search: search, Sort: sort})
			if err != nil {
				return err
			}
			dbg(list)
			for _, p := range list.Data {
				fmt.Printf("%s  %-30s  ¥%.2f  stock=%d  rating=%.1f\n", p.ID, p.Name, p.Pricing.CurrentPrice, p.Inventory.Stock, p.Rating.Average)
			}
			fmt.Printf("%d product(s)\n", list.Count)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&search, "search", "", "Full-text search")
	cmd.Flags().StringVar(&sort, "sort", "", "Sort key (e.g. price, rating)")

	return cmd
}

func newListServicesCmd() *cobra.Command {
	var category, city string

	cmd := &cobra.Command{
		Use:   "services",
		Short: "List local pet services",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			list, err := c.ListServices(ctx, client.ListParams{Category: category, City: city})
			if err != nil {
				return err
			}
			dbg(list)
			for _, s := range list.Data {
				fmt.Printf("%s  %-24s  [%s]  %s  rating=%.1f\n", s.ID, s.Name, s.Category, s.Location.City, s.Rating.Average)
			}
			fmt.Printf("%d service(s)\n", list.Count)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter: hospital, grooming, boarding, training, photography, daycare")
	cmd.Flags().StringVar(&city, "city", "", "Filter by city")

	return cmd
}

func newSearchCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search posts, products, and services at once",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			// The guard cancels a superseded query and rejects its late
			// answer, the discipline interactive search-as-you-type needs.
			var guard store.Guard
			defer guard.Stop()
			qctx, token := guard.Begin(ctx)

			res, err := c.SearchAll(qctx, query)
			if err != nil {
				return err
			}
			if !guard.Accept(token) {
				return nil
			}
			dbg(res)

			if res.Posts.Err != nil {
				fmt.Printf("posts: error: %v\n", res.Posts.Err)
			} else {
				fmt.Printf("posts: %d hit(s)\n", len(res.Posts.Items))
			}
			if res.Products.Err != nil {
				fmt.Printf("products: error: %v\n", res.Products.Err)
			} else {
				fmt.Printf("products: %d hit(s)\n", len(res.Products.Items))
			}
			if res.Services.Err != nil {
				fmt.Printf("services: error: %v\n", res.Services.Err)
			} else {
				fmt.Printf("services: %d hit(s)\n", len(res.Services.Items))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search text (required)")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}

func newListBookingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List your service bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			list, err := c.ListBookings(ctx)
			if err != nil {
				return err
			}
			dbg(list)
			for _, b := range list.Data {
				fmt.Printf("%s  %s %s  %s (%s)  [%s]\n", b.ID, b.Date, b.Time, b.PetName, b.PetType, b.Status)
			}
			fmt.Printf("%d booking(s)\n", list.Count)
			return nil
		},
	}
}

func newCreateBookingCmd() *cobra.Command {
	var serviceID, date, timeSlot, petName, petType, notes string

	cmd := &cobra.Command{
		Use:   "create-booking",
		Short: "Reserve a service slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			booking, err := c.CreateBooking(ctx, client.CreateBookingRequest{
				ServiceID: serviceID,
				Date:      date,
				Time:      timeSlot,
				PetName:   petName,
				PetType:   client.Species(petType),
				Notes:     notes,
			})
			if err != nil {
				log.Error().Err(err).Str("service_id", serviceID).Msg("create booking failed")
				return err
			}

			dbg(booking)
			fmt.Printf("Booking created: %s (%s)\n", booking.ID, booking.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&serviceID, "service-id", "", "Service ID (required)")
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&timeSlot, "time", "", "Time HH:MM (required)")
	cmd.Flags().StringVar(&petName, "pet-name", "", "Pet name (required)")
	cmd.Flags().StringVar(&petType, "pet-type", "", "Pet species (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes (optional)")
	_ = cmd.MarkFlagRequired("service-id")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("pet-name")
	_ = cmd.MarkFlagRequired("pet-type")

	return cmd
}

func newCancelBookingCmd() *cobra.Command {
	var bookingID string

	cmd := &cobra.Command{
		Use:   "cancel-booking",
		Short: "Cancel a booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			booking, err := c.CancelBooking(ctx, bookingID)
			if err != nil {
				return err
			}
			dbg(booking)
			fmt.Printf("Booking %s is now %s\n", booking.ID, booking.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&bookingID, "booking-id", "", "Booking ID (required)")
	_ = cmd.MarkFlagRequired("booking-id")

	return cmd
}

func newListOrdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List your shop orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			list, err := c.ListOrders(ctx)
			if err != nil {
				return err
			}
			dbg(list)
			for _, o := range list.Data {
				fmt.Printf("%s  ¥%.2f  %d line(s)  [%s]\n", o.ID, o.TotalAmount, len(o.Items), o.Status)
			}
			fmt.Printf("%d order(s)\n", list.Count)
			return nil
		},
	}
}

func newPointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "points",
		Short: "Show points balance and recent transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			bal, err := c.GetPointsBalance(ctx)
			if err != nil {
				return err
			}
			txs, err := c.ListPointsTransactions(ctx, client.ListParams{Limit: defaultListLimit})
			if err != nil {
				return err
			}
			dbg(txs)
			fmt.Printf("Balance: %d point(s)\n", bal.Points)
			for _, tx := range txs.Data {
				fmt.Printf("  %+d  %s\n", tx.Amount, tx.Reason)
			}
			return nil
		},
	}
}

func newRedeemCmd() *cobra.Command {
	var rewardID string

	cmd := &cobra.Command{
		Use:   "redeem",
		Short: "Redeem a points-mall reward",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			tx, err := c.RedeemReward(ctx, rewardID)
			if err != nil {
				log.Error().Err(err).Str("reward_id", rewardID).Msg("redeem failed")
				return err
			}
			dbg(tx)
			fmt.Printf("Redeemed: %d point(s) spent\n", -tx.Amount)
			return nil
		},
	}

	cmd.Flags().StringVar(&rewardID, "reward-id", "", "Reward ID (required)")
	_ = cmd.MarkFlagRequired("reward-id")

	return cmd
}

func newAdminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "admin-stats",
		Short: "Show platform-wide counts (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			stats, err := c.GetAdminStats(ctx)
			if err != nil {
				return err
			}
			dbg(stats)
			fmt.Printf("users=%d posts=%d orders=%d bookings=%d feedback=%d\n",
				stats.Users, stats.Posts, stats.Orders, stats.Bookings, stats.Feedback)
			return nil
		},
	}
}
