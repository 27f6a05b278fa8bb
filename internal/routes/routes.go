package routes

import (
	"time"

	"github.com/bingeboard/bingeboard/internal/config"
	"github.com/bingeboard/bingeboard/internal/handlers"
	"github.com/bingeboard/bingeboard/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Watchlist *handlers.WatchlistHandler
	Watched   *handlers.WatchedHandler
	Review    *handlers.ReviewHandler
	Friend    *handlers.FriendHandler
	Activity  *handlers.ActivityHandler
	Show      *handlers.ShowHandler
	Health    *handlers.HealthHandler
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health
	api.Get("/health", h.Health.Check)

	// Auth — public, with a stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), h.Auth.Logout)

	protected := middleware.JWTProtected(cfg)

	// Show metadata gateway proxy (public, cached)
	api.Get("/shows/search", h.Show.Search)
	api.Get("/shows/trending/:window", h.Show.Trending)
	api.Get("/shows/:id/reviews", h.Review.ByShow)
	api.Get("/shows/:id/season/:n", h.Show.Season)
	api.Get("/shows/:id", h.Show.Detail)

	// Profiles
	api.Get("/getUserInfo", protected, h.User.GetUserInfo)
	api.Put("/users/profile", protected, h.User.UpdateProfile)

	// Watched episodes (registered before the :username wildcard)
	api.Post("/users/mark-watched", protected, h.Watched.MarkWatched)
	api.Get("/users/recently-watched", protected, h.Watched.RecentlyWatched)
	api.Get("/users/watched/:showId", protected, h.Watched.WatchedForShow)

	// Public profile routes
	api.Get("/users/:username/reviews", h.Review.ByUsername)
	api.Get("/users/:username", h.User.GetPublicProfile)

	// Watchlist
	api.Get("/watchlist", protected, h.Watchlist.Get)
	api.Post("/watchlist/add", protected, h.Watchlist.Add)
	api.Post("/watchlist/remove", protected, h.Watchlist.Remove)

	// Reviews
	api.Post("/reviews", protected, h.Review.Create)
	api.Get("/reviews/most-liked", h.Review.MostLiked)
	api.Put("/reviews/:id", protected, h.Review.Vote)
	api.Get("/user/reviews", protected, h.Review.MyReviews)

	// Friends
	api.Get("/friends/list/:username", h.Friend.List)
	api.Get("/friends/requests", protected, h.Friend.Pending)
	api.Post("/friends/request/:id", protected, h.Friend.Request)
	api.Post("/friends/accept/:id", protected, h.Friend.Accept)
	api.Post("/friends/decline/:id", protected, h.Friend.Decline)

	// Activity
	api.Get("/activity/feed", protected, h.Activity.Feed)
	api.Get("/activity", protected, h.Activity.Recent)
}
