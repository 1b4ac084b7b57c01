package handlers

import (
	"time"

	"stockroom/internal/config"
	applog "stockroom/internal/log"
	"stockroom/internal/repos"
	"stockroom/internal/services"
	"stockroom/internal/wire"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Auth           *services.AuthService
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
	FeedHandler    *FeedHandler
	ProfileHandler *ProfileHandler
	InvoiceHandler *InvoiceHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)
	feedRepo := repos.NewFeedRepo(db)
	invRepo := repos.NewInvoiceRepo(db)
	refreshRepo := repos.NewRefreshTokenRepo(db)

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	authSvc := &services.AuthService{Users: userRepo, Tokens: tokens, Refresh: refreshRepo, Rotate: cfg.RotateRefresh}

	return &Deps{
		Auth:        authSvc,
		AuthHandler: &AuthHandler{Auth: authSvc},
		ProductHandler: &ProductHandler{
			Products:        services.NewProductService(prodRepo),
			Codec:           wire.NewProductCodec(cfg.AllowBackorder),
			OwnerScopedList: cfg.OwnerScopedList,
		},
		FeedHandler: &FeedHandler{
			Feed:            services.NewFeedService(feedRepo),
			Codec:           wire.NewFeedCodec(),
			OwnerScopedList: cfg.OwnerScopedList,
		},
		ProfileHandler: &ProfileHandler{
			Profiles: services.NewProfileService(userRepo),
			Codec:    wire.NewProfileCodec(),
		},
		InvoiceHandler: &InvoiceHandler{
			Invoices: services.NewInvoiceService(invRepo, prodRepo),
			Codec:    wire.NewInvoiceCodec(),
		},
	}
}

// Register wires the API routes. Token obtain is throttled; registration
// and token endpoints are the only routes without bearer auth.
func (d *Deps) Register(app *fiber.App) {
	api := app.Group("/api/v1")

	tokenLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.token.hit", nil)
			return detail(c, fiber.StatusTooManyRequests, "too many requests, retry soon")
		},
	})
	// Both token endpoints redeem credentials, so both share the throttle.
	auth := api.Group("/auth")
	auth.Post("/token", tokenLimiter, d.AuthHandler.ObtainToken)
	auth.Post("/token/refresh", tokenLimiter, d.AuthHandler.RefreshToken)

	api.Post("/profiles", d.ProfileHandler.Register)

	requireUser := RequireUser(d.Auth)

	profiles := api.Group("/profiles", requireUser)
	profiles.Get("/", d.ProfileHandler.List)
	profiles.Get("/:id", d.ProfileHandler.Retrieve)
	profiles.Put("/:id", d.ProfileHandler.Update)
	profiles.Patch("/:id", d.ProfileHandler.Update)
	profiles.Delete("/:id", d.ProfileHandler.Delete)

	products := api.Group("/products", requireUser)
	products.Get("/", d.ProductHandler.List)
	products.Post("/", d.ProductHandler.Create)
	products.Get("/:id", d.ProductHandler.Retrieve)
	products.Put("/:id", d.ProductHandler.Update)
	products.Patch("/:id", d.ProductHandler.Update)
	products.Delete("/:id", d.ProductHandler.Delete)

	invoices := api.Group("/invoices", requireUser)
	invoices.Get("/", d.InvoiceHandler.List)
	invoices.Post("/", d.InvoiceHandler.Create)
	invoices.Get("/:id", d.InvoiceHandler.Retrieve)
	invoices.Delete("/:id", d.InvoiceHandler.Delete)

	feed := api.Group("/feed", requireUser)
	feed.Get("/", d.FeedHandler.List)
	feed.Post("/", d.FeedHandler.Create)
	feed.Get("/:id", d.FeedHandler.Retrieve)
	feed.Put("/:id", d.FeedHandler.Update)
	feed.Patch("/:id", d.FeedHandler.Update)
	feed.Delete("/:id", d.FeedHandler.Delete)
}
