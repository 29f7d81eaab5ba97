// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, idempotency, rate limiting and admin auth.
//
// Route layout (under cfg.APIBasePath):
//   - public content lists (gzip, cacheable)
//   - public gated forms (idempotency, stricter rate limit)
//   - /admin/login, then every other /admin route behind a bearer token
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/standupsite/promo-backend/docs"
	"github.com/standupsite/promo-backend/internal/config"
	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/http/handlers"
	"github.com/standupsite/promo-backend/internal/http/middleware"
	"github.com/standupsite/promo-backend/internal/repo"
	"github.com/standupsite/promo-backend/internal/services"
)

// maxBodyBytes caps request bodies. The largest legitimate payload is a
// contact message of 2000 characters.
const maxBodyBytes = 64 << 10

// submissionRepoShim adapts the repository free functions to the
// services.SubmissionRepo interface.
type submissionRepoShim struct{}

func (submissionRepoShim) CreateChallenge(ctx context.Context, db *gorm.DB, ch *domain.Challenge) error {
	return repo.CreateChallenge(ctx, db, ch)
}

func (submissionRepoShim) GetOpenChallenge(ctx context.Context, db *gorm.DB, id, form string, now time.Time) (*domain.Challenge, error) {
	return repo.GetOpenChallenge(ctx, db, id, form, now)
}

func (submissionRepoShim) ClaimChallenge(ctx context.Context, db *gorm.DB, id string, now time.Time) error {
	return repo.ClaimChallenge(ctx, db, id, now)
}

func (submissionRepoShim) CreateSubscriber(ctx context.Context, db *gorm.DB, s *domain.Subscriber) error {
	return repo.CreateSubscriber(ctx, db, s)
}

func (submissionRepoShim) CreateReview(ctx context.Context, db *gorm.DB, r *domain.Review) error {
	return repo.CreateReview(ctx, db, r)
}

func (submissionRepoShim) CreateContact(ctx context.Context, db *gorm.DB, m *domain.Contact) error {
	return repo.CreateContact(ctx, db, m)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: request-scoped logger + access log
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. CORS and security headers
//  8. General rate limiter (per admin/IP)
//
// The public form routes add the idempotency validator and then the
// stricter "public" limiter, so a replay skips the latter.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(limitBody(maxBodyBytes))
	r.Use(middleware.Metrics())
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
	}))
	r.Use(middleware.NewRateLimiter("general", cfg.RateRPS, cfg.RateBurst, middleware.KeyByAdminOrIP()).Handler())

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Ops
	r.GET("/health", health(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db
	subSvc := services.NewSubmissionService(db, submissionRepoShim{})
	subSvc.ChallengeTTL = cfg.Gate.ChallengeTTL
	subSvc.StoreTimeout = cfg.Gate.StoreTimeout
	idemSvc := services.NewIdempotencyService(db, cfg.IdempotencyTTL)
	authSvc := services.NewAuthService(db, cfg.Admin.Email, cfg.Admin.PasswordHash, cfg.Admin.SessionTTL)

	h := handlers.New(handlers.Services{
		Submissions: subSvc,
		Idempotency: idemSvc,
		Reviews:     services.NewReviewService(db),
		Subscribers: services.NewSubscriberService(db),
		Contacts:    services.NewContactService(db),
		Content:     services.NewContentService(db),
		Auth:        authSvc,
	})

	api := groupWithPrefix(r, cfg.APIBasePath)

	// Public content
	lists := api.Group("", gzip.Gzip(gzip.DefaultCompression))
	{
		lists.GET("/reviews", h.ListReviews)
		lists.GET("/gallery", h.ListGallery)
		lists.GET("/videos", h.ListVideos)
		lists.GET("/social", h.ListSocial)
		lists.GET("/shows", h.ListShows)
	}

	// Gated public forms
	api.GET("/challenge", h.GetChallenge)
	forms := api.Group("",
		middleware.IdempotencyValidator(middleware.IdempotencyOptions{MaxLen: 200}, idemSvc.Seen),
		middleware.NewRateLimiter("public", cfg.PublicRateRPS, cfg.PublicRateBurst, middleware.KeyByAdminOrIP()).Handler(),
	)
	{
		forms.POST("/subscribe", h.Subscribe)
		forms.POST("/reviews", h.SubmitReview)
		forms.POST("/contact", h.SubmitContact)
	}

	// Admin
	api.POST("/admin/login", middleware.NoStore(), h.Login)
	admin := api.Group("/admin",
		middleware.RequireAdmin(authSvc.Authenticate),
		middleware.NoStore(),
		middleware.AdminAudit(middleware.AuditOptions{MaskHeaders: []string{middleware.HeaderIdempotencyKey}}),
	)
	{
		admin.POST("/logout", h.Logout)
		admin.GET("/dashboard", h.Dashboard)

		admin.GET("/reviews", h.AdminListReviews)
		admin.POST("/reviews", h.AdminCreateReview)
		admin.PUT("/reviews/:id/status", h.AdminSetReviewStatus)
		admin.DELETE("/reviews/:id", h.AdminDeleteReview)

		admin.GET("/subscribers", h.AdminListSubscribers)
		admin.GET("/subscribers/export", h.AdminExportSubscribers)
		admin.DELETE("/subscribers/:id", h.AdminDeleteSubscriber)

		admin.GET("/contacts", h.AdminListContacts)
		admin.PUT("/contacts/:id/read", h.AdminMarkContactRead)
		admin.DELETE("/contacts/:id", h.AdminDeleteContact)

		admin.GET("/gallery", h.AdminListGallery)
		admin.POST("/gallery", h.AdminCreateGallery)
		admin.PUT("/gallery/:id", h.AdminUpdateGallery)
		admin.DELETE("/gallery/:id", h.AdminDeleteGallery)

		admin.GET("/videos", h.AdminListVideos)
		admin.POST("/videos", h.AdminCreateVideo)
		admin.PUT("/videos/:id", h.AdminUpdateVideo)
		admin.DELETE("/videos/:id", h.AdminDeleteVideo)

		admin.GET("/social", h.AdminListSocial)
		admin.POST("/social", h.AdminCreateSocial)
		admin.PUT("/social/:id", h.AdminUpdateSocial)
		admin.DELETE("/social/:id", h.AdminDeleteSocial)

		admin.GET("/shows", h.AdminListShows)
		admin.POST("/shows", h.AdminCreateShow)
		admin.PUT("/shows/:id", h.AdminUpdateShow)
		admin.PUT("/shows/:id/active", h.AdminSetShowActive)
		admin.DELETE("/shows/:id", h.AdminDeleteShow)
	}
}

// corsMiddleware allows every origin when none are configured (without
// credentials), otherwise only the listed ones.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey},
		ExposeHeaders: middleware.DefaultExposeHeaders,
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cors.New(cc)
}

// health reports liveness plus a database ping.
func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			middleware.LoggerFrom(c).Error().Err(err).Msg("health: database unreachable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	}
}

// limitBody caps the request body at maxBytes using http.MaxBytesReader.
// Downstream reads past the cap fail, which binding reports as a 400.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
