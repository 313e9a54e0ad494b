// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// compression, CORS, security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/talentlink/go-match-backend/internal/apierr"
	"github.com/talentlink/go-match-backend/internal/config"
	"github.com/talentlink/go-match-backend/internal/http/handlers"
	"github.com/talentlink/go-match-backend/internal/http/middleware"
	"github.com/talentlink/go-match-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, health and metrics endpoints, and then mounts
// the versioned public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Access logging (redacting variant when header logging is on)
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Rate limiter (per user/IP)
//  9. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logging. The redacting variant additionally logs
	// scrubbed request headers; the default logger never sees header values.
	if cfg.LogHeaders {
		r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))
	}
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress JSON responses
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps
		// tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in
		// addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, apierr.New(apierr.CodeNotFound, "route not found"), "router.noroute")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, apierr.New(apierr.CodeMethodNotAllowed, "method not allowed"), "router.nomethod")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← db/config
	userSvc := &services.UserService{
		DB:        db,
		JWTSecret: []byte(cfg.Auth.JWTSecret),
		TokenTTL:  cfg.Auth.TokenTTL,
	}
	courseSvc := &services.CourseService{DB: db}
	jobSvc := &services.JobService{DB: db}
	docSvc := &services.DocumentService{DB: db}
	expSvc := &services.ExperienceService{DB: db}
	h := handlers.New(userSvc, courseSvc, jobSvc, docSvc, expSvc)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Auth
		api.POST("/auth/register", handlers.Wrap(h.Register, "auth.register"))
		api.POST("/auth/login", handlers.Wrap(h.Login, "auth.login"))
		api.GET("/auth/me", handlers.Wrap(h.Me, "auth.me"))

		// Courses
		api.GET("/courses", handlers.Wrap(h.ListCourses, "courses.list"))
		api.GET("/courses/:id", handlers.Wrap(h.GetCourse, "courses.get"))
		api.POST("/courses", handlers.Wrap(h.CreateCourse, "courses.create"))
		api.PUT("/courses/:id", handlers.Wrap(h.UpdateCourse, "courses.update"))
		api.DELETE("/courses/:id", handlers.Wrap(h.DeleteCourse, "courses.delete"))

		// Jobs and applications
		api.GET("/jobs", handlers.Wrap(h.ListJobs, "jobs.list"))
		api.GET("/jobs/:id", handlers.Wrap(h.GetJob, "jobs.get"))
		api.POST("/jobs", handlers.Wrap(h.CreateJob, "jobs.create"))
		api.PUT("/jobs/:id", handlers.Wrap(h.UpdateJob, "jobs.update"))
		api.DELETE("/jobs/:id", handlers.Wrap(h.DeleteJob, "jobs.delete"))
		api.POST("/jobs/:id/applications", handlers.Wrap(h.ApplyToJob, "jobs.apply"))

		// Documents
		api.GET("/documents", handlers.Wrap(h.ListDocuments, "documents.list"))
		api.POST("/documents", handlers.Wrap(h.CreateDocument, "documents.create"))
		api.DELETE("/documents/:id", handlers.Wrap(h.DeleteDocument, "documents.delete"))

		// Experiences
		api.GET("/experiences", handlers.Wrap(h.ListExperiences, "experiences.list"))
		api.POST("/experiences", handlers.Wrap(h.CreateExperience, "experiences.create"))
		api.PUT("/experiences/:id", handlers.Wrap(h.UpdateExperience, "experiences.update"))
		api.DELETE("/experiences/:id", handlers.Wrap(h.DeleteExperience, "experiences.delete"))
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the
// cap will cause downstream body reads to error.
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
