package v1

import (
	"net/http"
	"time"

	"red-remodels-backend/config"
	"red-remodels-backend/internal/delivery/http/middleware"
	"red-remodels-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// Health Check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":        true,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Contact endpoint, rate limited ahead of the rest of the pipeline
	limiter := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(
		deps.Config.RateLimitMax,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))
	NewContactHandler(r, deps.Config.ContactRoute, limiter, deps.ContactUC)

	// Everything else is the static site
	r.NoRoute(StaticFallback(deps.Config))

	return r
}
