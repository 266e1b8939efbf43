package v1

import (
	"net/http"
	"time"

	"freelancima-backend/config"
	"freelancima-backend/internal/delivery/http/middleware"
	"freelancima-backend/internal/delivery/http/response"
	"freelancima-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	BrowseUC domain.BrowseUsecase
	AuthUC   domain.AuthUsecase
	StatsUC  domain.StatsUsecase
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes
	NewFreelancerHandler(v1, deps.BrowseUC)
	NewStatsHandler(v1, deps.StatsUC)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))

	authLimiter := middleware.RateLimit(middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, window))
	NewAuthHandler(v1, protected, deps.AuthUC, authLimiter)

	return r
}
