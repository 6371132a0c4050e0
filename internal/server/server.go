package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mealsmith/recipe-service/config"
	"github.com/mealsmith/recipe-service/internal/api"
	"github.com/mealsmith/recipe-service/internal/database"
	"github.com/mealsmith/recipe-service/internal/llm"
	"github.com/mealsmith/recipe-service/internal/middleware"
	"github.com/mealsmith/recipe-service/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// NewServer wires services, handlers and middleware into a Gin engine. The
// Redis client may be nil, which disables rate limiting on the generation
// route.
func NewServer(cfg *config.Config, db *gorm.DB, llmClient llm.Client, redisClient *redis.Client) *Server {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	preferenceService := service.NewPreferenceService(db)
	recipeService := service.NewRecipeService(db, llmClient)

	var limiter *middleware.RateLimiter
	if redisClient != nil {
		limiter = middleware.NewGenerationRateLimiter(redisClient)
	}

	api.NewPreferenceHandler(preferenceService).RegisterRoutes(router)
	api.NewRecipeHandler(recipeService).RegisterRoutes(router, limiter.RateLimitMiddleware())
	api.NewAdminHandler(preferenceService, cfg.CleanDatabasePassword).RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Router exposes the underlying engine, primarily for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server, draining in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.http.Shutdown(ctx)
}
