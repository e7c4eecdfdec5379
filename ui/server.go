package ui

import (
	"context"
	"net/http"
	"time"

	"econhub/app"
	"econhub/internal"
	"econhub/ui/middleware"

	"github.com/gin-gonic/gin"
)

// Server is the JSON API server: health check, worldview and forecast
// endpoints.
type Server struct {
	router     *gin.Engine
	worldviews *app.WorldviewService
	forecasts  *app.ForecastService
	logger     *internal.Logger
}

// NewServer creates an API server. ginMode is one of gin's debug, release
// or test modes.
func NewServer(ginMode string, worldviews *app.WorldviewService, forecasts *app.ForecastService, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	gin.SetMode(ginMode)

	s := &Server{
		router:     gin.New(),
		worldviews: worldviews,
		forecasts:  forecasts,
		logger:     logger,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.AccessLog(s.logger))
	s.router.Use(gin.Recovery())
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/worldview/options", s.handleWorldviewOptions)
		api.GET("/worldview", s.handleWorldviewQuery)
		api.POST("/worldview", s.handleWorldviewBody)
		api.POST("/forecast", s.handleForecast)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found", "code": "NOT_FOUND"})
	})
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	return Serve(ctx, "api", addr, s.router, shutdownTimeout, s.logger)
}
