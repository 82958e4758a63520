package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "transcript-control/docs" // Generated swagger docs
	"transcript-control/internal/api/middleware"
	v1routes "transcript-control/internal/api/v1/routes"
	"transcript-control/internal/app/metrics"
	"transcript-control/internal/config"
)

const healthPath = "/api/health"

// Server represents the API server
type Server struct {
	config     config.ServerConfig
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
	listener   net.Listener
}

// NewServer creates a new API server
func NewServer(
	cfg config.ServerConfig,
	container *v1routes.ServiceContainer,
	registry *metrics.Registry,
	logger *zap.Logger,
) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	logger = logger.Named("http")

	router := gin.New()

	cors := middleware.DefaultCORSConfig()
	if len(cfg.AllowOrigins) > 0 {
		cors.AllowOrigins = cfg.AllowOrigins
	}

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger, healthPath))
	router.Use(middleware.Metrics(registry))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(cors))

	api := router.Group("/api")
	v1routes.RegisterRoutes(api, container)

	if registry != nil {
		router.GET("/metrics", gin.WrapH(registry.Handler()))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API documentation info endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":       "Transcript Control API",
			"version":       "1.0",
			"documentation": "/swagger/index.html",
			"endpoints": gin.H{
				"health":         healthPath,
				"transcriptions": "/api/transcriptions",
				"calendar":       "/api/calendar",
				"workflow":       "/api/workflow/status",
				"metrics":        "/metrics",
			},
		})
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		config:     cfg,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start binds the listen address and serves in the background. Bind errors
// are returned; errors after that are sent on the returned channel.
func (s *Server) Start() (<-chan error, error) {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, err
	}
	s.listener = ln

	s.logger.Info("API server started",
		zap.String("address", ln.Addr().String()),
		zap.String("environment", s.config.Environment),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server stopped", zap.Error(err))
			errCh <- err
		}
		close(errCh)
	}()
	return errCh, nil
}

// Addr is the bound address, valid after Start
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.httpServer.Addr
	}
	return s.listener.Addr().String()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
