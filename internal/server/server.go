package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/johndn/portfolio/internal/api/dto/common"
	"github.com/johndn/portfolio/internal/api/handlers"
	"github.com/johndn/portfolio/internal/api/middleware"
	"github.com/johndn/portfolio/internal/config"
	"github.com/johndn/portfolio/internal/content"
	"github.com/johndn/portfolio/internal/db"
	"github.com/johndn/portfolio/internal/logging"
	"github.com/johndn/portfolio/internal/repository"
	"github.com/johndn/portfolio/internal/server/routes"
	"github.com/johndn/portfolio/internal/service"
	"github.com/johndn/portfolio/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// shutdownTimeout bounds how long in-flight requests get to finish
const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	router   *gin.Engine
	cfg      *config.Config
	db       *db.Database
	store    *content.Store
	notifier service.Notifier
	contact  *service.ContactService
	logger   *logging.Logger
}

// Options carries the optional collaborators of a Server
type Options struct {
	// Notifier is told about new contact messages; nil disables notifications
	Notifier service.Notifier
	// Authorizer guards admin routes; nil uses the ADMIN_TOKEN bearer check
	Authorizer middleware.AdminAuthorizer
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, database *db.Database, store *content.Store) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Request logging goes through our own logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.HandleMethodNotAllowed = true

	return &Server{
		router: router,
		cfg:    cfg,
		db:     database,
		store:  store,
		logger: logging.GetGlobalLogger(),
	}
}

// Init wires repositories, services, handlers and routes
func (s *Server) Init(opts Options) error {
	if s.db == nil {
		return errors.New("server requires a database")
	}
	if s.store == nil {
		return errors.New("server requires a content store")
	}

	contactRepo := repository.NewContactRepository(s.db)
	s.notifier = opts.Notifier
	contactService := service.NewContactService(contactRepo, s.notifier)
	s.contact = contactService

	authorizer := opts.Authorizer
	if authorizer == nil {
		authorizer = middleware.NewTokenAuthorizer(s.cfg.AdminToken)
	}

	h := &routes.Handlers{
		Health:  handlers.NewHealthHandler(s.db),
		Contact: handlers.NewContactHandler(contactService),
		Content: handlers.NewContentHandler(s.store),
		Meta:    handlers.NewMetaHandler(s.cfg.Site),
		SEO:     handlers.NewSEOHandler(s.cfg.Site, s.store),
		Admin:   handlers.NewAdminHandler(contactService, s.store, s.cfg.Site),
	}

	m := &routes.Middleware{
		Admin: middleware.NewAdminMiddleware(authorizer),
		ContactRate: middleware.NewRateLimiter(middleware.RateLimitConfig{
			RPS:   s.cfg.ContactRateRPS,
			Burst: s.cfg.ContactRateBurst,
		}),
	}

	routes.SetupGlobalMiddleware(s.router, s.logger, routes.GlobalOptions{
		CORS: middleware.CORSConfig{
			AllowedOrigins: s.cfg.AllowedOrigins,
			Development:    !s.cfg.IsProduction(),
		},
		Production: s.cfg.IsProduction(),
		Extra:      []gin.HandlerFunc{otelgin.Middleware(telemetry.ServiceName)},
	})

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.ErrMsgNotFound))
	})
	s.router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, common.NewErrorResponse(common.ErrMsgMethodNotAllowed))
	})

	routes.Setup(s.router, h, m)
	return nil
}

// WaitNotifications blocks until contact notifications still in flight are sent
func (s *Server) WaitNotifications() {
	if s.contact != nil {
		s.contact.Wait()
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return routes.TrimTrailingSlash(s.router)
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server on port %s", s.cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	s.WaitNotifications()
	s.logger.Info("HTTP server stopped")
	return nil
}
