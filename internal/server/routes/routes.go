package routes

import (
	"net/http"
	"strings"

	"github.com/johndn/portfolio/internal/api/middleware"
	"github.com/johndn/portfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// GlobalOptions configures middleware applied to every route
type GlobalOptions struct {
	CORS       middleware.CORSConfig
	Production bool
	// Extra runs after recovery and request ID, before logging
	Extra []gin.HandlerFunc
}

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	SetupHealthRoutes(router, h.Health)
	SetupSEORoutes(router, h.SEO)

	v1 := router.Group("/api/v1")
	SetupContactRoutes(v1, h.Contact, m)
	SetupContentRoutes(v1, h.Content, h.Meta)
	SetupAdminRoutes(v1, h.Admin, m)

	// Unversioned alias kept for existing form clients
	legacy := router.Group("/api")
	SetupContactRoutes(legacy, h.Contact, m)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, opts GlobalOptions) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(opts.Extra...)
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(opts.CORS))
	router.Use(middleware.SecurityHeaders(opts.Production))
}

// TrimTrailingSlash wraps the engine so "/api/v1/posts/" routes like "/api/v1/posts".
// It runs before routing, which gin middleware cannot.
func TrimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = trimSlash(r.URL.Path)
		if r.URL.RawPath != "" {
			r.URL.RawPath = trimSlash(r.URL.RawPath)
		}
		next.ServeHTTP(w, r)
	})
}

// trimSlash removes one trailing slash except from the root path
func trimSlash(path string) string {
	if path != "/" && strings.HasSuffix(path, "/") {
		return strings.TrimSuffix(path, "/")
	}
	return path
}
