package routes

import (
	"github.com/johndn/portfolio/internal/api/handlers"
	"github.com/johndn/portfolio/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health  *handlers.HealthHandler
	Contact *handlers.ContactHandler
	Content *handlers.ContentHandler
	Meta    *handlers.MetaHandler
	SEO     *handlers.SEOHandler
	Admin   *handlers.AdminHandler
}

// Middleware contains route-scoped middleware
type Middleware struct {
	Admin       *middleware.AdminMiddleware
	ContactRate *middleware.RateLimiter
}
