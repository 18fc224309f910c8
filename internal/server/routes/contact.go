package routes

import (
	"github.com/johndn/portfolio/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes on the given group
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	group := router.Group("/contact")
	{
		// Public endpoint, rate limited per client
		group.POST("", m.ContactRate.Middleware(), contact.Submit)

		// Stored submissions are admin-only
		group.GET("", m.Admin.RequireAdmin(), contact.List)
	}
}
