package routes

import (
	"github.com/johndn/portfolio/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes configures admin dashboard routes
func SetupAdminRoutes(router *gin.RouterGroup, admin *handlers.AdminHandler, m *Middleware) {
	group := router.Group("/admin")
	group.Use(m.Admin.RequireAdmin())
	{
		group.GET("/stats", admin.Stats)
	}
}
