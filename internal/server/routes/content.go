package routes

import (
	"github.com/johndn/portfolio/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContentRoutes configures read-only blog and project routes
func SetupContentRoutes(router *gin.RouterGroup, content *handlers.ContentHandler, meta *handlers.MetaHandler) {
	router.GET("/posts", content.ListPosts)
	router.GET("/posts/:slug", content.GetPost)
	router.GET("/archive", content.Archive)
	router.GET("/projects", content.ListProjects)
	router.GET("/projects/:slug", content.GetProject)
	router.GET("/spotlight", content.Spotlight)
	router.GET("/tags", content.ListTags)
	router.GET("/meta", meta.Get)
}

// SetupSEORoutes configures crawler-facing routes at the site root
func SetupSEORoutes(router *gin.Engine, seo *handlers.SEOHandler) {
	router.GET("/sitemap.xml", seo.Sitemap)
	router.GET("/robots.txt", seo.Robots)
}
