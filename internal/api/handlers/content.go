package handlers

import (
	"net/http"
	"time"

	"github.com/johndn/portfolio/internal/api/dto/common"
	"github.com/johndn/portfolio/internal/api/mapper"
	"github.com/johndn/portfolio/internal/content"
	"github.com/johndn/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// relatedPostCount is how many related posts a post detail carries
const relatedPostCount = 3

type ContentHandler struct {
	store *content.Store
	now   func() time.Time
}

func NewContentHandler(store *content.Store) *ContentHandler {
	return &ContentHandler{store: store, now: time.Now}
}

// ListPosts returns posts newest first, optionally filtered by ?tag= or ?featured=true
func (h *ContentHandler) ListPosts(c *gin.Context) {
	catalog := h.store.Catalog()

	posts := catalog.Posts()
	if c.Query("featured") == "true" {
		posts = catalog.FeaturedPosts()
	}
	if tag := c.Query("tag"); tag != "" {
		posts = filterPostsByTag(posts, tag)
	}

	utils.HandleSuccess(c, mapper.PostsToSummaries(posts, h.now()))
}

// GetPost returns one post with related posts
func (h *ContentHandler) GetPost(c *gin.Context) {
	catalog := h.store.Catalog()

	post, ok := catalog.Post(c.Param("slug"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, common.NewErrorResponse(common.ErrMsgNotFound))
		return
	}

	related := catalog.RelatedPosts(post.Slug, relatedPostCount)
	utils.HandleSuccess(c, mapper.PostToDetail(post, related, h.now()))
}

// Archive returns posts grouped by publication year, newest year first
func (h *ContentHandler) Archive(c *gin.Context) {
	years := h.store.Catalog().PostsByYear()
	utils.HandleSuccess(c, mapper.PostGroupsToSummaries(years, h.now()))
}

// ListProjects returns projects, featured first
func (h *ContentHandler) ListProjects(c *gin.Context) {
	projects := h.store.Catalog().Projects()
	if c.Query("featured") == "true" {
		var featured []content.Project
		for _, p := range projects {
			if p.Featured {
				featured = append(featured, p)
			}
		}
		projects = featured
	}

	utils.HandleSuccess(c, mapper.ProjectsToSummaries(projects))
}

// GetProject returns one project with its body
func (h *ContentHandler) GetProject(c *gin.Context) {
	project, ok := h.store.Catalog().Project(c.Param("slug"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, common.NewErrorResponse(common.ErrMsgNotFound))
		return
	}

	utils.HandleSuccess(c, mapper.ProjectToDetail(project))
}

// Spotlight returns a random featured project
func (h *ContentHandler) Spotlight(c *gin.Context) {
	project, ok := h.store.Catalog().Spotlight()
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, common.NewErrorResponse(common.ErrMsgNotFound))
		return
	}

	utils.HandleSuccess(c, mapper.ProjectToSummary(project))
}

// ListTags returns every tag used across posts and projects
func (h *ContentHandler) ListTags(c *gin.Context) {
	utils.HandleSuccess(c, mapper.TagsToResponses(h.store.Catalog().Tags()))
}

func filterPostsByTag(posts []content.Post, tag string) []content.Post {
	want := utils.Slugify(tag)
	filtered := []content.Post{}
	for _, p := range posts {
		for _, t := range p.Tags {
			if utils.Slugify(t) == want {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}
