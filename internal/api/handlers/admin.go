package handlers

import (
	"net/http"

	"github.com/johndn/portfolio/internal/api/dto/v1/admin"
	"github.com/johndn/portfolio/internal/content"
	"github.com/johndn/portfolio/internal/service"
	"github.com/johndn/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	contactService *service.ContactService
	store          *content.Store
	site           utils.SiteConfig
}

func NewAdminHandler(contactService *service.ContactService, store *content.Store, site utils.SiteConfig) *AdminHandler {
	return &AdminHandler{contactService: contactService, store: store, site: site}
}

// Stats returns the dashboard counters
func (h *AdminHandler) Stats(c *gin.Context) {
	unread, err := h.contactService.CountUnread(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	catalog := h.store.Catalog()
	utils.HandleSuccess(c, admin.StatsResponse{
		Posts:          len(catalog.Posts()),
		Projects:       len(catalog.Projects()),
		UnreadMessages: unread,
		SiteName:       h.site.Name,
		Initials:       utils.GetInitials(h.site.Name),
	})
}
