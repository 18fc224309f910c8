package handlers

import (
	"strconv"

	"github.com/johndn/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

type MetaHandler struct {
	site utils.SiteConfig
}

func NewMetaHandler(site utils.SiteConfig) *MetaHandler {
	return &MetaHandler{site: site}
}

// Get builds page metadata from ?title=&description=&image=&noindex=
func (h *MetaHandler) Get(c *gin.Context) {
	noIndex, _ := strconv.ParseBool(c.Query("noindex"))

	utils.HandleSuccess(c, utils.ConstructMetadata(h.site, utils.MetadataOptions{
		Title:       c.Query("title"),
		Description: c.Query("description"),
		Image:       c.Query("image"),
		NoIndex:     noIndex,
	}))
}
