package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/johndn/portfolio/internal/content"
	"github.com/johndn/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// static pages listed in the sitemap
var sitemapPages = []string{"", "/about", "/projects", "/blog", "/contact"}

// paths crawlers are asked to skip
var robotsDisallow = []string{"/admin/", "/api/", "/_next/"}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type SEOHandler struct {
	site  utils.SiteConfig
	store *content.Store
	now   func() time.Time
}

func NewSEOHandler(site utils.SiteConfig, store *content.Store) *SEOHandler {
	return &SEOHandler{site: site, store: store, now: time.Now}
}

// Sitemap lists the static pages, every post and every project
func (h *SEOHandler) Sitemap(c *gin.Context) {
	base := strings.TrimRight(utils.GetBaseURL(h.site), "/")
	today := h.now().UTC().Format("2006-01-02")
	catalog := h.store.Catalog()

	set := sitemapURLSet{Xmlns: sitemapNamespace}
	for _, page := range sitemapPages {
		priority := "0.8"
		if page == "" {
			priority = "1.0"
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: base + page, LastMod: today, ChangeFreq: "weekly", Priority: priority})
	}

	for _, p := range catalog.Posts() {
		lastMod := today
		if !p.PublishedAt.IsZero() {
			lastMod = p.PublishedAt.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: base + "/blog/" + p.Slug, LastMod: lastMod, ChangeFreq: "monthly", Priority: "0.6"})
	}

	for _, p := range catalog.Projects() {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + "/projects/" + p.Slug, LastMod: today, ChangeFreq: "monthly", Priority: "0.7"})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Failed to build sitemap")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}

// Robots allows everything except admin, API and framework asset paths
func (h *SEOHandler) Robots(c *gin.Context) {
	base := strings.TrimRight(utils.GetBaseURL(h.site), "/")

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, path := range robotsDisallow {
		b.WriteString("Disallow: " + path + "\n")
	}
	b.WriteString("\nSitemap: " + base + "/sitemap.xml\n")

	c.String(http.StatusOK, b.String())
}
