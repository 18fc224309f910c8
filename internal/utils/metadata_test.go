package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructMetadata(t *testing.T) {
	site := SiteConfig{Name: "Jane Roe", URL: "https://jane.dev", Description: "Engineer"}

	t.Run("defaults", func(t *testing.T) {
		m := ConstructMetadata(site, MetadataOptions{})
		assert.Equal(t, "Jane Roe", m.Title)
		assert.Equal(t, "Engineer", m.Description)
		assert.Equal(t, "Jane Roe", m.OpenGraph.Title)
		assert.Equal(t, "https://jane.dev", m.OpenGraph.URL)
		assert.Equal(t, "en_US", m.OpenGraph.Locale)
		assert.Equal(t, "website", m.OpenGraph.Type)
		assert.Empty(t, m.OpenGraph.Images)
		assert.NotNil(t, m.OpenGraph.Images)
		assert.Equal(t, "summary_large_image", m.Twitter.Card)
		assert.True(t, m.Robots.Index)
		assert.True(t, m.Robots.Follow)
	})

	t.Run("page overrides", func(t *testing.T) {
		m := ConstructMetadata(site, MetadataOptions{
			Title:       "Blog",
			Description: "Posts",
			Image:       "/og.png",
			NoIndex:     true,
		})
		assert.Equal(t, "Blog | Jane Roe", m.Title)
		assert.Equal(t, "Posts", m.Description)
		assert.Equal(t, "Blog", m.OpenGraph.Title)
		assert.Equal(t, "Blog", m.Twitter.Title)
		assert.Equal(t, []ImageEntry{{URL: "/og.png"}}, m.OpenGraph.Images)
		assert.Equal(t, []string{"/og.png"}, m.Twitter.Images)
		assert.False(t, m.Robots.Index)
		assert.False(t, m.Robots.Follow)
	})

	t.Run("empty site falls back", func(t *testing.T) {
		m := ConstructMetadata(SiteConfig{}, MetadataOptions{Title: "About"})
		assert.Equal(t, "About | "+DefaultSiteName, m.Title)
		assert.Equal(t, DefaultSiteDescription, m.Description)
		assert.Equal(t, DefaultSiteURL, m.OpenGraph.URL)
	})
}

func TestGetBaseURL(t *testing.T) {
	assert.Equal(t, "https://jane.dev", GetBaseURL(SiteConfig{URL: "https://jane.dev"}))
	assert.Equal(t, DefaultBaseURL, GetBaseURL(SiteConfig{}))
}
