package utils

// Fallbacks applied when the site configuration leaves a field empty
const (
	DefaultSiteName        = "John Dn"
	DefaultSiteURL         = "https://johndn.dev"
	DefaultSiteDescription = "Senior Software Developer & Architecture Consultant"
	DefaultBaseURL         = "http://localhost:3000"
)

// SiteConfig is the process-wide site identity consumed by ConstructMetadata
type SiteConfig struct {
	Name        string `env:"SITE_NAME" envDefault:"John Dn"`
	URL         string `env:"SITE_URL" envDefault:"https://johndn.dev"`
	Description string `env:"SITE_DESCRIPTION" envDefault:"Senior Software Developer & Architecture Consultant"`
}

// WithDefaults fills empty fields with the documented fallbacks
func (s SiteConfig) WithDefaults() SiteConfig {
	if s.Name == "" {
		s.Name = DefaultSiteName
	}
	if s.URL == "" {
		s.URL = DefaultSiteURL
	}
	if s.Description == "" {
		s.Description = DefaultSiteDescription
	}
	return s
}

// MetadataOptions are the per-page inputs to ConstructMetadata
type MetadataOptions struct {
	Title       string
	Description string
	Image       string
	NoIndex     bool
}

// Metadata is the SEO description of a page
type Metadata struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	OpenGraph   OpenGraphMeta   `json:"openGraph"`
	Twitter     TwitterMeta     `json:"twitter"`
	Robots      RobotsDirective `json:"robots"`
}

type OpenGraphMeta struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	URL         string       `json:"url"`
	SiteName    string       `json:"siteName"`
	Images      []ImageEntry `json:"images"`
	Locale      string       `json:"locale"`
	Type        string       `json:"type"`
}

type ImageEntry struct {
	URL string `json:"url"`
}

type TwitterMeta struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

type RobotsDirective struct {
	Index  bool `json:"index"`
	Follow bool `json:"follow"`
}

// ConstructMetadata builds page metadata. The page title renders as
// "{title} | {site name}", or just the site name when no title is given.
func ConstructMetadata(site SiteConfig, opts MetadataOptions) Metadata {
	site = site.WithDefaults()

	title := site.Name
	shortTitle := site.Name
	if opts.Title != "" {
		title = opts.Title + " | " + site.Name
		shortTitle = opts.Title
	}

	description := opts.Description
	if description == "" {
		description = site.Description
	}

	ogImages := []ImageEntry{}
	twitterImages := []string{}
	if opts.Image != "" {
		ogImages = append(ogImages, ImageEntry{URL: opts.Image})
		twitterImages = append(twitterImages, opts.Image)
	}

	return Metadata{
		Title:       title,
		Description: description,
		OpenGraph: OpenGraphMeta{
			Title:       shortTitle,
			Description: description,
			URL:         site.URL,
			SiteName:    site.Name,
			Images:      ogImages,
			Locale:      "en_US",
			Type:        "website",
		},
		Twitter: TwitterMeta{
			Card:        "summary_large_image",
			Title:       shortTitle,
			Description: description,
			Images:      twitterImages,
		},
		Robots: RobotsDirective{
			Index:  !opts.NoIndex,
			Follow: !opts.NoIndex,
		},
	}
}

// GetBaseURL returns the absolute base URL used for links outside a request,
// falling back to the local development address.
func GetBaseURL(site SiteConfig) string {
	if site.URL != "" {
		return site.URL
	}
	return DefaultBaseURL
}
