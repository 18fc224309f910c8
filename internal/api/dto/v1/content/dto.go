package content

// PostSummary is a blog post as shown in listings
type PostSummary struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	CoverImage    string   `json:"coverImage,omitempty"`
	Tags          []string `json:"tags"`
	Featured      bool     `json:"featured"`
	PublishedAt   string   `json:"publishedAt,omitempty"`
	Date          string   `json:"date,omitempty"`
	DateShort     string   `json:"dateShort,omitempty"`
	RelativeTime  string   `json:"relativeTime,omitempty"`
	ReadingTime   int      `json:"readingTime"`
	ReadingLabel  string   `json:"readingLabel"`
}

// PostDetail is a single blog post with its body and related posts
type PostDetail struct {
	PostSummary
	Content string        `json:"content"`
	Related []PostSummary `json:"related"`
}

// ProjectSummary is a portfolio project as shown in listings
type ProjectSummary struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	GithubURL   string   `json:"githubUrl,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

// ProjectDetail is a single project with its body
type ProjectDetail struct {
	ProjectSummary
	Content string `json:"content"`
}

// TagResponse is a tag with its URL slug
type TagResponse struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Label string `json:"label"`
}
