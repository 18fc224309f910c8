package content

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/johndn/portfolio/internal/utils"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Post is a blog article
type Post struct {
	Slug        string    `yaml:"slug"`
	Title       string    `yaml:"title"`
	Excerpt     string    `yaml:"excerpt"`
	Content     string    `yaml:"content"`
	CoverImage  string    `yaml:"coverImage"`
	Tags        []string  `yaml:"tags"`
	Featured    bool      `yaml:"featured"`
	Draft       bool      `yaml:"draft"`
	Date        string    `yaml:"publishedAt"`
	PublishedAt time.Time `yaml:"-"`
}

// Project is a portfolio entry
type Project struct {
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Content     string   `yaml:"content"`
	Thumbnail   string   `yaml:"thumbnail"`
	GithubURL   string   `yaml:"githubUrl"`
	LiveURL     string   `yaml:"liveUrl"`
	Tags        []string `yaml:"tags"`
	Featured    bool     `yaml:"featured"`
	Draft       bool     `yaml:"draft"`
	Order       int      `yaml:"order"`
}

// Catalog is the read-only set of published posts and projects
type Catalog struct {
	posts    []Post
	projects []Project
}

type catalogFile struct {
	Posts    []Post    `yaml:"posts"`
	Projects []Project `yaml:"projects"`
}

// Load reads the catalog from path. A missing file yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Parse(defaultCatalog)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic("invalid built-in content: " + err.Error())
	}
	return c
}

// Parse decodes a YAML catalog, derives missing slugs and drops drafts
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	c := &Catalog{}
	for _, p := range file.Posts {
		if p.Draft {
			continue
		}
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("post without title")
		}
		if p.Slug == "" {
			p.Slug = utils.Slugify(p.Title)
			if p.Slug == "" {
				return nil, fmt.Errorf("post %q: title yields an empty slug, set one explicitly", p.Title)
			}
		}
		if p.Date != "" {
			t, err := utils.ParseDate(p.Date)
			if err != nil {
				return nil, fmt.Errorf("post %q: %w", p.Slug, err)
			}
			p.PublishedAt = t
		}
		c.posts = append(c.posts, p)
	}

	for _, p := range file.Projects {
		if p.Draft {
			continue
		}
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("project without title")
		}
		if p.Slug == "" {
			p.Slug = utils.Slugify(p.Title)
			if p.Slug == "" {
				return nil, fmt.Errorf("project %q: title yields an empty slug, set one explicitly", p.Title)
			}
		}
		c.projects = append(c.projects, p)
	}

	c.posts = utils.UniqueBy(c.posts, func(p Post) string { return p.Slug })
	c.projects = utils.UniqueBy(c.projects, func(p Project) string { return p.Slug })

	sort.SliceStable(c.posts, func(i, j int) bool {
		return c.posts[i].PublishedAt.After(c.posts[j].PublishedAt)
	})
	sort.SliceStable(c.projects, func(i, j int) bool {
		if c.projects[i].Featured != c.projects[j].Featured {
			return c.projects[i].Featured
		}
		return c.projects[i].Order < c.projects[j].Order
	})

	return c, nil
}

// Posts returns published posts, newest first
func (c *Catalog) Posts() []Post {
	return c.posts
}

// FeaturedPosts returns featured posts, newest first
func (c *Catalog) FeaturedPosts() []Post {
	var featured []Post
	for _, p := range c.posts {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// Post finds a post by slug
func (c *Catalog) Post(slug string) (Post, bool) {
	for _, p := range c.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}

// PostsByYear groups posts by publication year, newest year first
func (c *Catalog) PostsByYear() utils.Grouped[Post] {
	return utils.GroupBy(c.posts, func(p Post) int { return p.PublishedAt.Year() })
}

// RelatedPosts returns up to n other posts sharing a tag with slug, in random order
func (c *Catalog) RelatedPosts(slug string, n int) []Post {
	post, ok := c.Post(slug)
	if !ok {
		return nil
	}

	tags := make(map[string]bool, len(post.Tags))
	for _, t := range post.Tags {
		tags[utils.Slugify(t)] = true
	}

	var related []Post
	for _, p := range c.posts {
		if p.Slug == slug {
			continue
		}
		for _, t := range p.Tags {
			if tags[utils.Slugify(t)] {
				related = append(related, p)
				break
			}
		}
	}

	related = utils.ShuffleArray(related)
	if len(related) > n {
		related = related[:n]
	}
	return related
}

// Projects returns published projects, featured first then by order
func (c *Catalog) Projects() []Project {
	return c.projects
}

// Project finds a project by slug
func (c *Catalog) Project(slug string) (Project, bool) {
	for _, p := range c.projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}

// Spotlight picks a random featured project
func (c *Catalog) Spotlight() (Project, bool) {
	var featured []Project
	for _, p := range c.projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return utils.GetRandomItem(featured)
}

// Tags returns every tag used by posts and projects, first spelling wins
func (c *Catalog) Tags() []string {
	var all []string
	for _, p := range c.posts {
		all = append(all, p.Tags...)
	}
	for _, p := range c.projects {
		all = append(all, p.Tags...)
	}
	return utils.UniqueBy(all, utils.Slugify)
}
