package mapper

import (
	"strconv"
	"time"

	dto "github.com/johndn/portfolio/internal/api/dto/v1/content"
	"github.com/johndn/portfolio/internal/content"
	"github.com/johndn/portfolio/internal/utils"
)

// ExcerptLength is the size of excerpts derived from a post body
const ExcerptLength = 160

// PostToSummary maps a catalog post to its listing form. now anchors the relative time.
func PostToSummary(p content.Post, now time.Time) dto.PostSummary {
	excerpt := p.Excerpt
	if excerpt == "" {
		excerpt = utils.TruncateText(p.Content, ExcerptLength)
	}

	minutes := utils.ReadingTime(p.Content)
	if minutes == 0 {
		minutes = utils.ReadingTime(p.Excerpt)
	}

	summary := dto.PostSummary{
		Slug:         p.Slug,
		Title:        p.Title,
		Excerpt:      excerpt,
		CoverImage:   p.CoverImage,
		Tags:         tagsOrEmpty(p.Tags),
		Featured:     p.Featured,
		ReadingTime:  minutes,
		ReadingLabel: strconv.Itoa(minutes) + " min read",
	}

	if !p.PublishedAt.IsZero() {
		summary.PublishedAt = p.PublishedAt.Format(time.RFC3339)
		summary.Date = utils.FormatDate(p.PublishedAt)
		summary.DateShort = utils.FormatDateShort(p.PublishedAt)
		summary.RelativeTime = utils.FormatRelativeTimeFrom(p.PublishedAt, now)
	}

	return summary
}

// PostsToSummaries maps a list of posts, preserving order
func PostsToSummaries(posts []content.Post, now time.Time) []dto.PostSummary {
	summaries := make([]dto.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, PostToSummary(p, now))
	}
	return summaries
}

// PostGroupsToSummaries maps every group of posts, keeping group order
func PostGroupsToSummaries(groups utils.Grouped[content.Post], now time.Time) utils.Grouped[dto.PostSummary] {
	mapped := utils.Grouped[dto.PostSummary]{
		Keys:   groups.Keys,
		Groups: make(map[string][]dto.PostSummary, groups.Len()),
	}
	for _, key := range groups.Keys {
		mapped.Groups[key] = PostsToSummaries(groups.Get(key), now)
	}
	return mapped
}

// PostToDetail maps a post with its related posts
func PostToDetail(p content.Post, related []content.Post, now time.Time) dto.PostDetail {
	return dto.PostDetail{
		PostSummary: PostToSummary(p, now),
		Content:     p.Content,
		Related:     PostsToSummaries(related, now),
	}
}

// ProjectToSummary maps a catalog project to its listing form
func ProjectToSummary(p content.Project) dto.ProjectSummary {
	return dto.ProjectSummary{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Thumbnail:   p.Thumbnail,
		GithubURL:   p.GithubURL,
		LiveURL:     p.LiveURL,
		Tags:        tagsOrEmpty(p.Tags),
		Featured:    p.Featured,
	}
}

// ProjectsToSummaries maps a list of projects, preserving order
func ProjectsToSummaries(projects []content.Project) []dto.ProjectSummary {
	summaries := make([]dto.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, ProjectToSummary(p))
	}
	return summaries
}

// ProjectToDetail maps a project with its body
func ProjectToDetail(p content.Project) dto.ProjectDetail {
	return dto.ProjectDetail{
		ProjectSummary: ProjectToSummary(p),
		Content:        p.Content,
	}
}

// TagsToResponses maps tag names to name/slug/label triples
func TagsToResponses(tags []string) []dto.TagResponse {
	responses := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		slug := utils.Slugify(t)
		responses = append(responses, dto.TagResponse{
			Name:  t,
			Slug:  slug,
			Label: utils.KebabToTitle(slug),
		})
	}
	return responses
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
