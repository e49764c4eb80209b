package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lib/pq"

	"inkbeat/internal/content"
)

const newsColumns = "id, title, author, category, excerpt, content, image_url, tags, is_featured, featured_section, status, created_at, updated_at"

// NewsRepository owns all access to the news collection.
type NewsRepository struct {
	core repo[content.News]
}

// NewNewsRepository wires a repository against the news table.
func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{core: repo[content.News]{
		db:         db,
		table:      "news",
		columns:    newsColumns,
		scan:       scanNews,
		filterable: map[string]bool{"category": true, "author": true, "status": true},
		searchCols: []string{"title", "excerpt", "content", "author"},
	}}
}

func scanNews(r rowScanner) (content.News, error) {
	var n content.News
	var tags pq.StringArray
	var section sql.NullString
	err := r.Scan(
		&n.ID, &n.Title, &n.Author, &n.Category, &n.Excerpt, &n.Content,
		&n.ImageURL, &tags, &n.IsFeatured, &section, &n.Status,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return content.News{}, err
	}
	n.Tags = []string(tags)
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if section.Valid {
		n.FeaturedSection = &section.String
	}
	return n, nil
}

// List returns articles matching the filter, newest first.
func (r *NewsRepository) List(ctx context.Context, f Filter) ([]content.News, error) {
	return r.core.list(ctx, f)
}

// ByID fetches a single article regardless of status.
func (r *NewsRepository) ByID(ctx context.Context, id string) (content.News, error) {
	return r.core.byID(ctx, id)
}

// Create validates and stores a new article. Status defaults to published.
func (r *NewsRepository) Create(ctx context.Context, in content.NewsInput) (content.News, error) {
	if err := in.Validate(); err != nil {
		return content.News{}, err
	}

	status := in.Status
	if status == "" {
		status = content.StatusPublished
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	cols := []string{"title", "author", "category", "excerpt", "content", "image_url", "tags", "is_featured", "featured_section", "status"}
	vals := []any{
		strings.TrimSpace(in.Title), strings.TrimSpace(in.Author), in.Category,
		in.Excerpt, in.Content, in.ImageURL, pq.Array(tags), in.IsFeatured,
		nullableText(in.FeaturedSection), status,
	}
	return r.core.insert(ctx, cols, vals)
}

// Update applies the supplied fields only; updated_at is always refreshed.
func (r *NewsRepository) Update(ctx context.Context, id string, p content.NewsPatch) (content.News, error) {
	if err := p.Validate(); err != nil {
		return content.News{}, err
	}

	var cols []string
	var vals []any
	set := func(col string, v any) {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	if p.Title != nil {
		set("title", strings.TrimSpace(*p.Title))
	}
	if p.Author != nil {
		set("author", strings.TrimSpace(*p.Author))
	}
	if p.Category != nil {
		set("category", *p.Category)
	}
	if p.Excerpt != nil {
		set("excerpt", *p.Excerpt)
	}
	if p.Content != nil {
		set("content", *p.Content)
	}
	if p.ImageURL != nil {
		set("image_url", *p.ImageURL)
	}
	if p.Tags != nil {
		set("tags", pq.Array(*p.Tags))
	}
	if p.IsFeatured != nil {
		set("is_featured", *p.IsFeatured)
	}
	if p.FeaturedSection != nil {
		set("featured_section", nullableText(*p.FeaturedSection))
	}
	if p.Status != nil {
		set("status", *p.Status)
	}

	return r.core.update(ctx, id, cols, vals)
}

// Delete removes an article permanently.
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	return r.core.delete(ctx, id)
}

// Search matches the term against title, excerpt, content and author.
func (r *NewsRepository) Search(ctx context.Context, term string) ([]content.News, error) {
	return r.core.search(ctx, term)
}

// ByTags returns published articles whose tags overlap the given set.
func (r *NewsRepository) ByTags(ctx context.Context, tags []string) ([]content.News, error) {
	return r.core.byTags(ctx, tags)
}

// Featured returns published articles flagged as featured.
func (r *NewsRepository) Featured(ctx context.Context) ([]content.News, error) {
	return r.core.featured(ctx)
}

// FeaturedInSection returns published articles assigned to a placement slot.
func (r *NewsRepository) FeaturedInSection(ctx context.Context, section string) ([]content.News, error) {
	return r.core.featuredInSection(ctx, section)
}

// AllTags returns the sorted union of tags across published articles.
func (r *NewsRepository) AllTags(ctx context.Context) ([]string, error) {
	return r.core.allTags(ctx)
}
