package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lib/pq"

	"inkbeat/internal/content"
)

const tattooColumns = "id, title, artist, style, description, image_url, tags, is_featured, featured_section, status, views, likes, created_at, updated_at"

// TattooRepository owns all access to the tattoo collection.
type TattooRepository struct {
	core repo[content.Tattoo]
}

// NewTattooRepository wires a repository against the tattoos table.
func NewTattooRepository(db *sql.DB) *TattooRepository {
	return &TattooRepository{core: repo[content.Tattoo]{
		db:         db,
		table:      "tattoos",
		columns:    tattooColumns,
		scan:       scanTattoo,
		filterable: map[string]bool{"style": true, "artist": true, "status": true},
		searchCols: []string{"title", "artist", "style"},
	}}
}

func scanTattoo(r rowScanner) (content.Tattoo, error) {
	var t content.Tattoo
	var tags pq.StringArray
	var section sql.NullString
	err := r.Scan(
		&t.ID, &t.Title, &t.Artist, &t.Style, &t.Description, &t.ImageURL,
		&tags, &t.IsFeatured, &section, &t.Status, &t.Views, &t.Likes,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return content.Tattoo{}, err
	}
	t.Tags = []string(tags)
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if section.Valid {
		t.FeaturedSection = &section.String
	}
	return t, nil
}

// List returns pieces matching the filter, newest first.
func (r *TattooRepository) List(ctx context.Context, f Filter) ([]content.Tattoo, error) {
	return r.core.list(ctx, f)
}

// ByID fetches a single piece regardless of status.
func (r *TattooRepository) ByID(ctx context.Context, id string) (content.Tattoo, error) {
	return r.core.byID(ctx, id)
}

// Create validates and stores a new piece. Status defaults to published.
func (r *TattooRepository) Create(ctx context.Context, in content.TattooInput) (content.Tattoo, error) {
	if err := in.Validate(); err != nil {
		return content.Tattoo{}, err
	}

	status := in.Status
	if status == "" {
		status = content.StatusPublished
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	cols := []string{"title", "artist", "style", "description", "image_url", "tags", "is_featured", "featured_section", "status"}
	vals := []any{
		strings.TrimSpace(in.Title), strings.TrimSpace(in.Artist), in.Style,
		in.Description, in.ImageURL, pq.Array(tags), in.IsFeatured,
		nullableText(in.FeaturedSection), status,
	}
	return r.core.insert(ctx, cols, vals)
}

// Update applies the supplied fields only; updated_at is always refreshed.
func (r *TattooRepository) Update(ctx context.Context, id string, p content.TattooPatch) (content.Tattoo, error) {
	if err := p.Validate(); err != nil {
		return content.Tattoo{}, err
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
	if p.Artist != nil {
		set("artist", strings.TrimSpace(*p.Artist))
	}
	if p.Style != nil {
		set("style", *p.Style)
	}
	if p.Description != nil {
		set("description", *p.Description)
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

// Delete removes a piece permanently.
func (r *TattooRepository) Delete(ctx context.Context, id string) error {
	return r.core.delete(ctx, id)
}

// Search matches the term against title, artist and style.
func (r *TattooRepository) Search(ctx context.Context, term string) ([]content.Tattoo, error) {
	return r.core.search(ctx, term)
}

// ByTags returns published pieces whose tags overlap the given set.
func (r *TattooRepository) ByTags(ctx context.Context, tags []string) ([]content.Tattoo, error) {
	return r.core.byTags(ctx, tags)
}

// Featured returns published pieces flagged as featured.
func (r *TattooRepository) Featured(ctx context.Context) ([]content.Tattoo, error) {
	return r.core.featured(ctx)
}

// FeaturedInSection returns published pieces assigned to a placement slot.
func (r *TattooRepository) FeaturedInSection(ctx context.Context, section string) ([]content.Tattoo, error) {
	return r.core.featuredInSection(ctx, section)
}

// AllTags returns the sorted union of tags across published pieces.
func (r *TattooRepository) AllTags(ctx context.Context) ([]string, error) {
	return r.core.allTags(ctx)
}

// IncrementViews bumps the view counter atomically.
func (r *TattooRepository) IncrementViews(ctx context.Context, id string) error {
	return execExpectingRow(ctx, r.core.db, "UPDATE tattoos SET views = views + 1 WHERE id = $1", id)
}

// ToggleLike adjusts the like counter by one in either direction, clamped at
// zero.
func (r *TattooRepository) ToggleLike(ctx context.Context, id string, increment bool) error {
	query := "UPDATE tattoos SET likes = likes + 1 WHERE id = $1"
	if !increment {
		query = "UPDATE tattoos SET likes = GREATEST(likes - 1, 0) WHERE id = $1"
	}
	return execExpectingRow(ctx, r.core.db, query, id)
}
