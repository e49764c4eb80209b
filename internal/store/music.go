package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lib/pq"

	"inkbeat/internal/content"
)

const musicColumns = "id, title, artist, genre, description, image_url, spotify_url, youtube_url, tags, is_featured, featured_section, status, plays, likes, created_at, updated_at"

// MusicRepository owns all access to the music collection.
type MusicRepository struct {
	core repo[content.Music]
}

// NewMusicRepository wires a repository against the music table.
func NewMusicRepository(db *sql.DB) *MusicRepository {
	return &MusicRepository{core: repo[content.Music]{
		db:         db,
		table:      "music",
		columns:    musicColumns,
		scan:       scanMusic,
		filterable: map[string]bool{"genre": true, "artist": true, "status": true},
		searchCols: []string{"title", "artist", "genre"},
	}}
}

func scanMusic(r rowScanner) (content.Music, error) {
	var m content.Music
	var tags pq.StringArray
	var section sql.NullString
	err := r.Scan(
		&m.ID, &m.Title, &m.Artist, &m.Genre, &m.Description, &m.ImageURL,
		&m.SpotifyURL, &m.YoutubeURL, &tags, &m.IsFeatured, &section,
		&m.Status, &m.Plays, &m.Likes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return content.Music{}, err
	}
	m.Tags = []string(tags)
	if m.Tags == nil {
		m.Tags = []string{}
	}
	if section.Valid {
		m.FeaturedSection = &section.String
	}
	return m, nil
}

// List returns tracks matching the filter, newest first.
func (r *MusicRepository) List(ctx context.Context, f Filter) ([]content.Music, error) {
	return r.core.list(ctx, f)
}

// ByID fetches a single track regardless of status.
func (r *MusicRepository) ByID(ctx context.Context, id string) (content.Music, error) {
	return r.core.byID(ctx, id)
}

// Create validates and stores a new track. Status defaults to published.
func (r *MusicRepository) Create(ctx context.Context, in content.MusicInput) (content.Music, error) {
	if err := in.Validate(); err != nil {
		return content.Music{}, err
	}

	status := in.Status
	if status == "" {
		status = content.StatusPublished
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	cols := []string{"title", "artist", "genre", "description", "image_url", "spotify_url", "youtube_url", "tags", "is_featured", "featured_section", "status"}
	vals := []any{
		strings.TrimSpace(in.Title), strings.TrimSpace(in.Artist), in.Genre,
		in.Description, in.ImageURL, in.SpotifyURL, in.YoutubeURL,
		pq.Array(tags), in.IsFeatured, nullableText(in.FeaturedSection), status,
	}
	return r.core.insert(ctx, cols, vals)
}

// Update applies the supplied fields only; updated_at is always refreshed.
func (r *MusicRepository) Update(ctx context.Context, id string, p content.MusicPatch) (content.Music, error) {
	if err := p.Validate(); err != nil {
		return content.Music{}, err
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
	if p.Genre != nil {
		set("genre", *p.Genre)
	}
	if p.Description != nil {
		set("description", *p.Description)
	}
	if p.ImageURL != nil {
		set("image_url", *p.ImageURL)
	}
	if p.SpotifyURL != nil {
		set("spotify_url", *p.SpotifyURL)
	}
	if p.YoutubeURL != nil {
		set("youtube_url", *p.YoutubeURL)
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

// Delete removes a track permanently.
func (r *MusicRepository) Delete(ctx context.Context, id string) error {
	return r.core.delete(ctx, id)
}

// Search matches the term against title, artist and genre.
func (r *MusicRepository) Search(ctx context.Context, term string) ([]content.Music, error) {
	return r.core.search(ctx, term)
}

// ByTags returns published tracks whose tags overlap the given set.
func (r *MusicRepository) ByTags(ctx context.Context, tags []string) ([]content.Music, error) {
	return r.core.byTags(ctx, tags)
}

// Featured returns published tracks flagged as featured.
func (r *MusicRepository) Featured(ctx context.Context) ([]content.Music, error) {
	return r.core.featured(ctx)
}

// FeaturedInSection returns published tracks assigned to a placement slot.
func (r *MusicRepository) FeaturedInSection(ctx context.Context, section string) ([]content.Music, error) {
	return r.core.featuredInSection(ctx, section)
}

// AllTags returns the sorted union of tags across published tracks.
func (r *MusicRepository) AllTags(ctx context.Context) ([]string, error) {
	return r.core.allTags(ctx)
}

// IncrementPlays bumps the play counter atomically. Counters are never
// writable through Update, so concurrent bumps cannot be overwritten.
func (r *MusicRepository) IncrementPlays(ctx context.Context, id string) error {
	return execExpectingRow(ctx, r.core.db, "UPDATE music SET plays = plays + 1 WHERE id = $1", id)
}

// ToggleLike adjusts the like counter by one in either direction, clamped at
// zero.
func (r *MusicRepository) ToggleLike(ctx context.Context, id string, increment bool) error {
	query := "UPDATE music SET likes = likes + 1 WHERE id = $1"
	if !increment {
		query = "UPDATE music SET likes = GREATEST(likes - 1, 0) WHERE id = $1"
	}
	return execExpectingRow(ctx, r.core.db, query, id)
}
