package music

import (
	"context"

	"inkbeat/internal/content"
	"inkbeat/internal/store"
)

// Store captures the persistence needs for music workflows.
type Store interface {
	List(ctx context.Context, f store.Filter) ([]content.Music, error)
	ByID(ctx context.Context, id string) (content.Music, error)
	Create(ctx context.Context, in content.MusicInput) (content.Music, error)
	Update(ctx context.Context, id string, p content.MusicPatch) (content.Music, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) ([]content.Music, error)
	ByTags(ctx context.Context, tags []string) ([]content.Music, error)
	Featured(ctx context.Context) ([]content.Music, error)
	FeaturedInSection(ctx context.Context, section string) ([]content.Music, error)
	AllTags(ctx context.Context) ([]string, error)
	IncrementPlays(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id string, increment bool) error
}

// Query narrows a public music listing.
type Query struct {
	Genre    string
	Featured bool
	Tags     []string
}

// Service coordinates music-related operations.
type Service interface {
	List(ctx context.Context, q Query) ([]content.Music, error)
	ListAdmin(ctx context.Context, status string) ([]content.Music, error)
	Get(ctx context.Context, id string) (content.Music, error)
	Create(ctx context.Context, in content.MusicInput) (content.Music, error)
	Update(ctx context.Context, id string, p content.MusicPatch) (content.Music, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) ([]content.Music, error)
	ByTags(ctx context.Context, tags []string) ([]content.Music, error)
	Featured(ctx context.Context) ([]content.Music, error)
	InSection(ctx context.Context, section string) ([]content.Music, error)
	Tags(ctx context.Context) ([]string, error)
	Play(ctx context.Context, id string) error
	Like(ctx context.Context, id string, increment bool) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

// List applies the public visibility rule: only published tracks.
func (s *service) List(ctx context.Context, q Query) ([]content.Music, error) {
	f := store.Filter{PublishedOnly: true, FeaturedOnly: q.Featured, Tags: q.Tags}
	if q.Genre != "" && q.Genre != "all" {
		f.Eq = map[string]string{"genre": q.Genre}
	}
	return s.store.List(ctx, f)
}

// ListAdmin lists tracks across all statuses, optionally pinned to one.
func (s *service) ListAdmin(ctx context.Context, status string) ([]content.Music, error) {
	f := store.Filter{}
	if status != "" && status != "all" {
		f.Eq = map[string]string{"status": status}
	}
	return s.store.List(ctx, f)
}

func (s *service) Get(ctx context.Context, id string) (content.Music, error) {
	return s.store.ByID(ctx, id)
}

func (s *service) Create(ctx context.Context, in content.MusicInput) (content.Music, error) {
	return s.store.Create(ctx, in)
}

func (s *service) Update(ctx context.Context, id string, p content.MusicPatch) (content.Music, error) {
	return s.store.Update(ctx, id, p)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *service) Search(ctx context.Context, term string) ([]content.Music, error) {
	return s.store.Search(ctx, term)
}

func (s *service) ByTags(ctx context.Context, tags []string) ([]content.Music, error) {
	return s.store.ByTags(ctx, tags)
}

func (s *service) Featured(ctx context.Context) ([]content.Music, error) {
	return s.store.Featured(ctx)
}

func (s *service) InSection(ctx context.Context, section string) ([]content.Music, error) {
	return s.store.FeaturedInSection(ctx, section)
}

func (s *service) Tags(ctx context.Context) ([]string, error) {
	return s.store.AllTags(ctx)
}

func (s *service) Play(ctx context.Context, id string) error {
	return s.store.IncrementPlays(ctx, id)
}

func (s *service) Like(ctx context.Context, id string, increment bool) error {
	return s.store.ToggleLike(ctx, id, increment)
}
