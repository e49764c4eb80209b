package tattoos

import (
	"context"

	"inkbeat/internal/content"
	"inkbeat/internal/store"
)

// Store captures the persistence needs for tattoo workflows.
type Store interface {
	List(ctx context.Context, f store.Filter) ([]content.Tattoo, error)
	ByID(ctx context.Context, id string) (content.Tattoo, error)
	Create(ctx context.Context, in content.TattooInput) (content.Tattoo, error)
	Update(ctx context.Context, id string, p content.TattooPatch) (content.Tattoo, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) ([]content.Tattoo, error)
	ByTags(ctx context.Context, tags []string) ([]content.Tattoo, error)
	Featured(ctx context.Context) ([]content.Tattoo, error)
	FeaturedInSection(ctx context.Context, section string) ([]content.Tattoo, error)
	AllTags(ctx context.Context) ([]string, error)
	IncrementViews(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id string, increment bool) error
}

// Query narrows a public tattoo listing.
type Query struct {
	Style    string
	Featured bool
	Tags     []string
}

// Service coordinates tattoo-related operations.
type Service interface {
	List(ctx context.Context, q Query) ([]content.Tattoo, error)
	ListAdmin(ctx context.Context, status string) ([]content.Tattoo, error)
	Get(ctx context.Context, id string) (content.Tattoo, error)
	Create(ctx context.Context, in content.TattooInput) (content.Tattoo, error)
	Update(ctx context.Context, id string, p content.TattooPatch) (content.Tattoo, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) ([]content.Tattoo, error)
	ByTags(ctx context.Context, tags []string) ([]content.Tattoo, error)
	Featured(ctx context.Context) ([]content.Tattoo, error)
	InSection(ctx context.Context, section string) ([]content.Tattoo, error)
	Tags(ctx context.Context) ([]string, error)
	View(ctx context.Context, id string) error
	Like(ctx context.Context, id string, increment bool) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

// List applies the public visibility rule: only published pieces.
func (s *service) List(ctx context.Context, q Query) ([]content.Tattoo, error) {
	f := store.Filter{PublishedOnly: true, FeaturedOnly: q.Featured, Tags: q.Tags}
	if q.Style != "" && q.Style != "all" {
		f.Eq = map[string]string{"style": q.Style}
	}
	return s.store.List(ctx, f)
}

// ListAdmin lists pieces across all statuses, optionally pinned to one.
func (s *service) ListAdmin(ctx context.Context, status string) ([]content.Tattoo, error) {
	f := store.Filter{}
	if status != "" && status != "all" {
		f.Eq = map[string]string{"status": status}
	}
	return s.store.List(ctx, f)
}

func (s *service) Get(ctx context.Context, id string) (content.Tattoo, error) {
	return s.store.ByID(ctx, id)
}

func (s *service) Create(ctx context.Context, in content.TattooInput) (content.Tattoo, error) {
	return s.store.Create(ctx, in)
}

func (s *service) Update(ctx context.Context, id string, p content.TattooPatch) (content.Tattoo, error) {
	return s.store.Update(ctx, id, p)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *service) Search(ctx context.Context, term string) ([]content.Tattoo, error) {
	return s.store.Search(ctx, term)
}

func (s *service) ByTags(ctx context.Context, tags []string) ([]content.Tattoo, error) {
	return s.store.ByTags(ctx, tags)
}

func (s *service) Featured(ctx context.Context) ([]content.Tattoo, error) {
	return s.store.Featured(ctx)
}

func (s *service) InSection(ctx context.Context, section string) ([]content.Tattoo, error) {
	return s.store.FeaturedInSection(ctx, section)
}

func (s *service) Tags(ctx context.Context) ([]string, error) {
	return s.store.AllTags(ctx)
}

func (s *service) View(ctx context.Context, id string) error {
	return s.store.IncrementViews(ctx, id)
}

func (s *service) Like(ctx context.Context, id string, increment bool) error {
	return s.store.ToggleLike(ctx, id, increment)
}
