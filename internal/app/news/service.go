package news

import (
	"context"

	"inkbeat/internal/content"
	"inkbeat/internal/store"
)

// Store captures the persistence needs for news workflows.
type Store interface {
	List(ctx context.Context, f store.Filter) ([]content.News, error)
	ByID(ctx context.Context, id string) (content.News, error)
	Create(ctx context.Context, in content.NewsInput) (content.News, error)
	Update(ctx context.Context, id string, p content.NewsPatch) (content.News, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) ([]content.News, error)
	ByTags(ctx context.Context, tags []string) ([]content.News, error)
	Featured(ctx context.Context) ([]content.News, error)
	FeaturedInSection(ctx context.Context, section string) ([]content.News, error)
	AllTags(ctx context.Context) ([]string, error)
}

// Query narrows a public news listing.
type Query struct {
	Category string
	Featured bool
	Tags     []string
}

// Service coordinates news-related operations.
type Service interface {
	List(ctx context.Context, q Query) ([]content.News, error)
	ListAdmin(ctx context.Context, status string) ([]content.News, error)
	Get(ctx context.Context, id string) (content.News, error)
	Create(ctx context.Context, in content.NewsInput) (content.News, error)
	Update(ctx context.Context, id string, p content.NewsPatch) (content.News, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) ([]content.News, error)
	ByTags(ctx context.Context, tags []string) ([]content.News, error)
	Featured(ctx context.Context) ([]content.News, error)
	InSection(ctx context.Context, section string) ([]content.News, error)
	Tags(ctx context.Context) ([]string, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

// List applies the public visibility rule: only published articles.
func (s *service) List(ctx context.Context, q Query) ([]content.News, error) {
	f := store.Filter{PublishedOnly: true, FeaturedOnly: q.Featured, Tags: q.Tags}
	if q.Category != "" && q.Category != "all" {
		f.Eq = map[string]string{"category": q.Category}
	}
	return s.store.List(ctx, f)
}

// ListAdmin lists articles across all statuses, optionally pinned to one.
func (s *service) ListAdmin(ctx context.Context, status string) ([]content.News, error) {
	f := store.Filter{}
	if status != "" && status != "all" {
		f.Eq = map[string]string{"status": status}
	}
	return s.store.List(ctx, f)
}

func (s *service) Get(ctx context.Context, id string) (content.News, error) {
	return s.store.ByID(ctx, id)
}

func (s *service) Create(ctx context.Context, in content.NewsInput) (content.News, error) {
	return s.store.Create(ctx, in)
}

func (s *service) Update(ctx context.Context, id string, p content.NewsPatch) (content.News, error) {
	return s.store.Update(ctx, id, p)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *service) Search(ctx context.Context, term string) ([]content.News, error) {
	return s.store.Search(ctx, term)
}

func (s *service) ByTags(ctx context.Context, tags []string) ([]content.News, error) {
	return s.store.ByTags(ctx, tags)
}

func (s *service) Featured(ctx context.Context) ([]content.News, error) {
	return s.store.Featured(ctx)
}

func (s *service) InSection(ctx context.Context, section string) ([]content.News, error) {
	return s.store.FeaturedInSection(ctx, section)
}

func (s *service) Tags(ctx context.Context) ([]string, error) {
	return s.store.AllTags(ctx)
}
