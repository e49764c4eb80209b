// Package showcase composes the three content collections for queries that
// are not pinned to a single kind: the homepage feature slots, cross-type
// tag lookups, and the site-wide tag index.
package showcase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"inkbeat/internal/content"
)

// Homepage placement slots, one per content kind.
const (
	MusicSection  = "hero"
	TattooSection = "gallery"
	NewsSection   = "latest"
)

// MusicStore is the slice of the music repository the aggregator needs.
type MusicStore interface {
	FeaturedInSection(ctx context.Context, section string) ([]content.Music, error)
	ByTags(ctx context.Context, tags []string) ([]content.Music, error)
	AllTags(ctx context.Context) ([]string, error)
}

// TattooStore is the slice of the tattoo repository the aggregator needs.
type TattooStore interface {
	FeaturedInSection(ctx context.Context, section string) ([]content.Tattoo, error)
	ByTags(ctx context.Context, tags []string) ([]content.Tattoo, error)
	AllTags(ctx context.Context) ([]string, error)
}

// NewsStore is the slice of the news repository the aggregator needs.
type NewsStore interface {
	FeaturedInSection(ctx context.Context, section string) ([]content.News, error)
	ByTags(ctx context.Context, tags []string) ([]content.News, error)
	AllTags(ctx context.Context) ([]string, error)
}

// FeaturedContent holds the homepage feature slots keyed by kind.
type FeaturedContent struct {
	Music   []content.Music  `json:"music"`
	Tattoos []content.Tattoo `json:"tattoos"`
	News    []content.News   `json:"news"`
}

// TaggedContent holds a cross-type tag lookup keyed by kind.
type TaggedContent struct {
	Music   []content.Music  `json:"music"`
	Tattoos []content.Tattoo `json:"tattoos"`
	News    []content.News   `json:"news"`
}

// Service answers cross-type content queries.
type Service interface {
	FeaturedForHomepage(ctx context.Context) (FeaturedContent, error)
	ByTags(ctx context.Context, tags []string) (TaggedContent, error)
	AllTags(ctx context.Context) ([]string, error)
}

type service struct {
	music   MusicStore
	tattoos TattooStore
	news    NewsStore
}

// New composes the three per-kind stores into an aggregator.
func New(music MusicStore, tattoos TattooStore, news NewsStore) Service {
	return &service{music: music, tattoos: tattoos, news: news}
}

// FeaturedForHomepage fetches each kind's placement slot. The three queries
// run concurrently; any failure fails the whole call rather than returning a
// partial result.
func (s *service) FeaturedForHomepage(ctx context.Context) (FeaturedContent, error) {
	var fc FeaturedContent

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fc.Music, err = s.music.FeaturedInSection(ctx, MusicSection)
		return err
	})
	g.Go(func() error {
		var err error
		fc.Tattoos, err = s.tattoos.FeaturedInSection(ctx, TattooSection)
		return err
	})
	g.Go(func() error {
		var err error
		fc.News, err = s.news.FeaturedInSection(ctx, NewsSection)
		return err
	})
	if err := g.Wait(); err != nil {
		return FeaturedContent{}, err
	}

	return fc, nil
}

// ByTags runs the same overlap lookup against all three collections.
func (s *service) ByTags(ctx context.Context, tags []string) (TaggedContent, error) {
	var tc TaggedContent

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tc.Music, err = s.music.ByTags(ctx, tags)
		return err
	})
	g.Go(func() error {
		var err error
		tc.Tattoos, err = s.tattoos.ByTags(ctx, tags)
		return err
	})
	g.Go(func() error {
		var err error
		tc.News, err = s.news.ByTags(ctx, tags)
		return err
	})
	if err := g.Wait(); err != nil {
		return TaggedContent{}, err
	}

	return tc, nil
}

// AllTags unions the per-kind tag indexes into one sorted, de-duplicated
// list.
func (s *service) AllTags(ctx context.Context) ([]string, error) {
	perKind := make([][]string, 3)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		perKind[0], err = s.music.AllTags(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		perKind[1], err = s.tattoos.AllTags(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		perKind[2], err = s.news.AllTags(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, tags := range perKind {
		for _, tag := range tags {
			seen[tag] = struct{}{}
		}
	}
	merged := make([]string, 0, len(seen))
	for tag := range seen {
		merged = append(merged, tag)
	}
	sort.Strings(merged)
	return merged, nil
}
