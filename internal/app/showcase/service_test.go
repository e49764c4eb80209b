package showcase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"inkbeat/internal/content"
)

type fakeMusicStore struct {
	sections map[string][]content.Music
	tagged   []content.Music
	tags     []string
	err      error
}

func (f *fakeMusicStore) FeaturedInSection(_ context.Context, section string) ([]content.Music, error) {
	return f.sections[section], f.err
}

func (f *fakeMusicStore) ByTags(context.Context, []string) ([]content.Music, error) {
	return f.tagged, f.err
}

func (f *fakeMusicStore) AllTags(context.Context) ([]string, error) {
	return f.tags, f.err
}

type fakeTattooStore struct {
	sections map[string][]content.Tattoo
	tagged   []content.Tattoo
	tags     []string
	err      error
}

func (f *fakeTattooStore) FeaturedInSection(_ context.Context, section string) ([]content.Tattoo, error) {
	return f.sections[section], f.err
}

func (f *fakeTattooStore) ByTags(context.Context, []string) ([]content.Tattoo, error) {
	return f.tagged, f.err
}

func (f *fakeTattooStore) AllTags(context.Context) ([]string, error) {
	return f.tags, f.err
}

type fakeNewsStore struct {
	sections map[string][]content.News
	tagged   []content.News
	tags     []string
	err      error
}

func (f *fakeNewsStore) FeaturedInSection(_ context.Context, section string) ([]content.News, error) {
	return f.sections[section], f.err
}

func (f *fakeNewsStore) ByTags(context.Context, []string) ([]content.News, error) {
	return f.tagged, f.err
}

func (f *fakeNewsStore) AllTags(context.Context) ([]string, error) {
	return f.tags, f.err
}

func TestFeaturedForHomepageQueriesKindSlots(t *testing.T) {
	musicStore := &fakeMusicStore{sections: map[string][]content.Music{
		"hero": {{ID: "m1", Title: "Midnight"}},
	}}
	tattooStore := &fakeTattooStore{sections: map[string][]content.Tattoo{
		"gallery": {{ID: "t1", Title: "Compass"}},
	}}
	newsStore := &fakeNewsStore{sections: map[string][]content.News{
		"latest": {{ID: "n1", Title: "Expansion"}},
	}}

	svc := New(musicStore, tattooStore, newsStore)

	got, err := svc.FeaturedForHomepage(context.Background())
	if err != nil {
		t.Fatalf("FeaturedForHomepage error: %v", err)
	}

	if len(got.Music) != 1 || got.Music[0].ID != "m1" {
		t.Fatalf("expected hero slot music, got %+v", got.Music)
	}
	if len(got.Tattoos) != 1 || got.Tattoos[0].ID != "t1" {
		t.Fatalf("expected gallery slot tattoos, got %+v", got.Tattoos)
	}
	if len(got.News) != 1 || got.News[0].ID != "n1" {
		t.Fatalf("expected latest slot news, got %+v", got.News)
	}
}

func TestFeaturedForHomepageFailsFast(t *testing.T) {
	boom := errors.New("database down")
	musicStore := &fakeMusicStore{sections: map[string][]content.Music{}}
	tattooStore := &fakeTattooStore{err: boom}
	newsStore := &fakeNewsStore{sections: map[string][]content.News{}}

	svc := New(musicStore, tattooStore, newsStore)

	got, err := svc.FeaturedForHomepage(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if got.Music != nil || got.Tattoos != nil || got.News != nil {
		t.Fatalf("expected zero value on error, got %+v", got)
	}
}

func TestByTagsSpansAllKinds(t *testing.T) {
	musicStore := &fakeMusicStore{tagged: []content.Music{{ID: "m1"}}}
	tattooStore := &fakeTattooStore{tagged: []content.Tattoo{{ID: "t1"}}}
	newsStore := &fakeNewsStore{tagged: []content.News{}}

	svc := New(musicStore, tattooStore, newsStore)

	got, err := svc.ByTags(context.Background(), []string{"blackwork"})
	if err != nil {
		t.Fatalf("ByTags error: %v", err)
	}
	if len(got.Music) != 1 || len(got.Tattoos) != 1 || len(got.News) != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestAllTagsUnionsSortedAndDeduped(t *testing.T) {
	musicStore := &fakeMusicStore{tags: []string{"ambient", "electronic"}}
	tattooStore := &fakeTattooStore{tags: []string{"blackwork", "ambient"}}
	newsStore := &fakeNewsStore{tags: []string{"studio"}}

	svc := New(musicStore, tattooStore, newsStore)

	got, err := svc.AllTags(context.Background())
	if err != nil {
		t.Fatalf("AllTags error: %v", err)
	}

	want := []string{"ambient", "blackwork", "electronic", "studio"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
