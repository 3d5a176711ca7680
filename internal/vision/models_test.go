package vision

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubLister struct {
	infos []ModelInfo
	err   error
	calls int
}

func (s *stubLister) ListModels(context.Context) ([]ModelInfo, error) {
	s.calls++
	return s.infos, s.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRankModels_SonnetFirstThenNewest(t *testing.T) {
	infos := []ModelInfo{
		{ID: "claude-3-haiku-20240307", CreatedAt: date(2024, 3, 7)},
		{ID: "claude-3-5-sonnet-20240620", CreatedAt: date(2024, 6, 20)},
		{ID: "claude-3-opus-20240229", CreatedAt: date(2024, 2, 29)},
		{ID: "claude-3-5-sonnet-20241022", CreatedAt: date(2024, 10, 22)},
		{ID: "text-embedding-small", CreatedAt: date(2025, 1, 1)},
	}

	got := rankModels(infos)
	want := []string{
		"claude-3-5-sonnet-20241022",
		"claude-3-5-sonnet-20240620",
		"claude-3-haiku-20240307",
		"claude-3-opus-20240229",
	}
	if len(got) != len(want) {
		t.Fatalf("ranked %d models, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rank %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRankModels_FiltersNonVisionModels(t *testing.T) {
	infos := []ModelInfo{
		{ID: "text-embedding-small", CreatedAt: date(2025, 1, 1)},
		{ID: "some-audio-model", CreatedAt: date(2025, 2, 1)},
	}
	if got := rankModels(infos); len(got) != 0 {
		t.Fatalf("ranked = %v, want empty", got)
	}
}

func TestCatalog_FallsBackWhenDiscoveryFails(t *testing.T) {
	lister := &stubLister{err: errors.New("dial tcp: timeout")}
	c := NewCatalog(lister, nil)

	got := c.Models(context.Background())
	if len(got) != len(fallbackModels) {
		t.Fatalf("models = %v, want fallback list", got)
	}
	if got[0] != "claude-3-5-sonnet-20241022" {
		t.Fatalf("preferred = %q, want claude-3-5-sonnet-20241022", got[0])
	}
}

func TestCatalog_CachesWithinTTL(t *testing.T) {
	lister := &stubLister{infos: []ModelInfo{
		{ID: "claude-3-5-sonnet-20241022", CreatedAt: date(2024, 10, 22)},
	}}
	now := date(2026, 8, 10)
	c := NewCatalog(lister, nil, WithCatalogClock(func() time.Time { return now }))
	ctx := context.Background()

	c.Models(ctx)
	now = now.Add(30 * time.Minute)
	c.Models(ctx)
	if lister.calls != 1 {
		t.Fatalf("lister called %d times within ttl, want 1", lister.calls)
	}

	now = now.Add(45 * time.Minute)
	c.Models(ctx)
	if lister.calls != 2 {
		t.Fatalf("lister called %d times after ttl, want 2", lister.calls)
	}
}

func TestCatalog_RefreshBypassesCache(t *testing.T) {
	lister := &stubLister{infos: []ModelInfo{
		{ID: "claude-3-5-sonnet-20241022", CreatedAt: date(2024, 10, 22)},
	}}
	now := date(2026, 8, 10)
	c := NewCatalog(lister, nil, WithCatalogClock(func() time.Time { return now }))
	ctx := context.Background()

	c.Models(ctx)
	c.Refresh(ctx)
	if lister.calls != 2 {
		t.Fatalf("lister called %d times, want 2", lister.calls)
	}
}

func TestCatalog_KeepsStaleCacheOverFallbackOnError(t *testing.T) {
	lister := &stubLister{infos: []ModelInfo{
		{ID: "claude-3-haiku-20240307", CreatedAt: date(2024, 3, 7)},
	}}
	now := date(2026, 8, 10)
	c := NewCatalog(lister, nil, WithCatalogClock(func() time.Time { return now }))
	ctx := context.Background()

	c.Models(ctx)

	// Discovery starts failing after the cache expires. The last known
	// listing is still better than the hardwired defaults.
	lister.infos, lister.err = nil, errors.New("503")
	now = now.Add(2 * time.Hour)
	got := c.Models(ctx)
	if len(got) != 1 || got[0] != "claude-3-haiku-20240307" {
		t.Fatalf("models = %v, want cached listing", got)
	}
}
