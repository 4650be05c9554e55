package search

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/shared"
)

type stubProvider struct {
	name   string
	tracks []models.Track
	err    error
	calls  int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Search(_ context.Context, _ string) ([]models.Track, error) {
	s.calls++
	return s.tracks, s.err
}

func someTracks(n int) []models.Track {
	out := make([]models.Track, n)
	for i := range out {
		out[i] = models.Track{ID: fmt.Sprintf("vid%d", i), Title: fmt.Sprintf("Track %d", i), Artist: "Artist"}
	}
	return out
}

func TestResolverResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("first success short-circuits", func(t *testing.T) {
		first := &stubProvider{name: "a", tracks: someTracks(3)}
		second := &stubProvider{name: "b", tracks: someTracks(3)}
		r := NewResolverWithProviders([]Provider{first, second}, time.Second, 15, nil)

		got := r.Resolve(ctx, "query")
		if len(got) != 3 {
			t.Fatalf("expected 3 tracks, got %d", len(got))
		}
		if first.calls != 1 || second.calls != 0 {
			t.Errorf("expected only first provider called, got %d/%d", first.calls, second.calls)
		}
	})

	t.Run("failed provider falls through in order", func(t *testing.T) {
		first := &stubProvider{name: "a", err: fmt.Errorf("%w: down", shared.ErrProviderFailed)}
		second := &stubProvider{name: "b", tracks: someTracks(1)}
		r := NewResolverWithProviders([]Provider{first, second}, time.Second, 15, nil)

		got := r.Resolve(ctx, "query")
		if len(got) != 1 || got[0].ID != "vid0" {
			t.Fatalf("expected second provider's track, got %v", got)
		}
		if first.calls != 1 || second.calls != 1 {
			t.Errorf("expected both providers called once, got %d/%d", first.calls, second.calls)
		}
	})

	t.Run("empty result counts as failure", func(t *testing.T) {
		first := &stubProvider{name: "a"}
		second := &stubProvider{name: "b", tracks: someTracks(2)}
		r := NewResolverWithProviders([]Provider{first, second}, time.Second, 15, nil)

		got := r.Resolve(ctx, "query")
		if len(got) != 2 {
			t.Fatalf("expected fallthrough past empty provider, got %v", got)
		}
	})

	t.Run("items without id are dropped", func(t *testing.T) {
		first := &stubProvider{name: "a", tracks: []models.Track{
			{ID: "", Title: "ghost"},
			{ID: "real", Title: "Real"},
		}}
		r := NewResolverWithProviders([]Provider{first}, time.Second, 15, nil)

		got := r.Resolve(ctx, "query")
		if len(got) != 1 || got[0].ID != "real" {
			t.Fatalf("expected only the id-bearing track, got %v", got)
		}
	})

	t.Run("result truncated to limit", func(t *testing.T) {
		first := &stubProvider{name: "a", tracks: someTracks(40)}
		r := NewResolverWithProviders([]Provider{first}, time.Second, 15, nil)

		got := r.Resolve(ctx, "query")
		if len(got) != 15 {
			t.Fatalf("expected 15 tracks, got %d", len(got))
		}
	})

	t.Run("exhausted chain serves fallback", func(t *testing.T) {
		first := &stubProvider{name: "a", err: fmt.Errorf("%w: down", shared.ErrProviderFailed)}
		second := &stubProvider{name: "b", err: fmt.Errorf("%w: down", shared.ErrProviderFailed)}
		r := NewResolverWithProviders([]Provider{first, second}, time.Second, 15, nil)

		got := r.Resolve(ctx, "query")
		want := Fallback()
		if len(got) != len(want) {
			t.Fatalf("expected fallback set of %d, got %d", len(want), len(got))
		}
		if got[0].ID != want[0].ID {
			t.Errorf("expected fallback track %q, got %q", want[0].ID, got[0].ID)
		}
	})

	t.Run("blank query serves fallback without contacting providers", func(t *testing.T) {
		first := &stubProvider{name: "a", tracks: someTracks(3)}
		r := NewResolverWithProviders([]Provider{first}, time.Second, 15, nil)

		got := r.Resolve(ctx, "   ")
		if len(got) != len(Fallback()) {
			t.Fatalf("expected fallback set, got %d tracks", len(got))
		}
		if first.calls != 0 {
			t.Errorf("expected no provider calls for blank query, got %d", first.calls)
		}
	})
}

func TestNewResolverChainOrder(t *testing.T) {
	cfg := shared.SearchConfig{
		PipedInstances:     []string{"https://piped.example"},
		InvidiousInstances: []string{"https://inv.example"},
		YouTubeAPIKey:      "key",
	}
	r := NewResolver(cfg, nil, nil)

	if len(r.providers) != 3 {
		t.Fatalf("expected 3 providers, got %d", len(r.providers))
	}
	if got := r.providers[0].Name(); got != "piped:https://piped.example" {
		t.Errorf("expected piped first, got %q", got)
	}
	if got := r.providers[1].Name(); got != "invidious:https://inv.example" {
		t.Errorf("expected invidious second, got %q", got)
	}
	if got := r.providers[2].Name(); got != "youtube-data-api" {
		t.Errorf("expected data api last, got %q", got)
	}
}

func TestNewResolverSkipsDataAPIWithoutKey(t *testing.T) {
	cfg := shared.SearchConfig{PipedInstances: []string{"https://piped.example"}}
	r := NewResolver(cfg, nil, nil)

	if len(r.providers) != 1 {
		t.Fatalf("expected 1 provider without an api key, got %d", len(r.providers))
	}
}

func TestNormalize(t *testing.T) {
	t.Run("placeholders fill missing fields", func(t *testing.T) {
		tr := normalize("abc", "", "", "")
		if tr.Title != "Unknown" {
			t.Errorf("expected placeholder title, got %q", tr.Title)
		}
		if tr.Artist != "Unknown Artist" {
			t.Errorf("expected placeholder artist, got %q", tr.Artist)
		}
		if tr.Thumbnail != "https://img.youtube.com/vi/abc/default.jpg" {
			t.Errorf("unexpected synthesized thumbnail %q", tr.Thumbnail)
		}
	})

	t.Run("explicit fields pass through", func(t *testing.T) {
		tr := normalize("abc", "Song", "Band", "https://cdn.example/t.jpg")
		if tr.Title != "Song" || tr.Artist != "Band" || tr.Thumbnail != "https://cdn.example/t.jpg" {
			t.Errorf("unexpected track %+v", tr)
		}
	})
}

func TestFallbackReturnsCopy(t *testing.T) {
	a := Fallback()
	a[0].Title = "mutated"

	b := Fallback()
	if b[0].Title == "mutated" {
		t.Error("expected Fallback to return an independent copy")
	}
}
