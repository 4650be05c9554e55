package library

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/repositories"
	"github.com/clickpod/clickpod/internal/shared"
)

type countingResolver struct {
	tracks []models.Track
	calls  int
}

func (c *countingResolver) Resolve(_ context.Context, _ string) []models.Track {
	c.calls++
	return c.tracks
}

func setupLibrary(t *testing.T, resolver Resolver) (*Library, *sql.DB) {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	lib := New(
		repositories.NewPlaylistRepository(db),
		repositories.NewFavoriteRepository(db),
		repositories.NewSearchCacheRepository(db, time.Hour),
		resolver,
		nil,
	)
	return lib, db
}

func TestLibraryPlaylists(t *testing.T) {
	t.Run("create and list", func(t *testing.T) {
		lib, _ := setupLibrary(t, &countingResolver{})

		p, err := lib.CreatePlaylist("  Road Trip  ")
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if p.Name != "Road Trip" {
			t.Errorf("expected trimmed name, got %q", p.Name)
		}

		all, err := lib.Playlists()
		if err != nil {
			t.Fatalf("failed to list playlists: %v", err)
		}
		if len(all) != 1 {
			t.Fatalf("expected 1 playlist, got %d", len(all))
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		lib, _ := setupLibrary(t, &countingResolver{})
		if _, err := lib.CreatePlaylist("   "); err == nil {
			t.Error("expected error for blank name")
		}
	})

	t.Run("add and remove track", func(t *testing.T) {
		lib, _ := setupLibrary(t, &countingResolver{})

		p, err := lib.CreatePlaylist("Mix")
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		track := models.Track{ID: "abc", Title: "Song", Artist: "Band"}
		if err := lib.AddToPlaylist(p.ID, track); err != nil {
			t.Fatalf("failed to add track: %v", err)
		}
		if err := lib.AddToPlaylist(p.ID, track); !errors.Is(err, shared.ErrDuplicateTrack) {
			t.Errorf("expected ErrDuplicateTrack, got %v", err)
		}

		if err := lib.RemoveFromPlaylist(p.ID, "abc"); err != nil {
			t.Fatalf("failed to remove track: %v", err)
		}
		got, err := lib.Playlist(p.ID)
		if err != nil {
			t.Fatalf("failed to get playlist: %v", err)
		}
		if len(got.Tracks) != 0 {
			t.Errorf("expected empty playlist, got %d tracks", len(got.Tracks))
		}
	})
}

func TestLibraryFavorites(t *testing.T) {
	lib, _ := setupLibrary(t, &countingResolver{})
	track := models.Track{ID: "abc", Title: "Song", Artist: "Band"}

	on, err := lib.ToggleFavorite(track)
	if err != nil || !on {
		t.Fatalf("expected first toggle to favorite, got %v/%v", on, err)
	}

	has, err := lib.IsFavorite("abc")
	if err != nil || !has {
		t.Errorf("expected track favorited, got %v/%v", has, err)
	}

	on, err = lib.ToggleFavorite(track)
	if err != nil || on {
		t.Fatalf("expected second toggle to unfavorite, got %v/%v", on, err)
	}

	favorites, err := lib.Favorites()
	if err != nil {
		t.Fatalf("failed to list favorites: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("expected no favorites, got %d", len(favorites))
	}
}

func TestLibrarySearch(t *testing.T) {
	ctx := context.Background()

	t.Run("caches provider results", func(t *testing.T) {
		resolver := &countingResolver{tracks: []models.Track{{ID: "abc", Title: "Song", Artist: "Band"}}}
		lib, _ := setupLibrary(t, resolver)

		first := lib.Search(ctx, "song")
		second := lib.Search(ctx, "song")
		if len(first) != 1 || len(second) != 1 {
			t.Fatalf("unexpected results %v / %v", first, second)
		}
		if resolver.calls != 1 {
			t.Errorf("expected the resolver hit once, got %d", resolver.calls)
		}
	})

	t.Run("blank query bypasses the cache", func(t *testing.T) {
		resolver := &countingResolver{}
		lib, _ := setupLibrary(t, resolver)

		lib.Search(ctx, "  ")
		lib.Search(ctx, "")
		if resolver.calls != 2 {
			t.Errorf("expected resolver hit per blank query, got %d", resolver.calls)
		}
	})
}

func TestLibraryStash(t *testing.T) {
	t.Run("stash then place", func(t *testing.T) {
		lib, _ := setupLibrary(t, &countingResolver{})

		p, err := lib.CreatePlaylist("Target")
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		lib.Stash(models.Track{ID: "abc", Title: "Song", Artist: "Band"})
		if got := lib.Stashed(); got == nil || got.ID != "abc" {
			t.Fatalf("expected stashed track, got %v", got)
		}

		if err := lib.PlaceStashed(p.ID); err != nil {
			t.Fatalf("failed to place stashed track: %v", err)
		}
		if lib.Stashed() != nil {
			t.Error("expected stash cleared after placement")
		}

		got, err := lib.Playlist(p.ID)
		if err != nil {
			t.Fatalf("failed to get playlist: %v", err)
		}
		if len(got.Tracks) != 1 || got.Tracks[0].ID != "abc" {
			t.Errorf("expected placed track, got %v", got.Tracks)
		}
	})

	t.Run("second stash overwrites", func(t *testing.T) {
		lib, _ := setupLibrary(t, &countingResolver{})

		lib.Stash(models.Track{ID: "old", Title: "Old", Artist: "B"})
		lib.Stash(models.Track{ID: "new", Title: "New", Artist: "B"})
		if got := lib.Stashed(); got == nil || got.ID != "new" {
			t.Errorf("expected last stash to win, got %v", got)
		}
	})

	t.Run("place without a stash errors", func(t *testing.T) {
		lib, _ := setupLibrary(t, &countingResolver{})
		if err := lib.PlaceStashed("pl_x"); err == nil {
			t.Error("expected error placing with an empty stash")
		}
	})

	t.Run("failed place still clears the stash", func(t *testing.T) {
		lib, _ := setupLibrary(t, &countingResolver{})

		lib.Stash(models.Track{ID: "abc", Title: "Song", Artist: "Band"})
		if err := lib.PlaceStashed("pl_missing"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
		}
		if lib.Stashed() != nil {
			t.Error("expected stash cleared even on failure")
		}
	})
}
