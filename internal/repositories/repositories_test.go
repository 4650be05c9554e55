package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func sampleTrack(id string) models.Track {
	return models.Track{ID: id, Title: "Track " + id, Artist: "Artist", Thumbnail: ""}
}

func TestPlaylistRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		playlist, err := repo.Create("Road Trip")
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		if !strings.HasPrefix(playlist.ID, "pl_") {
			t.Errorf("expected pl_ prefixed id, got %q", playlist.ID)
		}
		if playlist.Name != "Road Trip" {
			t.Errorf("expected name preserved, got %q", playlist.Name)
		}
	})

	t.Run("Create rejects blank name", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		if _, err := repo.Create("   "); err == nil {
			t.Error("expected validation error for blank name")
		}
	})

	t.Run("Get returns tracks in insertion order", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		playlist, err := repo.Create("Ordered")
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		for _, id := range []string{"c", "a", "b"} {
			if err := repo.AddTrack(playlist.ID, sampleTrack(id)); err != nil {
				t.Fatalf("failed to add track %s: %v", id, err)
			}
		}

		got, err := repo.Get(playlist.ID)
		if err != nil {
			t.Fatalf("failed to get playlist: %v", err)
		}
		if len(got.Tracks) != 3 {
			t.Fatalf("expected 3 tracks, got %d", len(got.Tracks))
		}
		for i, want := range []string{"c", "a", "b"} {
			if got.Tracks[i].ID != want {
				t.Errorf("track %d: expected %q, got %q", i, want, got.Tracks[i].ID)
			}
		}
	})

	t.Run("Get missing playlist", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		if _, err := repo.Get("pl_missing"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("AddTrack rejects duplicates", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		playlist, err := repo.Create("Dedup")
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		if err := repo.AddTrack(playlist.ID, sampleTrack("x")); err != nil {
			t.Fatalf("first add failed: %v", err)
		}
		if err := repo.AddTrack(playlist.ID, sampleTrack("x")); !errors.Is(err, shared.ErrDuplicateTrack) {
			t.Errorf("expected ErrDuplicateTrack, got %v", err)
		}

		got, err := repo.Get(playlist.ID)
		if err != nil {
			t.Fatalf("failed to get playlist: %v", err)
		}
		if len(got.Tracks) != 1 {
			t.Errorf("expected playlist unchanged after duplicate add, got %d tracks", len(got.Tracks))
		}
	})

	t.Run("AddTrack to missing playlist", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		err := repo.AddTrack("pl_missing", sampleTrack("x"))
		if !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("RemoveTrack", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		playlist, err := repo.Create("Shrink")
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if err := repo.AddTrack(playlist.ID, sampleTrack("x")); err != nil {
			t.Fatalf("failed to add track: %v", err)
		}

		if err := repo.RemoveTrack(playlist.ID, "x"); err != nil {
			t.Fatalf("failed to remove track: %v", err)
		}
		if err := repo.RemoveTrack(playlist.ID, "x"); err != nil {
			t.Errorf("removing an absent track should not error, got %v", err)
		}

		got, err := repo.Get(playlist.ID)
		if err != nil {
			t.Fatalf("failed to get playlist: %v", err)
		}
		if len(got.Tracks) != 0 {
			t.Errorf("expected empty playlist, got %d tracks", len(got.Tracks))
		}
	})

	t.Run("List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		for _, name := range []string{"First", "Second"} {
			if _, err := repo.Create(name); err != nil {
				t.Fatalf("failed to create %s: %v", name, err)
			}
		}

		playlists, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list playlists: %v", err)
		}
		if len(playlists) != 2 {
			t.Fatalf("expected 2 playlists, got %d", len(playlists))
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		playlist, err := repo.Create("Doomed")
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if err := repo.AddTrack(playlist.ID, sampleTrack("x")); err != nil {
			t.Fatalf("failed to add track: %v", err)
		}

		if err := repo.Delete(playlist.ID); err != nil {
			t.Fatalf("failed to delete playlist: %v", err)
		}
		if _, err := repo.Get(playlist.ID); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound after delete, got %v", err)
		}
		if err := repo.Delete(playlist.ID); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound on second delete, got %v", err)
		}
	})
}

func TestFavoriteRepository(t *testing.T) {
	t.Run("Add and List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFavoriteRepository(db)
		if err := repo.Add(sampleTrack("a")); err != nil {
			t.Fatalf("failed to add favorite: %v", err)
		}
		if err := repo.Add(sampleTrack("b")); err != nil {
			t.Fatalf("failed to add favorite: %v", err)
		}

		tracks, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list favorites: %v", err)
		}
		if len(tracks) != 2 {
			t.Fatalf("expected 2 favorites, got %d", len(tracks))
		}
	})

	t.Run("Add is idempotent", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFavoriteRepository(db)
		if err := repo.Add(sampleTrack("a")); err != nil {
			t.Fatalf("first add failed: %v", err)
		}
		if err := repo.Add(sampleTrack("a")); err != nil {
			t.Errorf("duplicate add should be a no-op, got %v", err)
		}

		tracks, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list favorites: %v", err)
		}
		if len(tracks) != 1 {
			t.Errorf("expected 1 favorite, got %d", len(tracks))
		}
	})

	t.Run("Contains and Remove", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFavoriteRepository(db)
		if err := repo.Add(sampleTrack("a")); err != nil {
			t.Fatalf("failed to add favorite: %v", err)
		}

		got, err := repo.Contains("a")
		if err != nil || !got {
			t.Errorf("expected favorite present, got %v/%v", got, err)
		}

		if err := repo.Remove("a"); err != nil {
			t.Fatalf("failed to remove favorite: %v", err)
		}
		got, err = repo.Contains("a")
		if err != nil || got {
			t.Errorf("expected favorite absent, got %v/%v", got, err)
		}
		if err := repo.Remove("a"); err != nil {
			t.Errorf("removing an absent favorite should not error, got %v", err)
		}
	})
}

func TestSearchCacheRepository(t *testing.T) {
	t.Run("miss then hit", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSearchCacheRepository(db, time.Hour)
		if _, ok := repo.Get("beatles"); ok {
			t.Fatal("expected miss for unseen query")
		}

		want := []models.Track{sampleTrack("a"), sampleTrack("b")}
		if err := repo.Put("beatles", want); err != nil {
			t.Fatalf("failed to store results: %v", err)
		}

		got, ok := repo.Get("beatles")
		if !ok {
			t.Fatal("expected hit after Put")
		}
		if len(got) != 2 || got[0].ID != "a" {
			t.Errorf("unexpected cached tracks %v", got)
		}
	})

	t.Run("Put replaces previous entry", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSearchCacheRepository(db, time.Hour)
		if err := repo.Put("q", []models.Track{sampleTrack("old")}); err != nil {
			t.Fatalf("failed to store results: %v", err)
		}
		if err := repo.Put("q", []models.Track{sampleTrack("new")}); err != nil {
			t.Fatalf("failed to replace results: %v", err)
		}

		got, ok := repo.Get("q")
		if !ok || len(got) != 1 || got[0].ID != "new" {
			t.Errorf("expected replaced entry, got %v/%v", got, ok)
		}
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSearchCacheRepository(db, time.Millisecond)
		if err := repo.Put("q", []models.Track{sampleTrack("a")}); err != nil {
			t.Fatalf("failed to store results: %v", err)
		}

		time.Sleep(5 * time.Millisecond)
		if _, ok := repo.Get("q"); ok {
			t.Error("expected expired entry to miss")
		}

		if err := repo.Prune(); err != nil {
			t.Fatalf("failed to prune: %v", err)
		}
		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM search_cache`).Scan(&count); err != nil {
			t.Fatalf("failed to count cache rows: %v", err)
		}
		if count != 0 {
			t.Errorf("expected pruned cache, got %d rows", count)
		}
	})
}
