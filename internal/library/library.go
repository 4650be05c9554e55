// package library is the service layer over the persisted music library.
//
// It wraps the SQLite repositories with the operations the navigation and
// UI layers need: playlist management, the favorites list, cache-backed
// search and the one-slot stash used while a track waits for the user to
// pick a destination playlist.
package library

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/repositories"
	"github.com/clickpod/clickpod/internal/shared"
)

// Resolver is the search dependency, satisfied by *search.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, query string) []models.Track
}

// Library coordinates playlists, favorites and search over one database.
type Library struct {
	playlists *repositories.PlaylistRepository
	favorites *repositories.FavoriteRepository
	cache     *repositories.SearchCacheRepository
	resolver  Resolver
	logger    *log.Logger

	mu      sync.Mutex
	stashed *models.Track
}

// New creates a Library. The cache repository may be nil to disable
// search memoization.
func New(
	playlists *repositories.PlaylistRepository,
	favorites *repositories.FavoriteRepository,
	cache *repositories.SearchCacheRepository,
	resolver Resolver,
	logger *log.Logger,
) *Library {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Library{
		playlists: playlists,
		favorites: favorites,
		cache:     cache,
		resolver:  resolver,
		logger:    logger,
	}
}

// CreatePlaylist creates a named empty playlist. The name is trimmed and
// must be non-blank.
func (l *Library) CreatePlaylist(name string) (*models.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("playlist name is required")
	}
	return l.playlists.Create(name)
}

// Playlists returns all playlists with their tracks.
func (l *Library) Playlists() ([]*models.Playlist, error) {
	return l.playlists.List()
}

// Playlist returns one playlist by id.
func (l *Library) Playlist(id string) (*models.Playlist, error) {
	return l.playlists.Get(id)
}

// AddToPlaylist appends a track to a playlist, rejecting duplicates.
func (l *Library) AddToPlaylist(playlistID string, track models.Track) error {
	return l.playlists.AddTrack(playlistID, track)
}

// RemoveFromPlaylist deletes a track from a playlist.
func (l *Library) RemoveFromPlaylist(playlistID, trackID string) error {
	return l.playlists.RemoveTrack(playlistID, trackID)
}

// DeletePlaylist removes a playlist and its tracks.
func (l *Library) DeletePlaylist(id string) error {
	return l.playlists.Delete(id)
}

// Favorites returns the favorites list, most recent first.
func (l *Library) Favorites() ([]models.Track, error) {
	return l.favorites.List()
}

// ToggleFavorite flips a track's favorite status and reports the new one.
func (l *Library) ToggleFavorite(track models.Track) (bool, error) {
	has, err := l.favorites.Contains(track.ID)
	if err != nil {
		return false, err
	}
	if has {
		return false, l.favorites.Remove(track.ID)
	}
	return true, l.favorites.Add(track)
}

// IsFavorite reports whether a track is favorited.
func (l *Library) IsFavorite(trackID string) (bool, error) {
	return l.favorites.Contains(trackID)
}

// Search resolves a query, consulting the cache first. Provider results
// are cached; the fallback set served for blank queries is not.
func (l *Library) Search(ctx context.Context, query string) []models.Track {
	query = strings.TrimSpace(query)
	if query == "" {
		return l.resolver.Resolve(ctx, query)
	}

	if l.cache != nil {
		if tracks, ok := l.cache.Get(query); ok {
			l.logger.Debug("search cache hit", "query", query)
			return tracks
		}
	}

	tracks := l.resolver.Resolve(ctx, query)

	if l.cache != nil {
		if err := l.cache.Put(query, tracks); err != nil {
			l.logger.Warn("failed to cache search results", "query", query, "err", err)
		}
	}
	return tracks
}

// Stash parks a track while the user navigates to pick its destination
// playlist. A second call overwrites the first.
func (l *Library) Stash(track models.Track) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t := track
	l.stashed = &t
}

// Stashed returns the parked track, if any.
func (l *Library) Stashed() *models.Track {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stashed == nil {
		return nil
	}
	t := *l.stashed
	return &t
}

// PlaceStashed moves the parked track into the given playlist and clears
// the stash. The stash clears even when the insert fails, so a stale
// track never lands in a later playlist by accident.
func (l *Library) PlaceStashed(playlistID string) error {
	l.mu.Lock()
	track := l.stashed
	l.stashed = nil
	l.mu.Unlock()

	if track == nil {
		return fmt.Errorf("no track awaiting placement")
	}
	return l.playlists.AddTrack(playlistID, *track)
}

// ClearStash drops the parked track without placing it.
func (l *Library) ClearStash() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stashed = nil
}
