package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/shared"
)

// playlistIDPrefix marks library playlist ids so the navigation layer can
// tell them apart from built-in screen ids.
const playlistIDPrefix = "pl_"

// PlaylistRepository persists playlists and their ordered track lists.
type PlaylistRepository struct {
	db *sql.DB
}

// NewPlaylistRepository creates a new PlaylistRepository with the given database connection
func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create inserts a new empty playlist and returns it with a generated id.
func (r *PlaylistRepository) Create(name string) (*models.Playlist, error) {
	playlist := &models.Playlist{
		ID:   playlistIDPrefix + shared.GenerateID(),
		Name: name,
	}
	if err := playlist.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	_, err := r.db.Exec(
		`INSERT INTO playlists (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		playlist.ID, playlist.Name, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert playlist: %w", err)
	}

	return playlist, nil
}

// Get retrieves a playlist and its tracks in position order.
func (r *PlaylistRepository) Get(id string) (*models.Playlist, error) {
	playlist := &models.Playlist{ID: id}

	err := r.db.QueryRow(`SELECT name FROM playlists WHERE id = ?`, id).Scan(&playlist.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist: %w", err)
	}

	rows, err := r.db.Query(
		`SELECT track_id, title, artist, thumbnail FROM playlist_tracks WHERE playlist_id = ? ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist tracks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Track
		if err := rows.Scan(&t.ID, &t.Title, &t.Artist, &t.Thumbnail); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		playlist.Tracks = append(playlist.Tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tracks: %w", err)
	}

	return playlist, nil
}

// List retrieves all playlists ordered by creation time, tracks included.
func (r *PlaylistRepository) List() ([]*models.Playlist, error) {
	rows, err := r.db.Query(`SELECT id FROM playlists ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan playlist id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate playlists: %w", err)
	}
	rows.Close()

	playlists := make([]*models.Playlist, 0, len(ids))
	for _, id := range ids {
		p, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, nil
}

// AddTrack appends a track to the end of a playlist. Adding a track the
// playlist already holds returns shared.ErrDuplicateTrack and leaves the
// list unchanged.
func (r *PlaylistRepository) AddTrack(playlistID string, track models.Track) error {
	if err := track.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow(`SELECT COUNT(*) FROM playlists WHERE id = ?`, playlistID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check playlist: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}

	var dup int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM playlist_tracks WHERE playlist_id = ? AND track_id = ?`,
		playlistID, track.ID,
	).Scan(&dup)
	if err != nil {
		return fmt.Errorf("failed to check duplicate: %w", err)
	}
	if dup > 0 {
		return fmt.Errorf("%w: %s", shared.ErrDuplicateTrack, track.ID)
	}

	var position int
	err = tx.QueryRow(
		`SELECT COALESCE(MAX(position), -1) + 1 FROM playlist_tracks WHERE playlist_id = ?`,
		playlistID,
	).Scan(&position)
	if err != nil {
		return fmt.Errorf("failed to compute position: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO playlist_tracks (playlist_id, track_id, title, artist, thumbnail, position) VALUES (?, ?, ?, ?, ?, ?)`,
		playlistID, track.ID, track.Title, track.Artist, track.Thumbnail, position,
	)
	if err != nil {
		return fmt.Errorf("failed to insert track: %w", err)
	}

	_, err = tx.Exec(`UPDATE playlists SET updated_at = ? WHERE id = ?`, time.Now(), playlistID)
	if err != nil {
		return fmt.Errorf("failed to touch playlist: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// RemoveTrack deletes a track from a playlist. Missing rows are not an error.
func (r *PlaylistRepository) RemoveTrack(playlistID, trackID string) error {
	_, err := r.db.Exec(
		`DELETE FROM playlist_tracks WHERE playlist_id = ? AND track_id = ?`,
		playlistID, trackID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove track: %w", err)
	}
	return nil
}

// Delete removes a playlist and, via the cascade, its membership rows.
func (r *PlaylistRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM playlists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}
	// SQLite only enforces the cascade with foreign keys on, so clear
	// membership explicitly as well.
	if _, err := r.db.Exec(`DELETE FROM playlist_tracks WHERE playlist_id = ?`, id); err != nil {
		return fmt.Errorf("failed to clear playlist tracks: %w", err)
	}
	return nil
}
