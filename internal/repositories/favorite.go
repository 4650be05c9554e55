package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/clickpod/clickpod/internal/models"
)

// FavoriteRepository persists the flat favorites list, keyed by track id.
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new FavoriteRepository with the given database connection
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add marks a track as a favorite. Favoriting an already-favorited track
// is a no-op.
func (r *FavoriteRepository) Add(track models.Track) error {
	if err := track.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	_, err := r.db.Exec(
		`INSERT INTO favorites (track_id, title, artist, thumbnail, created_at) VALUES (?, ?, ?, ?, ?)`,
		track.ID, track.Title, track.Artist, track.Thumbnail, time.Now(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil
		}
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	return nil
}

// Remove unfavorites a track. Missing rows are not an error.
func (r *FavoriteRepository) Remove(trackID string) error {
	if _, err := r.db.Exec(`DELETE FROM favorites WHERE track_id = ?`, trackID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// Contains reports whether a track is favorited.
func (r *FavoriteRepository) Contains(trackID string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM favorites WHERE track_id = ?`, trackID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// List retrieves all favorites, most recent first.
func (r *FavoriteRepository) List() ([]models.Track, error) {
	rows, err := r.db.Query(
		`SELECT track_id, title, artist, thumbnail FROM favorites ORDER BY created_at DESC, track_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var tracks []models.Track
	for rows.Next() {
		var t models.Track
		if err := rows.Scan(&t.ID, &t.Title, &t.Artist, &t.Thumbnail); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}
	return tracks, nil
}
