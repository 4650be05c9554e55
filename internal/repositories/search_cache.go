package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/clickpod/clickpod/internal/models"
)

// SearchCacheRepository memoizes resolver results per query so repeated
// searches skip the provider chain entirely while the entry is fresh.
type SearchCacheRepository struct {
	db  *sql.DB
	ttl time.Duration
}

// NewSearchCacheRepository creates a cache repository. A non-positive ttl
// disables expiry.
func NewSearchCacheRepository(db *sql.DB, ttl time.Duration) *SearchCacheRepository {
	return &SearchCacheRepository{db: db, ttl: ttl}
}

// Get returns the cached tracks for a query, or (nil, false) on a miss or
// an expired entry. Corrupt entries count as misses.
func (r *SearchCacheRepository) Get(query string) ([]models.Track, bool) {
	var payload string
	var cachedAt time.Time

	err := r.db.QueryRow(
		`SELECT results, cached_at FROM search_cache WHERE query = ?`, query,
	).Scan(&payload, &cachedAt)
	if err != nil {
		return nil, false
	}

	if r.ttl > 0 && time.Since(cachedAt) > r.ttl {
		return nil, false
	}

	var tracks []models.Track
	if err := json.Unmarshal([]byte(payload), &tracks); err != nil {
		return nil, false
	}
	return tracks, true
}

// Put stores resolver results for a query, replacing any previous entry.
func (r *SearchCacheRepository) Put(query string, tracks []models.Track) error {
	payload, err := json.Marshal(tracks)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	_, err = r.db.Exec(
		`INSERT INTO search_cache (query, results, cached_at) VALUES (?, ?, ?)
		 ON CONFLICT(query) DO UPDATE SET results = excluded.results, cached_at = excluded.cached_at`,
		query, string(payload), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to store results: %w", err)
	}
	return nil
}

// Prune deletes expired entries. With expiry disabled it does nothing.
func (r *SearchCacheRepository) Prune() error {
	if r.ttl <= 0 {
		return nil
	}
	cutoff := time.Now().Add(-r.ttl)
	if _, err := r.db.Exec(`DELETE FROM search_cache WHERE cached_at < ?`, cutoff); err != nil {
		return fmt.Errorf("failed to prune cache: %w", err)
	}
	return nil
}
