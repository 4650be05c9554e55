// package repositories provides the SQLite persistence layer for the
// music library.
//
// Playlists, favorites and the recent-search cache each get their own
// repository over a shared *sql.DB. Repositories return the sentinel
// errors from internal/shared so callers can branch with errors.Is.
package repositories
