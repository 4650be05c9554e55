package ui

import (
	"time"

	"github.com/clickpod/clickpod/internal/menu"
	"github.com/clickpod/clickpod/internal/models"
)

// loadingDoneMsg fires when a screen's deliberate loading delay elapses.
// The generation lets the engine ignore timers armed for an abandoned
// transition.
type loadingDoneMsg struct {
	generation uint64
}

// dataMsg carries freshly computed items for a data-backed screen.
type dataMsg struct {
	screen menu.ScreenID
	items  []menu.Item
	err    error
}

// searchResultsMsg carries resolved tracks for the search screen.
type searchResultsMsg struct {
	query  string
	tracks []models.Track
}

// debounceMsg fires after the suggestion quiet period. The sequence lets
// stale timers from earlier keystrokes fall through harmlessly.
type debounceMsg struct {
	seq uint64
}

// suggestMsg carries completions for the query typed at sequence seq.
// Only the latest sequence wins; an older fetch landing late is dropped.
type suggestMsg struct {
	seq         uint64
	suggestions []string
}

// signInMsg reports the outcome of an asynchronous sign-in flow.
type signInMsg struct {
	user *models.User
	err  error
}

// tickMsg drives the now-playing progress refresh while playback runs.
type tickMsg time.Time
