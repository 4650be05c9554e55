package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/clickpod/clickpod/internal/auth"
	"github.com/clickpod/clickpod/internal/library"
	"github.com/clickpod/clickpod/internal/menu"
	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/player"
	"github.com/clickpod/clickpod/internal/shared"
)

// Suggester serves search completions while the user types.
type Suggester interface {
	Suggest(ctx context.Context, query string) ([]string, error)
}

// Model represents the TUI application state. It owns the navigation
// engine and implements [menu.Dispatcher], so the side effects of menu
// actions land back on the same update loop.
type Model struct {
	ctx        context.Context
	engine     *menu.Engine
	controller *player.Controller
	lib        *library.Library
	authn      *auth.Authenticator
	suggester  Suggester
	cfg        *shared.Config
	logger     *log.Logger

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	palette *Palette
	theme   string

	width  int
	height int

	searchInput textinput.Model
	nameInput   textinput.Model
	suggestions []string
	suggestSeq  uint64
	browsing    bool

	// commands produced by dispatcher callbacks during engine.Select
	queued []tea.Cmd

	err error
}

var _ menu.Dispatcher = (*Model)(nil)

// NewModel creates the TUI model with the provided dependencies. The
// authenticator and suggester may be nil; their features degrade to
// no-ops.
func NewModel(
	ctx context.Context,
	cfg *shared.Config,
	controller *player.Controller,
	lib *library.Library,
	authn *auth.Authenticator,
	suggester Suggester,
	logger *log.Logger,
) *Model {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	theme := cfg.UI.Theme
	if theme == "" {
		theme = DefaultTheme
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "Search music"
	searchInput.CharLimit = 100

	nameInput := textinput.New()
	nameInput.Placeholder = "Playlist name"
	nameInput.CharLimit = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctx:         ctx,
		controller:  controller,
		lib:         lib,
		authn:       authn,
		suggester:   suggester,
		cfg:         cfg,
		logger:      logger,
		keys:        newKeyMap(),
		help:        help.New(),
		spinner:     sp,
		palette:     themePalette(theme),
		theme:       theme,
		searchInput: searchInput,
		nameInput:   nameInput,
	}
	m.engine = menu.NewEngine(menu.NewRegistry(), m, menu.WithLoadingDelay(cfg.UI.LoadingDelay()))
	return m
}

// Engine exposes the navigation engine, mainly for tests.
func (m *Model) Engine() *menu.Engine { return m.engine }

// Theme returns the active shell theme id.
func (m *Model) Theme() string { return m.theme }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case loadingDoneMsg:
		m.engine.CompleteLoading(msg.generation)
		return m, m.refreshCurrent()

	case spinner.TickMsg:
		if !m.engine.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case dataMsg:
		if msg.err != nil {
			m.logger.Warn("failed to load screen data", "screen", msg.screen, "err", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.engine.UpdateScreenItems(msg.screen, msg.items)
		return m, nil

	case searchResultsMsg:
		items := make([]menu.Item, len(msg.tracks))
		for i, t := range msg.tracks {
			items[i] = menu.TrackItem(t)
		}
		m.engine.UpdateScreenItems(menu.ScreenSearch, items)
		m.browsing = true
		m.searchInput.Blur()
		m.suggestions = nil
		return m, nil

	case debounceMsg:
		if msg.seq != m.suggestSeq {
			return m, nil
		}
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" || m.suggester == nil {
			m.suggestions = nil
			return m, nil
		}
		return m, m.fetchSuggestions(msg.seq, query)

	case suggestMsg:
		if msg.seq != m.suggestSeq {
			return m, nil
		}
		m.suggestions = msg.suggestions
		return m, nil

	case signInMsg:
		if msg.err != nil {
			m.logger.Warn("sign-in failed", "err", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.logger.Info("signed in", "user", msg.user.Name)
		return m, nil

	case tickMsg:
		if m.controller.IsPlaying() {
			return m, m.tick()
		}
		return m, nil
	}

	return m, nil
}

// handleKeys routes keys by the active screen: text-entry screens get the
// raw keystrokes, everything else is click-wheel navigation.
func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := m.engine.CurrentID()

	if cur == menu.ScreenCreatePlaylist {
		return m.handleNameKeys(msg)
	}
	if cur == menu.ScreenSearch && !m.browsing {
		return m.handleSearchKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		m.controller.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.up):
		m.engine.Scroll(-1)
		return m, nil

	case key.Matches(msg, m.keys.down):
		m.engine.Scroll(1)
		return m, nil

	case key.Matches(msg, m.keys.enter):
		return m.selectCurrent()

	case key.Matches(msg, m.keys.back):
		if cur == menu.ScreenSearch && m.browsing {
			m.browsing = false
			m.searchInput.Focus()
			return m, textinput.Blink
		}
		if cur == menu.ScreenAddToPlaylist {
			// abandoning the picker drops the waiting track
			m.lib.ClearStash()
		}
		m.engine.Back()
		return m, m.refreshCurrent()

	case key.Matches(msg, m.keys.play):
		m.controller.TogglePlay()
		if m.controller.IsPlaying() {
			return m, m.tick()
		}
		return m, nil

	case key.Matches(msg, m.keys.next):
		if cur == menu.ScreenNowPlaying {
			m.controller.Next()
		}
		return m, nil

	case key.Matches(msg, m.keys.prev):
		if cur == menu.ScreenNowPlaying {
			m.controller.Prev()
			return m, nil
		}
		m.engine.Back()
		return m, m.refreshCurrent()

	case key.Matches(msg, m.keys.fav):
		if cur == menu.ScreenNowPlaying {
			if track := m.controller.CurrentTrack(); track != nil {
				if _, err := m.lib.ToggleFavorite(*track); err != nil {
					m.logger.Warn("failed to toggle favorite", "track", track.ID, "err", err)
					m.err = err
				}
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.edit):
		if cur == menu.ScreenSearch {
			m.browsing = false
			m.searchInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	}

	return m, nil
}

// selectCurrent activates the item under the cursor and schedules the
// loading timer when the engine starts a transition.
func (m *Model) selectCurrent() (tea.Model, tea.Cmd) {
	transition := m.engine.Select()

	var cmds []tea.Cmd
	if transition.Loading {
		gen := transition.Generation
		cmds = append(cmds,
			m.spinner.Tick,
			tea.Tick(transition.Delay, func(time.Time) tea.Msg {
				return loadingDoneMsg{generation: gen}
			}),
		)
	} else {
		cmds = append(cmds, m.refreshCurrent())
	}

	if queued := m.takeQueued(); queued != nil {
		cmds = append(cmds, queued)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.controller.Close()
		return m, tea.Quit

	case "esc":
		m.searchInput.Blur()
		m.engine.Back()
		return m, m.refreshCurrent()

	case "enter":
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			return m, nil
		}
		m.suggestSeq++
		m.suggestions = nil
		return m, m.runSearch(query)

	case "down", "up":
		if len(m.engine.Current().Items) > 0 {
			m.browsing = true
			m.searchInput.Blur()
		}
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.searchInput.Value() != before {
		m.suggestSeq++
		seq := m.suggestSeq
		debounce := tea.Tick(m.cfg.UI.SuggestDebounce(), func(time.Time) tea.Msg {
			return debounceMsg{seq: seq}
		})
		return m, tea.Batch(cmd, debounce)
	}
	return m, cmd
}

func (m *Model) handleNameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.controller.Close()
		return m, tea.Quit

	case "esc":
		m.nameInput.Reset()
		m.nameInput.Blur()
		m.engine.Back()
		return m, m.refreshCurrent()

	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		pl, err := m.lib.CreatePlaylist(name)
		if err != nil {
			m.logger.Warn("failed to create playlist", "err", err)
			m.err = err
			return m, nil
		}
		m.err = nil
		m.nameInput.Reset()
		m.nameInput.Blur()
		// In the add-to-playlist flow a track is waiting: drop it into
		// the new playlist and leave the picker frame too, so the user
		// lands back where the track was chosen.
		if m.lib.Stashed() != nil {
			if err := m.lib.PlaceStashed(pl.ID); err != nil {
				m.logger.Warn("failed to place track", "playlist", pl.ID, "err", err)
				m.err = err
			}
			m.engine.Back()
		}
		m.engine.Back()
		return m, m.refreshCurrent()
	}

	if !m.nameInput.Focused() {
		m.nameInput.Focus()
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// refreshCurrent publishes fresh items for the active screen when it is
// backed by live data. Static screens return nil.
func (m *Model) refreshCurrent() tea.Cmd {
	id := m.engine.CurrentID()

	switch {
	case id == menu.ScreenQueue:
		// queue state is in memory, publish synchronously
		tracks := m.controller.QueueTracks()
		items := make([]menu.Item, len(tracks))
		for i, t := range tracks {
			items[i] = menu.TrackItem(t)
		}
		m.engine.UpdateScreenItems(menu.ScreenQueue, items)
		return nil

	case id == menu.ScreenFavorites:
		return m.fetchFavorites()

	case id == menu.ScreenPlaylists:
		return m.fetchPlaylists()

	case id == menu.ScreenAddToPlaylist:
		return m.fetchPlaylistPicker()

	case strings.HasPrefix(string(id), "playlist_detail_"):
		return m.fetchPlaylistDetail(strings.TrimPrefix(string(id), "playlist_detail_"), id)

	case id == menu.ScreenSearch:
		if !m.browsing {
			m.searchInput.Focus()
		}
		return textinput.Blink

	case id == menu.ScreenCreatePlaylist:
		m.nameInput.Focus()
		return textinput.Blink

	case id == menu.ScreenNowPlaying:
		if m.controller.IsPlaying() {
			return m.tick()
		}
		return nil
	}
	return nil
}

func (m *Model) fetchFavorites() tea.Cmd {
	return func() tea.Msg {
		tracks, err := m.lib.Favorites()
		if err != nil {
			return dataMsg{screen: menu.ScreenFavorites, err: err}
		}
		items := make([]menu.Item, len(tracks))
		for i, t := range tracks {
			items[i] = menu.TrackItem(t)
		}
		return dataMsg{screen: menu.ScreenFavorites, items: items}
	}
}

func (m *Model) fetchPlaylists() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.lib.Playlists()
		if err != nil {
			return dataMsg{screen: menu.ScreenPlaylists, err: err}
		}

		items := make([]menu.Item, 0, len(playlists)+1)
		for _, p := range playlists {
			items = append(items, menu.Item{
				ID:       p.ID,
				Label:    p.Name,
				Sublabel: fmt.Sprintf("%d tracks", len(p.Tracks)),
				Kind:     menu.KindApp,
			})
		}
		items = append(items, menu.Item{
			ID:     "createPlaylist",
			Label:  "New Playlist...",
			Kind:   menu.KindAction,
			Action: menu.ActionCreatePlaylist,
		})
		return dataMsg{screen: menu.ScreenPlaylists, items: items}
	}
}

func (m *Model) fetchPlaylistPicker() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.lib.Playlists()
		if err != nil {
			return dataMsg{screen: menu.ScreenAddToPlaylist, err: err}
		}

		items := make([]menu.Item, 0, len(playlists)+1)
		for _, p := range playlists {
			items = append(items, menu.Item{
				ID:     p.ID,
				Label:  p.Name,
				Kind:   menu.KindAction,
				Action: menu.ActionPickPlaylist,
			})
		}
		items = append(items, menu.Item{
			ID:     "newPlaylistInline",
			Label:  "New Playlist...",
			Kind:   menu.KindAction,
			Action: menu.ActionNewPlaylistInline,
		})
		return dataMsg{screen: menu.ScreenAddToPlaylist, items: items}
	}
}

func (m *Model) fetchPlaylistDetail(playlistID string, screen menu.ScreenID) tea.Cmd {
	return func() tea.Msg {
		playlist, err := m.lib.Playlist(playlistID)
		if err != nil {
			return dataMsg{screen: screen, err: err}
		}
		items := make([]menu.Item, len(playlist.Tracks))
		for i, t := range playlist.Tracks {
			items[i] = menu.TrackItem(t)
		}
		return dataMsg{screen: screen, items: items}
	}
}

func (m *Model) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		tracks := m.lib.Search(m.ctx, query)
		return searchResultsMsg{query: query, tracks: tracks}
	}
}

func (m *Model) fetchSuggestions(seq uint64, query string) tea.Cmd {
	return func() tea.Msg {
		suggestions, err := m.suggester.Suggest(m.ctx, query)
		if err != nil {
			// cosmetic, show nothing
			return suggestMsg{seq: seq}
		}
		return suggestMsg{seq: seq, suggestions: suggestions}
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.Player.PollInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.queued = append(m.queued, cmd)
	}
}

func (m *Model) takeQueued() tea.Cmd {
	if len(m.queued) == 0 {
		return nil
	}
	cmds := m.queued
	m.queued = nil
	return tea.Batch(cmds...)
}

// PlayNow implements menu.Dispatcher.
func (m *Model) PlayNow(t models.Track) {
	m.controller.Play(t)
	m.queue(m.tick())
}

// Enqueue implements menu.Dispatcher.
func (m *Model) Enqueue(t models.Track) {
	m.controller.Enqueue(t)
	m.queue(m.tick())
}

// SetTheme implements menu.Dispatcher.
func (m *Model) SetTheme(id string) {
	m.theme = id
	m.palette = themePalette(id)
}

// ToggleAuth implements menu.Dispatcher. Sign-out also restores the
// default theme, matching a device reset to factory appearance.
func (m *Model) ToggleAuth() {
	if m.authn == nil {
		m.logger.Warn("sign-in not configured")
		return
	}

	if m.authn.IsAuthenticated() {
		m.authn.SignOut()
		m.SetTheme(DefaultTheme)
		return
	}

	m.queue(func() tea.Msg {
		user, err := m.authn.SignIn(m.ctx)
		return signInMsg{user: user, err: err}
	})
}

// StashPending implements menu.Dispatcher.
func (m *Model) StashPending(t models.Track) {
	m.lib.Stash(t)
}

// PlacePending implements menu.Dispatcher.
func (m *Model) PlacePending(playlistID string) {
	if err := m.lib.PlaceStashed(playlistID); err != nil {
		m.logger.Warn("failed to place track", "playlist", playlistID, "err", err)
		m.err = err
	}
}
