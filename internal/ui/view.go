package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/clickpod/clickpod/internal/menu"
)

const progressBarWidth = 24

// View renders the UI for the active screen.
func (m *Model) View() string {
	if m.engine.Loading() {
		return m.renderLoading()
	}

	switch m.engine.CurrentID() {
	case menu.ScreenNowPlaying:
		return m.renderNowPlaying()
	case menu.ScreenCoverFlow:
		return m.renderCoverFlow()
	case menu.ScreenAbout:
		return m.renderAbout()
	case menu.ScreenSearch:
		return m.renderSearch()
	case menu.ScreenCreatePlaylist:
		return m.renderNameInput()
	default:
		return m.renderMenu()
	}
}

func (m *Model) renderLoading() string {
	return fmt.Sprintf("\n  %s Loading...\n", m.spinner.View())
}

func (m *Model) renderMenu() string {
	screen := m.engine.Current()
	var b strings.Builder

	b.WriteString(m.palette.title.Render(screen.Title))
	b.WriteString("\n")

	if len(screen.Items) == 0 {
		b.WriteString(m.palette.sub.Render("  (empty)"))
		b.WriteString("\n")
	}

	for i, item := range screen.Items {
		line := item.Label
		if item.Sublabel != "" {
			line = fmt.Sprintf("%s  %s", item.Label, m.palette.sub.Render(item.Sublabel))
		}
		if i == m.engine.SelectedIndex() {
			b.WriteString(m.palette.selected.Render(" > " + line))
		} else {
			b.WriteString(m.palette.item.Render("   " + line))
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.palette.err.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) renderNowPlaying() string {
	var b strings.Builder
	b.WriteString(m.palette.title.Render("Now Playing"))
	b.WriteString("\n")

	track := m.controller.CurrentTrack()
	if track == nil {
		b.WriteString(m.palette.sub.Render("  Nothing playing"))
		b.WriteString("\n\n")
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
		return b.String()
	}

	state := "||"
	if m.controller.IsPlaying() {
		state = ">"
	}

	title := track.Title
	if fav, err := m.lib.IsFavorite(track.ID); err == nil && fav {
		title += " ♥"
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", state, m.palette.item.Bold(true).Render(title)))
	b.WriteString(fmt.Sprintf("     %s\n\n", m.palette.sub.Render(track.Artist)))

	progress := m.controller.Progress()
	b.WriteString(fmt.Sprintf("  %s\n", renderBar(progress.Current, progress.Duration)))
	b.WriteString(fmt.Sprintf("  %s / %s\n", formatClock(progress.Current), formatClock(progress.Duration)))

	queue := m.controller.QueueTracks()
	if len(queue) > 0 {
		b.WriteString(m.palette.sub.Render(fmt.Sprintf("\n  Track %d of %d", m.controller.Cursor()+1, len(queue))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.palette.help.Render("space play/pause · f favorite · →/← next/prev · esc menu"))
	return b.String()
}

func (m *Model) renderCoverFlow() string {
	var b strings.Builder
	b.WriteString(m.palette.title.Render("Cover Flow"))
	b.WriteString("\n")

	tracks := m.controller.QueueTracks()
	if len(tracks) == 0 {
		b.WriteString(m.palette.sub.Render("  Queue something to browse covers"))
		b.WriteString("\n")
	}

	for i, t := range tracks {
		marker := "   "
		if i == m.controller.Cursor() {
			marker = " > "
		}
		b.WriteString(fmt.Sprintf("%s[ %s ]\n", marker, m.palette.item.Render(t.Title)))
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) renderAbout() string {
	var b strings.Builder
	b.WriteString(m.palette.title.Render("About"))
	b.WriteString("\n")
	b.WriteString(m.palette.item.Render("  clickpod"))
	b.WriteString("\n")
	b.WriteString(m.palette.sub.Render("  A click-wheel music player for the terminal"))
	b.WriteString("\n")

	if m.authn != nil {
		if user := m.authn.Current(); user != nil {
			b.WriteString(m.palette.sub.Render(fmt.Sprintf("  Signed in as %s", user.Name)))
		} else {
			b.WriteString(m.palette.sub.Render("  Not signed in"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(m.palette.title.Render("Search"))
	b.WriteString("\n  ")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n")

	for _, s := range m.suggestions {
		b.WriteString(m.palette.sub.Render("    " + s))
		b.WriteString("\n")
	}

	items := m.engine.Current().Items
	if len(items) > 0 {
		b.WriteString("\n")
		for i, item := range items {
			line := fmt.Sprintf("%s  %s", item.Label, m.palette.sub.Render(item.Sublabel))
			if m.browsing && i == m.engine.SelectedIndex() {
				b.WriteString(m.palette.selected.Render(" > " + line))
			} else {
				b.WriteString(m.palette.item.Render("   " + line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.browsing {
		b.WriteString(m.palette.help.Render("enter select · / edit query · esc back"))
	} else {
		b.WriteString(m.palette.help.Render("enter search · esc back"))
	}
	return b.String()
}

func (m *Model) renderNameInput() string {
	var b strings.Builder
	b.WriteString(m.palette.title.Render("New Playlist"))
	b.WriteString("\n  ")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.palette.help.Render("enter create · esc cancel"))
	return b.String()
}

// renderBar draws a fixed-width progress bar.
func renderBar(current, duration time.Duration) string {
	filled := 0
	if duration > 0 {
		filled = int(float64(progressBarWidth) * float64(current) / float64(duration))
		if filled > progressBarWidth {
			filled = progressBarWidth
		}
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
