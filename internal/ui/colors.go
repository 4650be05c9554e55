package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// DefaultTheme is the shell color applied at startup and restored on
// sign-out.
const DefaultTheme = "silver"

// Palette is a simple stylesheet built with named [lipgloss.Style] fields.
type Palette struct {
	title    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	sub      lipgloss.Style
	ok       lipgloss.Style
	err      lipgloss.Style
	help     lipgloss.Style
}

func NewPalette(accent, text, muted string) *Palette {
	return &Palette{
		title:    NewBold(accent).MarginBottom(1),
		item:     NewStyle(text),
		selected: NewBold(text).Background(lipgloss.Color(accent)),
		sub:      NewStyle(muted),
		ok:       NewBold("#04B575"),
		err:      NewBold("#FF0000"),
		help:     NewEm(muted),
	}
}

// themes is the shell color catalogue offered by the settings menu.
var themes = map[string]*Palette{
	"silver": NewPalette("#C0C0C0", "#FAFAFA", "#626262"),
	"black":  NewPalette("#3A3A3A", "#D0D0D0", "#5F5F5F"),
	"red":    NewPalette("#D70000", "#FAFAFA", "#875F5F"),
	"blue":   NewPalette("#005FD7", "#FAFAFA", "#5F87AF"),
	"purple": NewPalette("#7D56F4", "#FAFAFA", "#8787AF"),
}

// themePalette resolves a theme id, falling back to the default for
// unknown ids.
func themePalette(id string) *Palette {
	if p, ok := themes[id]; ok {
		return p
	}
	return themes[DefaultTheme]
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
