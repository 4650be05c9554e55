// Package ui implements the click-wheel shell as a terminal interface
// using bubbletea's Elm architecture.
//
// The [Model] owns a [menu.Engine] and implements [menu.Dispatcher], so
// every side effect a menu action produces (playback, theming, sign-in,
// playlist placement) flows back through the same update loop. Screens
// backed by live data (queue, favorites, playlists) are refreshed with
// async commands each time they become the active screen.
//
// Keyboard navigation mirrors the click wheel: up/down scroll, enter is
// the center button, esc is Menu. The search screen owns the keyboard
// while its text input is focused; typed queries are debounced before a
// suggestion fetch fires, and a sequence number drops stale responses so
// only the latest query's completions render.
package ui
