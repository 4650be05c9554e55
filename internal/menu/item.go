package menu

import "github.com/clickpod/clickpod/internal/models"

// ScreenID identifies a screen in the registry.
//
// Static screens exist from startup; dynamic playlist-detail screens are
// registered lazily the first time they are navigated to.
type ScreenID string

const (
	ScreenMain           ScreenID = "main"
	ScreenMusic          ScreenID = "music"
	ScreenSettings       ScreenID = "settings"
	ScreenAbout          ScreenID = "about"
	ScreenColorTheme     ScreenID = "color_theme"
	ScreenCoverFlow      ScreenID = "coverflow"
	ScreenNowPlaying     ScreenID = "nowplaying"
	ScreenFavorites      ScreenID = "favorites"
	ScreenQueue          ScreenID = "queue"
	ScreenPlaylists      ScreenID = "playlists"
	ScreenSearch         ScreenID = "search"
	ScreenTrackActions   ScreenID = "trackActions"
	ScreenAddToPlaylist  ScreenID = "addToPlaylist"
	ScreenCreatePlaylist ScreenID = "createPlaylistInput"
)

const (
	playlistIDPrefix   = "pl_"
	detailScreenPrefix = "playlist_detail_"
)

// IsPlaylistID reports whether an item id denotes a user-created playlist.
func IsPlaylistID(id string) bool {
	return len(id) > len(playlistIDPrefix) && id[:len(playlistIDPrefix)] == playlistIDPrefix
}

// DetailScreenID returns the dynamic screen id for a playlist's detail view.
func DetailScreenID(playlistID string) ScreenID {
	return ScreenID(detailScreenPrefix + playlistID)
}

// ItemKind is a closed set of variants governing how Select interprets an
// item. The zero value is inert: selecting it is a no-op.
type ItemKind int

const (
	KindNone   ItemKind = iota
	KindMenu            // push a static screen
	KindApp             // push a screen backed by externally supplied items
	KindLink            // navigate to a registered screen without implying hierarchy
	KindAction          // invoke a side-effecting command
	KindTrack           // playable item, enters the track-action flow
	KindBack            // pop the stack
)

// ActionID names a command dispatched by the action handler.
type ActionID string

const (
	ActionSetColor          ActionID = "setColor"
	ActionAuth              ActionID = "auth"
	ActionPlayNow           ActionID = "playNow"
	ActionAddToQueue        ActionID = "addToQueue"
	ActionAddToPlaylist     ActionID = "addToPlaylist"
	ActionCreatePlaylist    ActionID = "createPlaylist"
	ActionNewPlaylistInline ActionID = "newPlaylistInline"
	ActionPickPlaylist      ActionID = "pickPlaylist"
)

// Item is a single row on a screen.
type Item struct {
	ID       string
	Label    string
	Sublabel string
	Kind     ItemKind
	Action   ActionID      // set when Kind is KindAction
	Track    *models.Track // set when Kind is KindTrack
}

// TrackItem builds a selectable item for a playable track.
func TrackItem(t models.Track) Item {
	return Item{
		ID:       t.ID,
		Label:    t.Title,
		Sublabel: t.Artist,
		Kind:     KindTrack,
		Track:    &t,
	}
}

// Screen is a titled, ordered item list.
type Screen struct {
	Title string
	Items []Item
}
