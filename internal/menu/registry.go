package menu

// Registry maps screen ids to their definitions. Each Engine owns one
// Registry instance so independent sessions never share screen state.
//
// Dynamic playlist-detail entries are never removed, even if the backing
// playlist is later deleted; a dangling id simply renders empty.
type Registry map[ScreenID]*Screen

// NewRegistry returns a registry populated with the static screens.
func NewRegistry() Registry {
	return Registry{
		ScreenMain: {
			Title: "iPod",
			Items: []Item{
				{ID: string(ScreenCoverFlow), Label: "Cover Flow", Kind: KindLink},
				{ID: string(ScreenMusic), Label: "Music", Kind: KindMenu},
				{ID: string(ScreenSettings), Label: "Settings", Kind: KindMenu},
				{ID: string(ScreenNowPlaying), Label: "Now Playing", Kind: KindLink},
			},
		},
		ScreenMusic: {
			Title: "Music",
			Items: []Item{
				{ID: string(ScreenQueue), Label: "Queue", Kind: KindApp},
				{ID: string(ScreenFavorites), Label: "Favorites", Kind: KindApp},
				{ID: string(ScreenPlaylists), Label: "Playlists", Kind: KindApp},
				{ID: string(ScreenSearch), Label: "Search", Kind: KindApp},
			},
		},
		ScreenSettings: {
			Title: "Settings",
			Items: []Item{
				{ID: string(ScreenAbout), Label: "About", Kind: KindLink},
				{ID: string(ScreenColorTheme), Label: "Color Theme", Kind: KindMenu},
				{ID: "auth", Label: "Sign In / Out", Kind: KindAction, Action: ActionAuth},
			},
		},
		ScreenColorTheme: {
			Title: "Color",
			Items: []Item{
				{ID: "silver", Label: "Silver", Kind: KindAction, Action: ActionSetColor},
				{ID: "black", Label: "Black", Kind: KindAction, Action: ActionSetColor},
				{ID: "red", Label: "Red", Kind: KindAction, Action: ActionSetColor},
				{ID: "blue", Label: "Blue", Kind: KindAction, Action: ActionSetColor},
				{ID: "purple", Label: "Purple", Kind: KindAction, Action: ActionSetColor},
			},
		},
		ScreenAbout:      {Title: "About"},
		ScreenCoverFlow:  {Title: "Cover Flow"},
		ScreenNowPlaying: {Title: "Now Playing"},
		ScreenFavorites:  {Title: "Favorites"},
		ScreenQueue:      {Title: "Queue"},
		ScreenPlaylists:  {Title: "Playlists"},
		ScreenSearch:     {Title: "Search"},
		ScreenTrackActions: {
			Title: "Track Options",
			Items: []Item{
				{ID: "playNow", Label: "Play Now", Kind: KindAction, Action: ActionPlayNow},
				{ID: "addToPlaylist", Label: "Add to Playlist", Kind: KindAction, Action: ActionAddToPlaylist},
			},
		},
		ScreenAddToPlaylist:  {Title: "Add to Playlist"},
		ScreenCreatePlaylist: {Title: "New Playlist"},
	}
}

// Get looks up a screen definition.
func (r Registry) Get(id ScreenID) (*Screen, bool) {
	s, ok := r[id]
	return s, ok
}

// Register adds an empty screen with the given title if the id is not
// already present. Existing definitions are kept.
func (r Registry) Register(id ScreenID, title string) {
	if _, ok := r[id]; ok {
		return
	}
	r[id] = &Screen{Title: title}
}

// SetItems replaces a screen's item list in place. Unknown ids are a no-op.
// Calling it repeatedly with an unchanged list has no visible effect.
func (r Registry) SetItems(id ScreenID, items []Item) {
	s, ok := r[id]
	if !ok {
		return
	}
	s.Items = items
}
