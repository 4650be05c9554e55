package menu

// handleAction executes the command named by an action item. Several
// actions pop or replace stack frames themselves; all of them are total.
func (e *Engine) handleAction(item Item) {
	switch item.Action {
	case ActionSetColor:
		e.dispatch.SetTheme(item.ID)
		e.Back()

	case ActionAuth:
		e.dispatch.ToggleAuth()
		e.Back()

	case ActionPlayNow:
		if e.pending == nil {
			return
		}
		e.dispatch.PlayNow(*e.pending)
		e.pending = nil
		e.replaceTop(ScreenNowPlaying)

	case ActionAddToQueue:
		if e.pending == nil {
			return
		}
		e.dispatch.Enqueue(*e.pending)
		e.pending = nil
		e.Back()

	case ActionAddToPlaylist:
		if e.pending == nil {
			return
		}
		e.dispatch.StashPending(*e.pending)
		e.pending = nil
		e.replaceTop(ScreenAddToPlaylist)

	case ActionCreatePlaylist, ActionNewPlaylistInline:
		e.push(ScreenCreatePlaylist)

	case ActionPickPlaylist:
		e.dispatch.PlacePending(item.ID)
		// pop past both the picker and the original track-actions frame
		e.Back()
		e.Back()
	}
}
