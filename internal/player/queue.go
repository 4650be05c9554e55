// package player owns the playback queue, transport state and progress polling
package player

import "github.com/clickpod/clickpod/internal/models"

// Queue is an ordered track sequence with a cursor into it. The cursor is
// -1 while the queue is empty; the track at the cursor is "current".
type Queue struct {
	tracks []models.Track
	cursor int
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{cursor: -1}
}

// Current returns the track at the cursor, or nil.
func (q *Queue) Current() *models.Track {
	if q.cursor < 0 || q.cursor >= len(q.tracks) {
		return nil
	}
	return &q.tracks[q.cursor]
}

// Cursor returns the cursor position (-1 when empty).
func (q *Queue) Cursor() int { return q.cursor }

// Len returns the number of queued tracks.
func (q *Queue) Len() int { return len(q.tracks) }

// IsEmpty reports whether the queue holds no tracks.
func (q *Queue) IsEmpty() bool { return len(q.tracks) == 0 }

// Tracks returns a copy of the queued tracks in order.
func (q *Queue) Tracks() []models.Track {
	out := make([]models.Track, len(q.tracks))
	copy(out, q.tracks)
	return out
}

// Append adds a track to the end of the queue. When the queue was empty
// the cursor moves to the new track and Append reports true, meaning
// playback should start.
func (q *Queue) Append(t models.Track) bool {
	q.tracks = append(q.tracks, t)
	if q.cursor < 0 {
		q.cursor = 0
		return true
	}
	return false
}

// Replace discards the queue and starts over with the given track as a
// fresh single-track queue.
func (q *Queue) Replace(t models.Track) {
	q.tracks = []models.Track{t}
	q.cursor = 0
}

// Next advances the cursor and returns the new current track, or nil when
// already at the end.
func (q *Queue) Next() *models.Track {
	if q.cursor+1 >= len(q.tracks) {
		return nil
	}
	q.cursor++
	return q.Current()
}

// Prev moves the cursor back and returns the new current track, or nil
// when already at the start.
func (q *Queue) Prev() *models.Track {
	if q.cursor-1 < 0 {
		return nil
	}
	q.cursor--
	return q.Current()
}

// RemoveAt deletes the track at index, adjusting the cursor. Removing the
// current track leaves the cursor on the next track, clamped to the new
// end; emptying the queue resets it to -1. Out-of-range indexes report
// false.
func (q *Queue) RemoveAt(index int) bool {
	if index < 0 || index >= len(q.tracks) {
		return false
	}
	q.tracks = append(q.tracks[:index], q.tracks[index+1:]...)

	switch {
	case len(q.tracks) == 0:
		q.cursor = -1
	case index < q.cursor:
		q.cursor--
	case index == q.cursor && q.cursor >= len(q.tracks):
		q.cursor = len(q.tracks) - 1
	}
	return true
}

// Clear removes all tracks and resets the cursor.
func (q *Queue) Clear() {
	q.tracks = nil
	q.cursor = -1
}
