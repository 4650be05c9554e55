package menu

import (
	"time"

	"github.com/clickpod/clickpod/internal/models"
)

// DefaultLoadingDelay gates entry into screens with a transition cost.
const DefaultLoadingDelay = 1300 * time.Millisecond

// Dispatcher receives the side-effecting commands produced by the action
// handler. The engine itself performs no I/O; collaborators decide what
// play, enqueue and sign-in actually mean.
type Dispatcher interface {
	// PlayNow starts the track as a fresh single-track queue.
	PlayNow(t models.Track)
	// Enqueue appends the track to the queue, starting playback if the
	// queue was empty.
	Enqueue(t models.Track)
	// SetTheme applies the chosen display theme id.
	SetTheme(id string)
	// ToggleAuth signs out when signed in, otherwise initiates sign-in.
	ToggleAuth()
	// StashPending parks a track in the library's awaiting-placement slot.
	StashPending(t models.Track)
	// PlacePending moves the awaiting track into the chosen playlist,
	// deduplicating by track id.
	PlacePending(playlistID string)
}

// Transition describes a pending asynchronous loading phase started by
// Select. The zero value means navigation completed synchronously. The
// host schedules the delay and calls CompleteLoading with the generation;
// a stale generation is ignored, so a torn-down session cannot be mutated
// by a late timer.
type Transition struct {
	Loading    bool
	Generation uint64
	Delay      time.Duration
}

// Engine owns the screen stack, the selection cursor and the single-slot
// pending-track register. Every operation is total: invalid input
// degrades to a no-op, never an error. The engine is driven from a single
// goroutine (the UI update loop) and does no locking of its own.
type Engine struct {
	registry Registry
	dispatch Dispatcher

	path     []ScreenID
	selected int

	loading    bool
	generation uint64
	queued     ScreenID
	delay      time.Duration

	// screens whose entry shows a deliberate loading phase
	slowScreens map[ScreenID]bool

	pending *models.Track
}

// Option configures an Engine.
type Option func(*Engine)

// WithLoadingDelay overrides the loading transition duration.
func WithLoadingDelay(d time.Duration) Option {
	return func(e *Engine) { e.delay = d }
}

// WithSlowScreens overrides the set of screens gated behind a loading phase.
func WithSlowScreens(ids ...ScreenID) Option {
	return func(e *Engine) {
		e.slowScreens = make(map[ScreenID]bool, len(ids))
		for _, id := range ids {
			e.slowScreens[id] = true
		}
	}
}

// NewEngine creates an engine at the initial state: path [main], cursor 0,
// idle. The registry is owned by the engine from here on.
func NewEngine(registry Registry, dispatch Dispatcher, opts ...Option) *Engine {
	e := &Engine{
		registry:    registry,
		dispatch:    dispatch,
		path:        []ScreenID{ScreenMain},
		delay:       DefaultLoadingDelay,
		slowScreens: map[ScreenID]bool{ScreenMusic: true},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CurrentID returns the id of the screen at the top of the stack.
func (e *Engine) CurrentID() ScreenID {
	return e.path[len(e.path)-1]
}

// Current returns the active screen definition. A dangling top-of-stack id
// resolves to the main screen so rendering always has something to show.
func (e *Engine) Current() *Screen {
	if s, ok := e.registry.Get(e.CurrentID()); ok {
		return s
	}
	s, _ := e.registry.Get(ScreenMain)
	return s
}

// Path returns a copy of the screen stack, root first.
func (e *Engine) Path() []ScreenID {
	p := make([]ScreenID, len(e.path))
	copy(p, e.path)
	return p
}

// Depth returns the current stack depth.
func (e *Engine) Depth() int { return len(e.path) }

// SelectedIndex returns the selection cursor for the active screen.
func (e *Engine) SelectedIndex() int { return e.selected }

// Loading reports whether a loading transition is in flight.
func (e *Engine) Loading() bool { return e.loading }

// PendingTrack returns the track parked by the last track selection, or
// nil. The register is overwritten on each new selection and cleared when
// a terminal action consumes it.
func (e *Engine) PendingTrack() *models.Track { return e.pending }

// Registry exposes the engine's screen registry to the presentation layer.
func (e *Engine) Registry() Registry { return e.registry }

// Scroll moves the cursor by direction (-1 or +1), clamped to the active
// screen's item count. It never wraps and stays at 0 on an empty screen.
func (e *Engine) Scroll(direction int) {
	count := len(e.Current().Items)
	if count == 0 {
		e.selected = 0
		return
	}
	next := e.selected + direction
	if next < 0 {
		next = 0
	}
	if next >= count {
		next = count - 1
	}
	e.selected = next
}

// Select dispatches on the kind of the item under the cursor. It is a
// no-op while a loading transition is in flight, on an empty screen, and
// for inert items.
func (e *Engine) Select() Transition {
	if e.loading {
		return Transition{}
	}
	items := e.Current().Items
	if len(items) == 0 || e.selected >= len(items) {
		return Transition{}
	}

	item := items[e.selected]
	switch item.Kind {
	case KindMenu, KindApp:
		return e.enter(item)
	case KindLink:
		if _, ok := e.registry.Get(ScreenID(item.ID)); ok {
			e.push(ScreenID(item.ID))
		}
	case KindBack:
		e.Back()
	case KindAction:
		e.handleAction(item)
	case KindTrack:
		if item.Track != nil {
			t := *item.Track
			e.pending = &t
			e.push(ScreenTrackActions)
		}
	}
	return Transition{}
}

// enter resolves a menu/app item to its target screen, registering
// playlist-detail screens lazily, and starts a loading transition when the
// target has a transition cost.
func (e *Engine) enter(item Item) Transition {
	target := ScreenID(item.ID)
	if IsPlaylistID(item.ID) {
		target = DetailScreenID(item.ID)
		e.registry.Register(target, item.Label)
	} else if _, ok := e.registry.Get(target); !ok {
		e.registry.Register(target, item.Label)
	}

	if e.slowScreens[target] {
		e.loading = true
		e.generation++
		e.queued = target
		return Transition{Loading: true, Generation: e.generation, Delay: e.delay}
	}

	e.push(target)
	return Transition{}
}

// CompleteLoading finishes the queued navigation for the given generation.
// Stale generations, and calls while idle, are ignored.
func (e *Engine) CompleteLoading(generation uint64) {
	if !e.loading || generation != e.generation {
		return
	}
	e.loading = false
	e.push(e.queued)
}

// CancelLoading abandons any in-flight transition without navigating.
// Used when the host tears the session down mid-delay.
func (e *Engine) CancelLoading() {
	if !e.loading {
		return
	}
	e.loading = false
	e.generation++
}

// Back pops the stack unless at the root. A pop resets the cursor; at
// depth 1 it is a pure no-op.
func (e *Engine) Back() {
	if len(e.path) <= 1 {
		return
	}
	e.path = e.path[:len(e.path)-1]
	e.selected = 0
}

// UpdateScreenItems publishes freshly computed items into the named
// screen's definition. Idempotent; the cursor is re-clamped when the
// active screen shrinks beneath it.
func (e *Engine) UpdateScreenItems(id ScreenID, items []Item) {
	e.registry.SetItems(id, items)
	if id == e.CurrentID() {
		e.clamp()
	}
}

func (e *Engine) push(id ScreenID) {
	e.path = append(e.path, id)
	e.selected = 0
}

// replaceTop swaps the top stack frame without growing the stack.
func (e *Engine) replaceTop(id ScreenID) {
	e.path[len(e.path)-1] = id
	e.selected = 0
}

func (e *Engine) clamp() {
	count := len(e.Current().Items)
	if count == 0 {
		e.selected = 0
		return
	}
	if e.selected >= count {
		e.selected = count - 1
	}
}
