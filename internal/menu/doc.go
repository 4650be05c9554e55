// Package menu implements the hierarchical menu-navigation engine driving
// the device's screen stack.
//
// The engine owns three pieces of state:
//  1. A [Registry] of screen definitions, keyed by [ScreenID]. Static
//     screens exist from startup; playlist-detail screens are registered
//     lazily and never removed.
//  2. The navigation state itself: a stack of screen ids rooted at
//     [ScreenMain], a selection cursor clamped to the active screen's item
//     count, and a loading flag with a generation counter.
//  3. A single-slot pending-track register holding the track a
//     track-action flow operates on. It is overwritten by each new track
//     selection and cleared when a terminal action consumes it.
//
// Input arrives as three discrete primitives, Scroll, Select and Back,
// plus one data primitive, UpdateScreenItems, used by data-backed screens
// (search results, favorites, queue, playlist contents) to publish fresh
// items into the registry.
//
// Select dispatches on the [ItemKind] of the item under the cursor.
// Actions are forwarded to a [Dispatcher]; the engine performs no I/O and
// never blocks. Screens with a transition cost (the music section) start
// a timer-gated loading phase described by [Transition]; the host
// schedules the delay and reports back via CompleteLoading, where a stale
// generation is ignored.
//
// Every operation is total. Selecting on an empty screen, pressing back
// at the root, a link to an unregistered screen and an out-of-range
// cursor all degrade to no-ops rather than errors.
package menu
