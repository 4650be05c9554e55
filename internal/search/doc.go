// Package search resolves free-text queries into playable tracks by
// walking an ordered chain of YouTube-compatible providers. Privacy
// front-ends (Piped, Invidious) come first, the official Data API last,
// and a built-in sample set answers when every provider fails.
package search
