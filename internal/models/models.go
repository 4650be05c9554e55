// package models defines the data model for the click-wheel music player
package models

import (
	"fmt"
	"strings"
)

// Track represents a playable item sourced from any search provider.
// Equality is by ID, the provider-native video identifier.
type Track struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Thumbnail string `json:"thumbnail"`
}

// Validate checks that the track carries the fields playback depends on.
func (t Track) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("track id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("track title is required")
	}
	return nil
}

// Playlist represents a user-created named collection of tracks.
// Tracks are deduplicated by id on insert.
type Playlist struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Tracks []Track `json:"tracks"`
}

// Contains reports whether the playlist already holds a track with the
// given id.
func (p Playlist) Contains(trackID string) bool {
	for _, t := range p.Tracks {
		if t.ID == trackID {
			return true
		}
	}
	return false
}

// Validate checks that the playlist is well formed.
func (p Playlist) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("playlist id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("playlist name is required")
	}
	return nil
}

// User represents the signed-in identity, if any.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
