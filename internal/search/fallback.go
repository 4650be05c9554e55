package search

import "github.com/clickpod/clickpod/internal/models"

// fallbackTracks is the static sample set served for blank queries and
// when every provider is exhausted.
var fallbackTracks = []models.Track{
	{ID: "dQw4w9WgXcQ", Title: "Never Gonna Give You Up", Artist: "Rick Astley", Thumbnail: "https://img.youtube.com/vi/dQw4w9WgXcQ/default.jpg"},
	{ID: "kJQP7kiw5Fk", Title: "Despacito", Artist: "Luis Fonsi", Thumbnail: "https://img.youtube.com/vi/kJQP7kiw5Fk/default.jpg"},
	{ID: "JGwWNGJdvx8", Title: "Shape of You", Artist: "Ed Sheeran", Thumbnail: "https://img.youtube.com/vi/JGwWNGJdvx8/default.jpg"},
	{ID: "OPf0YbXqDm0", Title: "Uptown Funk", Artist: "Bruno Mars", Thumbnail: "https://img.youtube.com/vi/OPf0YbXqDm0/default.jpg"},
	{ID: "RgKAFK5djSk", Title: "See You Again", Artist: "Wiz Khalifa ft. Charlie Puth", Thumbnail: "https://img.youtube.com/vi/RgKAFK5djSk/default.jpg"},
}

// Fallback returns a copy of the static sample set. It is never empty.
func Fallback() []models.Track {
	out := make([]models.Track, len(fallbackTracks))
	copy(out, fallbackTracks)
	return out
}
