package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrTimeout          = fmt.Errorf("operation timed out")

	// Search provider errors
	ErrProviderFailed   = fmt.Errorf("provider request failed")
	ErrNoResults        = fmt.Errorf("no usable results")
	ErrMissingQuery     = fmt.Errorf("missing query parameter")
	ErrProviderDisabled = fmt.Errorf("provider not configured")

	// Library errors
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")
	ErrTrackNotFound    = fmt.Errorf("track not found")
	ErrDuplicateTrack   = fmt.Errorf("track already in playlist")

	// Playback errors
	ErrBackendNotReady = fmt.Errorf("player backend not ready")
	ErrEmptyQueue      = fmt.Errorf("queue is empty")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
