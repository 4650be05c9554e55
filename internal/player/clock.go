package player

import (
	"sync"
	"time"

	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/shared"
)

// defaultTrackLength stands in for the real duration, which search
// providers do not report.
const defaultTrackLength = 3 * time.Minute

// ClockBackend is a playback backend that advances position against the
// wall clock. It carries no audio; it exists so transport state, queue
// advancement and the progress display behave like the real thing.
type ClockBackend struct {
	mu       sync.Mutex
	loaded   bool
	playing  bool
	elapsed  time.Duration
	mark     time.Time
	duration time.Duration
}

// NewClockBackend creates a backend with no track loaded.
func NewClockBackend() *ClockBackend {
	return &ClockBackend{duration: defaultTrackLength}
}

// Load resets position for a new track.
func (b *ClockBackend) Load(_ models.Track) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loaded = true
	b.playing = false
	b.elapsed = 0
	return nil
}

// Play starts or resumes the clock.
func (b *ClockBackend) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.loaded {
		return shared.ErrBackendNotReady
	}
	if !b.playing {
		b.playing = true
		b.mark = time.Now()
	}
	return nil
}

// Pause freezes the clock.
func (b *ClockBackend) Pause() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.playing {
		b.elapsed += time.Since(b.mark)
		b.playing = false
	}
	return nil
}

// Seek jumps to an absolute position, clamped to the track length.
func (b *ClockBackend) Seek(pos time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.loaded {
		return shared.ErrBackendNotReady
	}
	if pos < 0 {
		pos = 0
	}
	if pos > b.duration {
		pos = b.duration
	}
	b.elapsed = pos
	b.mark = time.Now()
	return nil
}

// Position reports elapsed time against the nominal track length.
func (b *ClockBackend) Position() (time.Duration, time.Duration, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.loaded {
		return 0, 0, shared.ErrBackendNotReady
	}
	current := b.elapsed
	if b.playing {
		current += time.Since(b.mark)
	}
	if current > b.duration {
		current = b.duration
	}
	return current, b.duration, nil
}
