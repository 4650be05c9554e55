package player

import (
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/shared"
)

// Backend is the contract with the external media player. Implementations
// wrap whatever actually produces sound; the controller never decodes
// audio itself.
type Backend interface {
	// Load prepares a track for playback.
	Load(t models.Track) error
	Play() error
	Pause() error
	Seek(pos time.Duration) error
	// Position reports playback progress. A backend that is not ready
	// yet returns shared.ErrBackendNotReady, treated as retryable.
	Position() (current, duration time.Duration, err error)
}

// Progress is the last observed playback position.
type Progress struct {
	Current  time.Duration
	Duration time.Duration
}

// Controller owns the current track, the ordered queue and transport
// state. Progress is polled from the backend on a fixed interval, only
// while playing; the poll goroutine stops immediately on pause and can
// never touch a closed controller.
type Controller struct {
	mu       sync.Mutex
	queue    *Queue
	backend  Backend
	logger   *log.Logger
	interval time.Duration

	playing  bool
	progress Progress
	closed   bool
	stopPoll chan struct{}
}

// NewController creates a stopped controller over the given backend.
func NewController(backend Backend, logger *log.Logger, interval time.Duration) *Controller {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Controller{
		queue:    NewQueue(),
		backend:  backend,
		logger:   logger,
		interval: interval,
	}
}

// Play starts the track as a fresh single-track queue.
func (c *Controller) Play(t models.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.queue.Replace(t)
	c.startLocked(t)
}

// Enqueue appends the track to the queue. Playback starts when the queue
// was empty.
func (c *Controller) Enqueue(t models.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if starts := c.queue.Append(t); starts {
		c.startLocked(t)
	}
}

// TogglePlay pauses when playing and resumes otherwise. A toggle with an
// empty queue is a no-op.
func (c *Controller) TogglePlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.queue.IsEmpty() {
		return
	}
	if c.playing {
		c.pauseLocked()
		return
	}
	if err := c.backend.Play(); err != nil {
		c.logger.Warn("resume failed", "err", err)
		return
	}
	c.playing = true
	c.pollLocked()
}

// Next skips to the following queued track, if any.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if t := c.queue.Next(); t != nil {
		c.startLocked(*t)
	}
}

// Prev returns to the previous queued track, if any.
func (c *Controller) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if t := c.queue.Prev(); t != nil {
		c.startLocked(*t)
	}
}

// Seek forwards a position change to the backend.
func (c *Controller) Seek(pos time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.queue.IsEmpty() {
		return
	}
	if err := c.backend.Seek(pos); err != nil {
		c.logger.Warn("seek failed", "err", err)
	}
}

// TrackEnded implements the end-of-track auto-advance rule: move to the
// next queued track when one exists, otherwise stop.
func (c *Controller) TrackEnded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if t := c.queue.Next(); t != nil {
		c.startLocked(*t)
		return
	}
	c.pauseLocked()
}

// CurrentTrack returns the track at the queue cursor, or nil.
func (c *Controller) CurrentTrack() *models.Track {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Current()
}

// QueueTracks returns a snapshot of the queue in order.
func (c *Controller) QueueTracks() []models.Track {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Tracks()
}

// Cursor returns the queue cursor (-1 when empty).
func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Cursor()
}

// RemoveFromQueue deletes the track at index from the queue.
func (c *Controller) RemoveFromQueue(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue.RemoveAt(index)
	if c.queue.IsEmpty() {
		c.pauseLocked()
	}
}

// ClearQueue drops everything and stops playback.
func (c *Controller) ClearQueue() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue.Clear()
	c.pauseLocked()
}

// IsPlaying reports the transport state.
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Progress returns the last polled playback position.
func (c *Controller) Progress() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress
}

// Close stops polling permanently. All operations after Close are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopPollingLocked()
	c.playing = false
}

// startLocked loads and plays a track, resetting progress and ensuring
// the poll loop is running. Caller holds the mutex.
func (c *Controller) startLocked(t models.Track) {
	c.progress = Progress{}
	if err := c.backend.Load(t); err != nil {
		c.logger.Warn("load failed", "track", t.ID, "err", err)
	}
	if err := c.backend.Play(); err != nil {
		c.logger.Warn("play failed", "track", t.ID, "err", err)
	}
	c.playing = true
	c.pollLocked()
}

// pauseLocked stops the transport and the poll loop. Caller holds the mutex.
func (c *Controller) pauseLocked() {
	if c.playing {
		if err := c.backend.Pause(); err != nil {
			c.logger.Warn("pause failed", "err", err)
		}
	}
	c.playing = false
	c.stopPollingLocked()
}

// pollLocked starts the progress poll loop if it is not already running.
// Caller holds the mutex.
func (c *Controller) pollLocked() {
	if c.stopPoll != nil {
		return
	}
	stop := make(chan struct{})
	c.stopPoll = stop

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.poll()
			}
		}
	}()
}

func (c *Controller) stopPollingLocked() {
	if c.stopPoll != nil {
		close(c.stopPoll)
		c.stopPoll = nil
	}
}

// poll reads the backend position once. A not-ready backend is a soft,
// retryable condition; the next tick tries again.
func (c *Controller) poll() {
	cur, dur, err := c.backend.Position()

	c.mu.Lock()
	if c.closed || !c.playing {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.mu.Unlock()
		if !errors.Is(err, shared.ErrBackendNotReady) {
			c.logger.Debug("position poll failed", "err", err)
		}
		return
	}
	c.progress = Progress{Current: cur, Duration: dur}
	ended := dur > 0 && cur >= dur
	c.mu.Unlock()

	if ended {
		c.TrackEnded()
	}
}
