package player

import (
	"errors"
	"testing"
	"time"

	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/shared"
)

func TestClockBackend(t *testing.T) {
	track := models.Track{ID: "abc", Title: "Song", Artist: "Band"}

	t.Run("not ready before load", func(t *testing.T) {
		b := NewClockBackend()
		if err := b.Play(); !errors.Is(err, shared.ErrBackendNotReady) {
			t.Errorf("expected ErrBackendNotReady, got %v", err)
		}
		if _, _, err := b.Position(); !errors.Is(err, shared.ErrBackendNotReady) {
			t.Errorf("expected ErrBackendNotReady, got %v", err)
		}
	})

	t.Run("position advances while playing", func(t *testing.T) {
		b := NewClockBackend()
		if err := b.Load(track); err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if err := b.Play(); err != nil {
			t.Fatalf("play failed: %v", err)
		}

		time.Sleep(15 * time.Millisecond)
		current, duration, err := b.Position()
		if err != nil {
			t.Fatalf("position failed: %v", err)
		}
		if current <= 0 {
			t.Error("expected position to advance while playing")
		}
		if duration != defaultTrackLength {
			t.Errorf("expected nominal duration, got %v", duration)
		}
	})

	t.Run("pause freezes position", func(t *testing.T) {
		b := NewClockBackend()
		b.Load(track)
		b.Play()
		time.Sleep(10 * time.Millisecond)
		b.Pause()

		first, _, _ := b.Position()
		time.Sleep(10 * time.Millisecond)
		second, _, _ := b.Position()
		if first != second {
			t.Errorf("expected frozen position, got %v then %v", first, second)
		}
	})

	t.Run("seek clamps", func(t *testing.T) {
		b := NewClockBackend()
		b.Load(track)

		if err := b.Seek(-time.Second); err != nil {
			t.Fatalf("seek failed: %v", err)
		}
		current, _, _ := b.Position()
		if current != 0 {
			t.Errorf("expected clamp to 0, got %v", current)
		}

		if err := b.Seek(time.Hour); err != nil {
			t.Fatalf("seek failed: %v", err)
		}
		current, duration, _ := b.Position()
		if current != duration {
			t.Errorf("expected clamp to duration, got %v of %v", current, duration)
		}
	})

	t.Run("load resets position", func(t *testing.T) {
		b := NewClockBackend()
		b.Load(track)
		b.Seek(time.Minute)
		b.Load(track)

		current, _, _ := b.Position()
		if current != 0 {
			t.Errorf("expected reset position, got %v", current)
		}
	})
}
