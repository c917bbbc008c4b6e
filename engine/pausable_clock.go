package engine

import (
	"sync"
	"time"
)

// PausableClock measures game time since its creation, excluding pauses
// Its Elapsed reading is what the frame driver hands to Advance, so a paused
// game produces dt = 0 frames instead of a large jump on resume
type PausableClock struct {
	mu sync.RWMutex

	provider TimeProvider
	start    time.Time

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider: provider,
		start:    provider.Now(),
	}
}

// Elapsed returns game time since creation; frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseStart.Sub(pc.start) - pc.totalPaused
	}
	return pc.provider.Now().Sub(pc.start) - pc.totalPaused
}

func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.provider.Now()
}

func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.paused = false
	pc.totalPaused += pc.provider.Now().Sub(pc.pauseStart)
	pc.pauseStart = time.Time{}
}

// Toggle flips the pause state and reports whether the clock is now paused
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPaused includes the pause in progress, if any
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStart)
	}
	return total
}
