package engine

import (
	"sync"
	"time"
)

// PausableClock measures game time, which stands still while paused
type PausableClock struct {
	mu sync.RWMutex

	provider  TimeProvider
	startTime time.Time

	paused     bool
	pauseStart time.Time
	pausedFor  time.Duration
}

// NewPausableClock creates a clock on real time
func NewPausableClock() *PausableClock {
	return NewPausableClockWithProvider(NewMonotonicTimeProvider())
}

// NewPausableClockWithProvider creates a clock on an arbitrary time source
func NewPausableClockWithProvider(p TimeProvider) *PausableClock {
	return &PausableClock{
		provider:  p,
		startTime: p.Now(),
	}
}

// Now returns current game time, frozen at the pause point while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.startTime.Add(pc.elapsedLocked())
}

// Elapsed returns game time since the clock was created or last reset
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.elapsedLocked()
}

func (pc *PausableClock) elapsedLocked() time.Duration {
	end := pc.provider.Now()
	if pc.paused {
		end = pc.pauseStart
	}
	return end.Sub(pc.startTime) - pc.pausedFor
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.provider.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.pausedFor += pc.provider.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, the current pause included
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	total := pc.pausedFor
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStart)
	}
	return total
}

// Reset restarts game time at zero, unpaused
func (pc *PausableClock) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.startTime = pc.provider.Now()
	pc.paused = false
	pc.pauseStart = time.Time{}
	pc.pausedFor = 0
}
