package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snake/core"
)

// ClockScheduler emits game ticks on a fixed interval of game time
// Ticks go out on a 1-buffered channel; a tick the consumer has not drained is
// dropped rather than queued, so a slow consumer never sees a burst
type ClockScheduler struct {
	clock        *PausableClock
	tickInterval time.Duration

	mu               sync.Mutex
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	dropped   atomic.Uint64

	ticks chan struct{}
	wake  chan struct{}

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler ticking every tickInterval of clock time
func NewClockScheduler(clock *PausableClock, tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		clock:        clock,
		tickInterval: tickInterval,
		ticks:        make(chan struct{}, 1),
		wake:         make(chan struct{}, 1),
		stopChan:     make(chan struct{}),
	}
}

// Ticks returns the channel ticks are delivered on
func (cs *ClockScheduler) Ticks() <-chan struct{} {
	return cs.ticks
}

// TickCount returns the number of ticks delivered
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Dropped returns the number of ticks discarded because the previous one was unread
func (cs *ClockScheduler) Dropped() uint64 {
	return cs.dropped.Load()
}

// Interval returns the tick interval
func (cs *ClockScheduler) Interval() time.Duration {
	return cs.tickInterval
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.mu.Lock()
		cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
		cs.mu.Unlock()

		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		cs.wg.Wait()
		cs.running.Store(false)
	})
}

// Pause freezes game time, no ticks are emitted until Resume
func (cs *ClockScheduler) Pause() {
	cs.clock.Pause()
	cs.signal()
}

// Resume continues ticking where the interval left off
func (cs *ClockScheduler) Resume() {
	cs.clock.Resume()
	cs.signal()
}

// IsPaused returns current pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.clock.IsPaused()
}

// Reset discards a pending tick and schedules the next one a full interval from now
func (cs *ClockScheduler) Reset() {
	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	select {
	case <-cs.ticks:
	default:
	}
	cs.signal()
}

func (cs *ClockScheduler) signal() {
	select {
	case cs.wake <- struct{}{}:
	default:
	}
}

// schedulerLoop runs the scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		// Paused: block until resumed or stopped, game time does not advance
		if cs.clock.IsPaused() {
			select {
			case <-cs.wake:
				continue
			case <-cs.stopChan:
				return
			}
		}

		sleepDuration := cs.advance()
		if sleepDuration <= 0 {
			continue
		}

		timer.Reset(sleepDuration)
		select {
		case <-timer.C:
		case <-cs.wake:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-cs.stopChan:
			return
		}
	}
}

// advance emits a tick if the deadline has passed and returns the time until the next one
func (cs *ClockScheduler) advance() time.Duration {
	now := cs.clock.Now()

	cs.mu.Lock()
	deadline := cs.nextTickDeadline
	if now.Before(deadline) {
		cs.mu.Unlock()
		return deadline.Sub(now)
	}

	cs.nextTickDeadline = deadline.Add(cs.tickInterval)
	// Far behind (suspended process): realign instead of catching up
	if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
		cs.nextTickDeadline = now.Add(cs.tickInterval)
	}
	deadline = cs.nextTickDeadline
	cs.mu.Unlock()

	select {
	case cs.ticks <- struct{}{}:
		cs.tickCount.Add(1)
	default:
		cs.dropped.Add(1)
	}

	return deadline.Sub(cs.clock.Now())
}
