package engine

import (
	"testing"
	"time"
)

func newTestScheduler(t *testing.T, interval time.Duration) *ClockScheduler {
	t.Helper()
	cs := NewClockScheduler(NewPausableClock(), interval)
	t.Cleanup(cs.Stop)
	return cs
}

func waitTick(t *testing.T, cs *ClockScheduler) {
	t.Helper()
	select {
	case <-cs.Ticks():
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for tick")
	}
}

// TestClockSchedulerEmitsTicks verifies ticks arrive on the channel
func TestClockSchedulerEmitsTicks(t *testing.T) {
	cs := newTestScheduler(t, 5*time.Millisecond)
	cs.Start()

	for i := 0; i < 3; i++ {
		waitTick(t, cs)
	}
	if cs.TickCount() < 3 {
		t.Errorf("Expected at least 3 ticks, got %d", cs.TickCount())
	}
}

// TestClockSchedulerStopIdempotent verifies Stop can be called repeatedly and before Start
func TestClockSchedulerStopIdempotent(t *testing.T) {
	cs := NewClockScheduler(NewPausableClock(), 5*time.Millisecond)
	cs.Stop()
	cs.Stop()

	cs2 := NewClockScheduler(NewPausableClock(), 5*time.Millisecond)
	cs2.Start()
	cs2.Start()
	cs2.Stop()
	cs2.Stop()
}

// TestClockSchedulerDropsUnreadTicks verifies no backlog builds while the consumer is busy
func TestClockSchedulerDropsUnreadTicks(t *testing.T) {
	cs := newTestScheduler(t, 5*time.Millisecond)
	cs.Start()

	time.Sleep(60 * time.Millisecond)

	if got := cs.TickCount(); got != 1 {
		t.Errorf("Expected exactly 1 delivered tick, got %d", got)
	}
	if cs.Dropped() == 0 {
		t.Error("Expected dropped ticks while channel was full")
	}
}

// TestClockSchedulerPause verifies no ticks are emitted while paused
func TestClockSchedulerPause(t *testing.T) {
	cs := newTestScheduler(t, 5*time.Millisecond)
	cs.Start()
	waitTick(t, cs)

	cs.Pause()
	if !cs.IsPaused() {
		t.Fatal("Expected scheduler paused")
	}

	// Let an in-flight iteration settle, then drain
	time.Sleep(20 * time.Millisecond)
	select {
	case <-cs.Ticks():
	default:
	}
	before := cs.TickCount()

	time.Sleep(60 * time.Millisecond)
	if got := cs.TickCount(); got != before {
		t.Errorf("Expected no ticks while paused, got %d new", got-before)
	}
	select {
	case <-cs.Ticks():
		t.Error("Expected empty tick channel while paused")
	default:
	}

	cs.Resume()
	if cs.IsPaused() {
		t.Error("Expected scheduler resumed")
	}
	waitTick(t, cs)
}

// TestClockSchedulerResetDrainsPending verifies Reset discards an unread tick
func TestClockSchedulerResetDrainsPending(t *testing.T) {
	cs := newTestScheduler(t, 5*time.Millisecond)
	cs.Start()
	time.Sleep(30 * time.Millisecond)

	cs.Pause()
	time.Sleep(20 * time.Millisecond)
	cs.Reset()

	if n := len(cs.Ticks()); n != 0 {
		t.Errorf("Expected no pending tick after reset, got %d", n)
	}
}
