package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"
)

// fakeSpeaker swaps the speaker hooks so tests never touch a real device
func fakeSpeaker(sm *SoundManager, initErr error) *int {
	calls := 0
	sm.speakerInit = func(sr beep.SampleRate, bufferSize int) error {
		calls++
		return initErr
	}
	sm.speakerPlay = func(s ...beep.Streamer) {}
	return &calls
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayEat()
	sm.PlayGameOver()
	sm.Cleanup()

	if sm.mixer.Len() != 0 {
		t.Errorf("Expected empty mixer, got %d streamers", sm.mixer.Len())
	}
}

// TestSoundManagerInitFailure verifies a missing device leaves the manager silent
func TestSoundManagerInitFailure(t *testing.T) {
	sm := NewSoundManager(nil)
	fakeSpeaker(sm, errors.New("no device"))

	if err := sm.Initialize(); err == nil {
		t.Fatal("Expected error from Initialize")
	}
	if sm.IsInitialized() {
		t.Error("Expected manager to stay uninitialized")
	}

	sm.PlayEat()
	if sm.mixer.Len() != 0 {
		t.Errorf("Expected no queued sounds, got %d", sm.mixer.Len())
	}
}

// TestSoundManagerDoubleInitialization verifies double initialization is a no-op
func TestSoundManagerDoubleInitialization(t *testing.T) {
	sm := NewSoundManager(nil)
	calls := fakeSpeaker(sm, nil)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("First initialization failed: %v", err)
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	if *calls != 1 {
		t.Errorf("Expected speaker init once, got %d", *calls)
	}

	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config never opens the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)
	calls := fakeSpeaker(sm, nil)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if *calls != 0 {
		t.Errorf("Expected no speaker init, got %d", *calls)
	}
	sm.PlayEat()
	if sm.mixer.Len() != 0 {
		t.Errorf("Expected no queued sounds, got %d", sm.mixer.Len())
	}
}

// TestSoundManagerPlayQueuesSounds verifies cues are mixed once initialized
func TestSoundManagerPlayQueuesSounds(t *testing.T) {
	sm := NewSoundManager(nil)
	fakeSpeaker(sm, nil)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	sm.PlayEat()
	sm.PlayGameOver()
	if sm.mixer.Len() != 2 {
		t.Errorf("Expected 2 queued sounds, got %d", sm.mixer.Len())
	}

	sm.SetEnabled(false)
	sm.PlayEat()
	if sm.mixer.Len() != 2 {
		t.Errorf("Expected muted play to be dropped, got %d", sm.mixer.Len())
	}

	sm.Cleanup()
	if sm.mixer.Len() != 0 {
		t.Errorf("Expected cleanup to clear mixer, got %d", sm.mixer.Len())
	}
	if sm.IsInitialized() {
		t.Error("Expected manager uninitialized after cleanup")
	}
}

// TestSoundManagerOperationsAfterCleanup verifies operations after cleanup are safe
func TestSoundManagerOperationsAfterCleanup(t *testing.T) {
	sm := NewSoundManager(nil)
	fakeSpeaker(sm, nil)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	sm.Cleanup()
	sm.Cleanup()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked after cleanup: %v", r)
		}
	}()
	sm.PlayEat()
	sm.PlayGameOver()
}
