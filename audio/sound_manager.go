// Package audio synthesizes and plays the short sound cues of the game.
// Every play call is a no-op until Initialize succeeds, so the game runs
// silently on machines without an audio device.
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snake/constants"
)

// SoundManager manages game audio
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool

	// speakerInit is swapped in tests
	speakerInit func(sr beep.SampleRate, bufferSize int) error
	speakerPlay func(s ...beep.Streamer)
}

// NewSoundManager creates a sound manager; a nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:         cfg,
		mixer:       &beep.Mixer{},
		speakerInit: speaker.Init,
		speakerPlay: speaker.Play,
	}
}

// Initialize opens the speaker and starts the mixer
// Calling it again after success is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := sm.speakerInit(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.ctrl = &beep.Ctrl{Streamer: sm.mixer}
	sm.speakerPlay(sm.ctrl)
	sm.initialized = true
	return nil
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetEnabled mutes or unmutes playback without closing the device
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.cfg.Enabled = enabled
}

// PlayEat plays the food chime
func (sm *SoundManager) PlayEat() {
	sm.play(SoundEat)
}

// PlayGameOver plays the collision buzz
func (sm *SoundManager) PlayGameOver() {
	sm.play(SoundGameOver)
}

func (sm *SoundManager) play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.cfg.Enabled {
		return
	}
	if streamer := GetSoundEffect(s, sm.cfg); streamer != nil {
		speaker.Lock()
		sm.mixer.Add(streamer)
		speaker.Unlock()
	}
}

// Cleanup stops all sounds
// beep has no speaker close that is safe to call repeatedly, so the device stays open
// and the mixer is paused and emptied
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.ctrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}
