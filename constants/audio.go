package constants

import "time"

// Audio Defaults
const (
	// DefaultSampleRate is the speaker sample rate in Hz
	DefaultSampleRate = 44100

	// SpeakerBufferDuration is the speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is the master gain in [0, 1]
	DefaultMasterVolume = 0.6
)

// Eat Sound Timing
const (
	EatSoundNote1Duration = 60 * time.Millisecond
	EatSoundNote2Duration = 120 * time.Millisecond
	EatSoundAttack        = 5 * time.Millisecond
	EatSoundNote1Release  = 30 * time.Millisecond
	EatSoundNote2Release  = 90 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 450 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 300 * time.Millisecond
)
