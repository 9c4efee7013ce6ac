package audio

import "github.com/lixenwraith/snake/constants"

// SoundType identifies a sound cue
type SoundType int

const (
	SoundEat SoundType = iota
	SoundGameOver
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "game_over"
	}
	return "unknown"
}

// AudioConfig holds audio playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio settings with every cue at full relative volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundEat:      0.8,
			SoundGameOver: 1.0,
		},
	}
}

// effectVolume is the final gain for a cue, clamped to [0, 1]
func (c *AudioConfig) effectVolume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1.0
	}
	v *= c.MasterVolume
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
