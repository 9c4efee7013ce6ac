package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to exhaustion and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer never drained")
	return nil
}

// TestOscillatorRange verifies every wave stays within [-1, 1]
func TestOscillatorRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, testRate)
		for i, s := range drain(t, osc) {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d out of range or not mono: %v", wave, i, s)
			}
		}
		if osc.Err() != nil {
			t.Errorf("Expected no error, got: %v", osc.Err())
		}
	}
}

// TestOscillatorDuration verifies the oscillator stops after its duration
func TestOscillatorDuration(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	want := testRate.N(100 * time.Millisecond)
	if got := len(drain(t, osc)); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near silent
func TestEnvelopeShape(t *testing.T) {
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, testRate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, testRate)

	samples := drain(t, env)
	if len(samples) != testRate.N(100*time.Millisecond) {
		t.Fatalf("Expected %d samples, got %d", testRate.N(100*time.Millisecond), len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	mid := len(samples) / 2
	if math.Abs(samples[mid][0]) != 1 {
		t.Errorf("Expected full sustain, got %f", samples[mid][0])
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) > 0.01 {
		t.Errorf("Expected near silent last sample, got %f", last)
	}
}

// TestEnvelopeTruncatesLongerSource verifies the envelope bounds the stream length
func TestEnvelopeTruncatesLongerSource(t *testing.T) {
	osc := NewOscillator(440, time.Second, WaveSine, testRate)
	env := NewEnvelope(osc, 20*time.Millisecond, 0, 0, testRate)
	if got, want := len(drain(t, env)), testRate.N(20*time.Millisecond); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

// TestCreateEatSound verifies the chime plays both notes in sequence
func TestCreateEatSound(t *testing.T) {
	cfg := DefaultAudioConfig()
	samples := drain(t, CreateEatSound(cfg))

	want := testRate.N(60*time.Millisecond) + testRate.N(120*time.Millisecond)
	if len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
}

// TestCreateGameOverSound verifies the buzz length and amplitude bound
func TestCreateGameOverSound(t *testing.T) {
	cfg := DefaultAudioConfig()
	samples := drain(t, CreateGameOverSound(cfg))

	if want := testRate.N(450 * time.Millisecond); len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
	for i, s := range samples {
		if math.Abs(s[0]) > 1 {
			t.Fatalf("Sample %d exceeds full scale: %f", i, s[0])
		}
	}
}

// TestGetSoundEffect verifies lookup by type
func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()
	if GetSoundEffect(SoundEat, cfg) == nil {
		t.Error("Expected eat sound")
	}
	if GetSoundEffect(SoundGameOver, cfg) == nil {
		t.Error("Expected game over sound")
	}
	if GetSoundEffect(SoundType(99), cfg) != nil {
		t.Error("Expected nil for unknown sound type")
	}
}

// TestZeroVolumeIsSilent verifies master volume 0 produces silence
func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0
	for i, s := range drain(t, CreateEatSound(cfg)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence at sample %d, got %v", i, s)
		}
	}
}

// TestEffectVolumeClamped verifies the combined gain stays in [0, 1]
func TestEffectVolumeClamped(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 3
	if v := cfg.effectVolume(SoundGameOver); v != 1 {
		t.Errorf("Expected 1, got %f", v)
	}
	cfg.MasterVolume = -1
	if v := cfg.effectVolume(SoundEat); v != 0 {
		t.Errorf("Expected 0, got %f", v)
	}
}
