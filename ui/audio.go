package ui

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	cueSampleRate = beep.SampleRate(44100)
	cueFrequency  = 880
	cueDuration   = 90 * time.Millisecond
)

// AudioCue plays the short food-pickup tone. When the speaker cannot
// be initialized the cue stays disabled and Play is a no-op; the game
// never depends on audio working.
type AudioCue struct {
	enabled bool
}

func NewAudioCue(muted bool) *AudioCue {
	if muted {
		return &AudioCue{}
	}
	if err := speaker.Init(cueSampleRate, cueSampleRate.N(20*time.Millisecond)); err != nil {
		slog.Warn("audio disabled", "err", err)
		return &AudioCue{}
	}
	return &AudioCue{enabled: true}
}

func (a *AudioCue) Play() {
	if !a.enabled {
		return
	}
	tone, err := generators.SinTone(cueSampleRate, cueFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(cueSampleRate.N(cueDuration), tone))
}
