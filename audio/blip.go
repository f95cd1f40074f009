// Package audio plays a short sine blip when particles leave the plane.
// Audio is strictly optional: a machine without a usable output device
// degrades to silence.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	blipFreq     = 880
	blipDuration = 50 * time.Millisecond
)

// Player owns the speaker for the process lifetime.
type Player struct {
	ready bool
}

// NewPlayer opens the audio device. Callers treat an error as non-fatal.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Player{ready: true}, nil
}

// Blip plays a short tone. No-op on a nil or unready player.
func (p *Player) Blip() {
	if p == nil || !p.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, blipFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(blipDuration), sine))
}

// Close releases the audio device.
func (p *Player) Close() {
	if p != nil && p.ready {
		speaker.Close()
	}
}
