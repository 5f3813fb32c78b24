// Package audio plays short tones for round events.
package audio

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate used for every cue.
const SampleRate = beep.SampleRate(44100)

// Cue is a single tone.
type Cue struct {
	Freq     float64
	Duration time.Duration
}

var (
	// EatCue plays when food is eaten.
	EatCue = Cue{Freq: 880, Duration: 60 * time.Millisecond}
	// CrashCue plays when a round is lost.
	CrashCue = Cue{Freq: 220, Duration: 250 * time.Millisecond}
)

// Tone builds a finite, slightly attenuated sine streamer for c.
func Tone(sr beep.SampleRate, c Cue) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, c.Freq)
	if err != nil {
		return nil, fmt.Errorf("tone %.0f Hz: %w", c.Freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(c.Duration), sine),
		Base:     2,
		Volume:   -1,
	}, nil
}

// Player plays cues on the system speaker. A nil *Player is silent.
type Player struct {
	log *slog.Logger
}

// NewPlayer initializes the speaker. A nil logger means slog.Default.
func NewPlayer(logger *slog.Logger) (*Player, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{log: logger}, nil
}

// Eat plays the food cue.
func (p *Player) Eat() { p.play(EatCue) }

// Crash plays the collision cue.
func (p *Player) Crash() { p.play(CrashCue) }

func (p *Player) play(c Cue) {
	if p == nil {
		return
	}
	s, err := Tone(SampleRate, c)
	if err != nil {
		p.log.Warn("skipping cue", "error", err)
		return
	}
	speaker.Play(s)
}

// Close releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Close()
}
