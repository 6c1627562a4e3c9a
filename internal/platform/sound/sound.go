// Package sound plays short cues for the local hosts. Audio is optional:
// when the speaker cannot be opened every call is a no-op.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker mixer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before playing anything.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Calling it twice is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether the speaker is open.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// GameOver plays the falling two-note cue.
func (p *Player) GameOver() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(GameOverCue(sampleRate))
	speaker.Unlock()
}

// Close silences everything still queued.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// GameOverCue builds the game-over streamer: 440 Hz then 220 Hz, 120 ms each,
// at reduced volume.
func GameOverCue(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(tone(sr, 440, 120*time.Millisecond), tone(sr, 220, 120*time.Millisecond))
}

// tone returns a quiet sine of the given length, or silence if the
// frequency cannot be produced at this sample rate.
func tone(sr beep.SampleRate, freq int, d time.Duration) beep.Streamer {
	n := sr.N(d)
	sine, err := generators.SineTone(sr, float64(freq))
	if err != nil {
		return generators.Silence(n)
	}
	return &effects.Volume{
		Streamer: beep.Take(n, sine),
		Base:     2,
		Volume:   -2,
	}
}
