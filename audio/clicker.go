// Package audio plays the split-flap click that accompanies a card flip
package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(48000)

	// clickDuration covers the strike and the short rattle after it
	clickDuration = 45 * time.Millisecond
)

// Player is the subset of Clicker the render loop depends on
type Player interface {
	PlayClick(flips int)
}

// Clicker owns the speaker and a mixer that click streams are added to
type Clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewClicker creates a clicker at volume in [0, 1]
func NewClicker(volume float64) *Clicker {
	return &Clicker{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

// Initialize opens the speaker; safe to call twice
func (c *Clicker) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup drops queued clicks and releases the speaker
func (c *Clicker) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// PlayClick plays one click for a tick; several cells flipping together only sound a little louder
// No-op until Initialize succeeds
func (c *Clicker) PlayClick(flips int) {
	if flips <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	vol := c.volume * (1 + 0.15*float64(min(flips, 4)-1))
	speaker.Lock()
	c.mixer.Add(newClick(sampleRate, vol))
	speaker.Unlock()
}

// Volume returns the configured volume
func (c *Clicker) Volume() float64 {
	return c.volume
}

// newClick wraps a ClickGenerator with a volume stage, vol in [0, 1] mapped onto beep's log2 scale
func newClick(sr beep.SampleRate, vol float64) beep.Streamer {
	s := NewClickGenerator(sr, clickDuration)
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// ClickGenerator synthesizes a flap strike: a noise burst over a low knock, both decaying fast
type ClickGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	rng     *rand.Rand
	last    float64
}

// NewClickGenerator creates a click of the given length
func NewClickGenerator(sr beep.SampleRate, d time.Duration) *ClickGenerator {
	return &ClickGenerator{
		sr:      sr,
		samples: sr.N(d),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		// Envelope - instant attack, exponential decay
		envelope := math.Exp(-t * 140)

		// One-pole low-pass takes the hiss off the noise
		noise := g.rng.Float64()*2 - 1
		g.last += 0.45 * (noise - g.last)

		knock := math.Sin(2 * math.Pi * 180 * t)

		sample := envelope * (0.55*g.last + 0.35*knock)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
