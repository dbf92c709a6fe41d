// Package screen composes the clock face: it forwards decomposed time to the digit cells and colon, and lays them out
package screen

import (
	"time"

	"github.com/lixenwraith/flip-clock/animation"
	"github.com/lixenwraith/flip-clock/clock"
	"github.com/lixenwraith/flip-clock/constant"
	"github.com/lixenwraith/flip-clock/flip"
	"github.com/lixenwraith/flip-clock/render"
)

// Options configures child animations
type Options struct {
	FlipDuration time.Duration
	ColonFade    time.Duration
	FlipCurve    animation.Curve
}

// DefaultOptions returns the reference timings
func DefaultOptions() Options {
	return Options{
		FlipDuration: constant.FlipDuration,
		ColonFade:    constant.ColonFadeDuration,
		FlipCurve:    animation.FlipCurve,
	}
}

// Composer passes each face through to its children
// All animation state lives in the cells and the colon; the composer only keeps the last face and the layout cache
type Composer struct {
	opts  Options
	cells [4]*flip.Cell
	colon *flip.Colon
	face  clock.Face
	ready bool

	layout    Layout
	hasLayout bool
}

// NewComposer creates a composer with no face applied yet
func NewComposer(opts Options) *Composer {
	if opts.FlipCurve == nil {
		opts.FlipCurve = animation.FlipCurve
	}
	return &Composer{opts: opts}
}

// Apply forwards a face to the children and returns how many cells started a flip
// The first face seeds the cells idle, launching does not flip every card
func (c *Composer) Apply(f clock.Face, now time.Time) int {
	digits := f.Digits()
	c.face = f

	if !c.ready {
		for i, d := range digits {
			c.cells[i] = flip.NewCell(d, c.opts.FlipDuration, c.opts.FlipCurve)
		}
		c.colon = flip.NewColon(
			render.RgbColonBright.Colorful(),
			render.RgbColonDim.Colorful(),
			c.opts.ColonFade,
			f.ColonVisible,
		)
		c.ready = true
		return 0
	}

	started := 0
	for i, d := range digits {
		if c.cells[i].Set(d, now) {
			started++
		}
	}
	c.colon.SetVisible(f.ColonVisible, now)
	return started
}

// Advance is the per-frame callback for every child
func (c *Composer) Advance(now time.Time) {
	if !c.ready {
		return
	}
	for _, cell := range c.cells {
		cell.Advance(now)
	}
	c.colon.Advance(now)
}

// Animating reports whether any child has a transition in flight
func (c *Composer) Animating() bool {
	if !c.ready {
		return false
	}
	for _, cell := range c.cells {
		if cell.Phase() == flip.PhaseFlipping {
			return true
		}
	}
	return c.colon.IsAnimating()
}

// Ready reports whether a face has been applied
func (c *Composer) Ready() bool {
	return c.ready
}

// Cell returns the digit cell at position i: hour-tens, hour-ones, minute-tens, minute-ones
func (c *Composer) Cell(i int) *flip.Cell {
	return c.cells[i]
}

// Colon returns the colon indicator
func (c *Composer) Colon() *flip.Colon {
	return c.colon
}

// Face returns the last applied face
func (c *Composer) Face() clock.Face {
	return c.face
}

// Layout returns the layout for a terminal size, recomputed only when the size changes
func (c *Composer) Layout(width, height int) Layout {
	if !c.hasLayout || c.layout.Width != width || c.layout.Height != height {
		c.layout = NewLayout(width, height)
		c.hasLayout = true
	}
	return c.layout
}
