package flip

import (
	"time"

	"github.com/lixenwraith/flip-clock/animation"
	"github.com/lixenwraith/flip-clock/constant"
)

// Phase is the coarse state of a Cell
type Phase uint8

const (
	// PhaseIdle means the card rests on its current digit
	PhaseIdle Phase = iota
	// PhaseFlipping means a flip is in flight
	PhaseFlipping
)

func (p Phase) String() string {
	if p == PhaseFlipping {
		return "flipping"
	}
	return "idle"
}

// Half identifies the top or bottom half of a card
type Half uint8

const (
	HalfTop Half = iota
	HalfBottom
)

// Edge is the hinge a rotating panel turns around
type Edge uint8

const (
	EdgeBottom Edge = iota
	EdgeTop
)

// CellState is a snapshot of a Cell, Previous is meaningful only while Progress < 1
type CellState struct {
	Current  Digit
	Previous Digit
	Progress float64
}

// Panel is the half card currently in motion
// Angle is the rotation about the hinge in degrees, Shade the peak darkening alpha
type Panel struct {
	Half  Half
	Digit Digit
	Angle float64
	Pivot Edge
	Shade float64
}

// Frame is the declarative description of a cell for one render
// Static is drawn on both unrotated halves, Panel is nil when idle
type Frame struct {
	Static Digit
	Panel  *Panel
}

// Cell owns one digit's flip animation
// A value arriving mid-flip restarts the flip from the in-flight target; skipped values are never queued
type Cell struct {
	current  Digit
	previous Digit
	progress *animation.Progress
}

// NewCell creates an idle cell showing initial
func NewCell(initial Digit, duration time.Duration, curve animation.Curve) *Cell {
	return &Cell{
		current:  initial,
		previous: initial,
		progress: animation.NewProgress(duration, curve),
	}
}

// Set feeds a new value and reports whether a flip started
func (c *Cell) Set(d Digit, now time.Time) bool {
	if d == c.current {
		return false
	}
	c.previous = c.current
	c.current = d
	c.progress.Restart(now)
	return true
}

// Advance is the per-frame callback
func (c *Cell) Advance(now time.Time) {
	c.progress.Advance(now)
}

// Phase returns idle or flipping
func (c *Cell) Phase() Phase {
	if c.progress.IsAnimating() {
		return PhaseFlipping
	}
	return PhaseIdle
}

// Current returns the digit the cell is showing or flipping to
func (c *Cell) Current() Digit {
	return c.current
}

// State returns a snapshot with eased progress
func (c *Cell) State() CellState {
	return CellState{
		Current:  c.current,
		Previous: c.previous,
		Progress: c.progress.Value(),
	}
}

// Frame maps the state to what should be drawn
func (c *Cell) Frame() Frame {
	return FrameFor(c.State())
}

// FrameFor applies the flip render policy to a state
// First half: the top panel lifts away showing the old digit, hinged on its bottom edge
// Second half: the bottom panel lands showing the new digit, hinged on its top edge
func FrameFor(s CellState) Frame {
	p := s.Progress
	if p >= 1 || s.Previous == s.Current {
		return Frame{Static: s.Current}
	}
	if p < 0 {
		p = 0
	}

	if p < 0.5 {
		return Frame{
			Static: s.Previous,
			Panel: &Panel{
				Half:  HalfTop,
				Digit: s.Previous,
				Angle: -180 * p,
				Pivot: EdgeBottom,
				Shade: 2 * p * constant.FlipShadeMax,
			},
		}
	}

	return Frame{
		Static: s.Current,
		Panel: &Panel{
			Half:  HalfBottom,
			Digit: s.Current,
			Angle: 180 * (1 - p),
			Pivot: EdgeTop,
			Shade: 2 * (1 - p) * constant.FlipShadeMax,
		},
	}
}
