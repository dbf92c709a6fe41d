package animation

import (
	"fmt"
	"time"
)

// Status is the run state of a Progress
type Status int

const (
	// StatusCompleted means progress rests at 1
	StatusCompleted Status = iota
	// StatusForward means progress is moving toward 1
	StatusForward
)

// String returns a human-readable representation of the status
func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusForward:
		return "forward"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Progress drives a single 0 → 1 run from frame timestamps
// It owns no timer: the render loop calls Advance once per frame
// A zero-duration Progress completes on the first Advance
type Progress struct {
	Duration time.Duration
	Curve    Curve

	start  time.Time
	linear float64
	status Status
}

// NewProgress creates a completed progress, so the first Restart is the first run
func NewProgress(duration time.Duration, curve Curve) *Progress {
	if curve == nil {
		curve = Linear
	}
	return &Progress{
		Duration: duration,
		Curve:    curve,
		linear:   1,
		status:   StatusCompleted,
	}
}

// Restart snaps progress to 0 and starts a new run at now, discarding any run in flight
func (p *Progress) Restart(now time.Time) {
	p.start = now
	p.linear = 0
	p.status = StatusForward
}

// Advance moves progress to the position for now and reports whether the run is still in flight
func (p *Progress) Advance(now time.Time) bool {
	if p.status != StatusForward {
		return false
	}

	if p.Duration <= 0 {
		p.finish()
		return false
	}

	elapsed := now.Sub(p.start)
	if elapsed < 0 {
		elapsed = 0
	}
	p.linear = float64(elapsed) / float64(p.Duration)
	if p.linear >= 1 {
		p.finish()
		return false
	}
	return true
}

// Complete jumps to the end of the current run
func (p *Progress) Complete() {
	p.finish()
}

func (p *Progress) finish() {
	p.linear = 1
	p.status = StatusCompleted
}

// Linear returns un-eased progress in [0, 1]
func (p *Progress) Linear() float64 {
	return p.linear
}

// Value returns eased progress in [0, 1]
func (p *Progress) Value() float64 {
	if p.status == StatusCompleted {
		return 1
	}
	return clampUnit(p.Curve(p.linear))
}

// Status returns the run state
func (p *Progress) Status() Status {
	return p.status
}

// IsAnimating returns true while a run is in flight
func (p *Progress) IsAnimating() bool {
	return p.status == StatusForward
}
