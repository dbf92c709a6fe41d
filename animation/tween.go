package animation

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorTween interpolates between two colors in RGB space over a Progress
// Retargeting mid-run starts from the color currently displayed, so there is no jump
type ColorTween struct {
	from     colorful.Color
	to       colorful.Color
	progress *Progress
}

// NewColorTween creates a tween resting on initial
func NewColorTween(initial colorful.Color, duration time.Duration, curve Curve) *ColorTween {
	return &ColorTween{
		from:     initial,
		to:       initial,
		progress: NewProgress(duration, curve),
	}
}

// Retarget starts a run from the displayed color toward target
// Retargeting to the current target is a no-op
func (t *ColorTween) Retarget(target colorful.Color, now time.Time) {
	if target == t.to {
		return
	}
	t.from = t.Value()
	t.to = target
	t.progress.Restart(now)
}

// Advance moves the tween to now and reports whether it is still in flight
func (t *ColorTween) Advance(now time.Time) bool {
	return t.progress.Advance(now)
}

// Value returns the color for the current progress
func (t *ColorTween) Value() colorful.Color {
	p := t.progress.Value()
	if p >= 1 {
		return t.to
	}
	return t.from.BlendRgb(t.to, p).Clamped()
}

// Target returns the color the tween is heading to
func (t *ColorTween) Target() colorful.Color {
	return t.to
}

// IsAnimating returns true while a transition is in flight
func (t *ColorTween) IsAnimating() bool {
	return t.progress.IsAnimating()
}
