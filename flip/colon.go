package flip

import (
	"time"

	"github.com/lixenwraith/flip-clock/animation"
	"github.com/lucasb-eyer/go-colorful"
)

// Colon blinks between a bright and a dim color, easing each change linearly in time
type Colon struct {
	bright  colorful.Color
	dim     colorful.Color
	visible bool
	tween   *animation.ColorTween
}

// NewColon creates a colon resting on the color for visible, with no fade in flight
func NewColon(bright, dim colorful.Color, fade time.Duration, visible bool) *Colon {
	initial := dim
	if visible {
		initial = bright
	}
	return &Colon{
		bright:  bright,
		dim:     dim,
		visible: visible,
		tween:   animation.NewColorTween(initial, fade, animation.Linear),
	}
}

// ColonVisible returns the blink state for a second of the minute
func ColonVisible(second int) bool {
	return second%2 == 0
}

// SetVisible changes the target color, a repeated value is a no-op
func (c *Colon) SetVisible(visible bool, now time.Time) {
	if visible == c.visible {
		return
	}
	c.visible = visible
	if visible {
		c.tween.Retarget(c.bright, now)
	} else {
		c.tween.Retarget(c.dim, now)
	}
}

// Advance is the per-frame callback
func (c *Colon) Advance(now time.Time) {
	c.tween.Advance(now)
}

// Visible returns the target state
func (c *Colon) Visible() bool {
	return c.visible
}

// Color returns the color to draw this frame
func (c *Colon) Color() colorful.Color {
	return c.tween.Value()
}

// IsAnimating returns true while a fade is in flight
func (c *Colon) IsAnimating() bool {
	return c.tween.IsAnimating()
}
