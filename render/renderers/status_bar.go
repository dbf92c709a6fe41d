package renderers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flip-clock/render"
	"github.com/lixenwraith/flip-clock/screen"
)

// StatusBarRenderer draws a one-line diagnostic overlay on the bottom row
// Only visible when debug output is enabled
type StatusBarRenderer struct {
	composer *screen.Composer
	enabled  bool

	// FPS Tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(composer *screen.Composer, enabled bool) *StatusBarRenderer {
	return &StatusBarRenderer{
		composer: composer,
		enabled:  enabled,
	}
}

// IsVisible implements VisibilityToggle
func (s *StatusBarRenderer) IsVisible() bool {
	return s.enabled
}

// FPS returns the frame count measured over the last full second
func (s *StatusBarRenderer) FPS() int {
	return s.currentFps
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	// FPS Calculation, driven by the frame clock so fake clocks measure too
	s.frameCount++
	if s.lastFpsUpdate.IsZero() {
		s.lastFpsUpdate = ctx.Now
	}
	if ctx.Now.Sub(s.lastFpsUpdate) >= time.Second {
		s.currentFps = s.frameCount
		s.frameCount = 0
		s.lastFpsUpdate = ctx.Now
	}

	if ctx.ScreenHeight < 1 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "fps %d  frame %d  %dx%d", s.currentFps, ctx.FrameNumber, ctx.ScreenWidth, ctx.ScreenHeight)
	if s.composer.Ready() {
		sb.WriteString("  cells")
		for i := 0; i < 4; i++ {
			c := s.composer.Cell(i)
			fmt.Fprintf(&sb, " %s:%s", c.Current(), c.Phase())
		}
	}

	buf.SetText(0, ctx.ScreenHeight-1, sb.String(), render.RgbDebug, tcell.AttrDim)
}
