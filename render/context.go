package render

import "time"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Frame timestamp, the same instant every animation was advanced to
	Now time.Time

	// FrameNumber counts rendered frames since start
	FrameNumber uint64

	// Screen dimensions (terminal size in cells)
	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext creates a RenderContext for a frame
func NewRenderContext(now time.Time, frame uint64, width, height int) RenderContext {
	return RenderContext{
		Now:          now,
		FrameNumber:  frame,
		ScreenWidth:  width,
		ScreenHeight: height,
	}
}
