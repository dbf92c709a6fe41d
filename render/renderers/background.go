package renderers

import (
	"github.com/lixenwraith/flip-clock/render"
)

// BackgroundRenderer paints the vertical backdrop gradient
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates a background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements SystemRenderer
func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	render.FillVerticalGradient(buf, render.RgbBackdropTop, render.RgbBackdropBottom)
}
