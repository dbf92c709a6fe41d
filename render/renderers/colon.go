package renderers

import (
	"math"

	"github.com/lixenwraith/flip-clock/asset"
	"github.com/lixenwraith/flip-clock/constant"
	"github.com/lixenwraith/flip-clock/render"
	"github.com/lixenwraith/flip-clock/screen"
)

// ColonRenderer draws the blinking separator between hours and minutes
type ColonRenderer struct {
	composer *screen.Composer
	atlas    *asset.Atlas
}

// NewColonRenderer creates a colon renderer sharing the glyph atlas
func NewColonRenderer(composer *screen.Composer, atlas *asset.Atlas) *ColonRenderer {
	return &ColonRenderer{
		composer: composer,
		atlas:    atlas,
	}
}

// Render implements SystemRenderer
func (r *ColonRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	if !r.composer.Ready() {
		return
	}
	l := r.composer.Layout(ctx.ScreenWidth, ctx.ScreenHeight)
	if l.Compact {
		return
	}

	w, h := int(l.Colon.W), int(l.Colon.H)
	if w <= 0 || h <= 0 {
		return
	}
	// Glyph is sized against the card height so both colon dots sit inside the digit band
	mask := r.atlas.Glyph(':', w, h, constant.ColonFontSize)
	color := render.FromColorful(r.composer.Colon().Color())
	lift := int(math.Round(constant.ColonLift * l.Scale))
	x0, y0 := int(l.Colon.X), int(l.Colon.Y)-lift

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			if a := mask.Coverage(px, py); a > 0 {
				buf.BlendPixel(x0+px, y0+py, color, a)
			}
		}
	}
}
