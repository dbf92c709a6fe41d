package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flip-clock/asset"
	"github.com/lixenwraith/flip-clock/constant"
	"github.com/lixenwraith/flip-clock/flip"
	"github.com/lixenwraith/flip-clock/render"
	"github.com/lixenwraith/flip-clock/screen"
)

// CardsRenderer draws the four digit cards with their flip panels
// In compact layouts it falls back to the time as plain text
type CardsRenderer struct {
	composer *screen.Composer
	atlas    *asset.Atlas
	lastW    int
	lastH    int
}

// NewCardsRenderer creates a cards renderer sharing the glyph atlas
func NewCardsRenderer(composer *screen.Composer, atlas *asset.Atlas) *CardsRenderer {
	return &CardsRenderer{
		composer: composer,
		atlas:    atlas,
	}
}

// Render implements SystemRenderer
func (r *CardsRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	if !r.composer.Ready() {
		return
	}
	l := r.composer.Layout(ctx.ScreenWidth, ctx.ScreenHeight)

	if l.Compact {
		r.renderCompact(ctx, buf, l)
		return
	}

	// Masks are sized to the card, drop them when a resize changes the card
	cw, ch := int(l.Cards[0].W), int(l.Cards[0].H)
	if cw != r.lastW || ch != r.lastH {
		r.atlas.Reset()
		r.lastW, r.lastH = cw, ch
	}

	for i, rect := range l.Cards {
		paintCard(buf, r.atlas, rect, r.composer.Cell(i).Frame())
	}
}

// renderCompact writes "HH:MM" as text; the colon follows the blink color
func (r *CardsRenderer) renderCompact(ctx render.RenderContext, buf *render.Buffer, l screen.Layout) {
	text := []rune(r.composer.Face().Text())
	x := max((ctx.ScreenWidth-len(text))/2, 0)
	colon := render.FromColorful(r.composer.Colon().Color())

	for i, ch := range text {
		fg := render.RgbDigit
		if i == 2 {
			ch = ':'
			fg = colon
		}
		buf.SetText(x+i, l.TimeRow, string(ch), fg, tcell.AttrBold)
	}
}

// paintCard composites one card: two static halves with the divider, then the rotating panel if any
func paintCard(buf *render.Buffer, atlas *asset.Atlas, rect render.RoundedRect, frame flip.Frame) {
	w, h := int(rect.W), int(rect.H)
	if w <= 0 || h <= 1 {
		return
	}
	half := h / 2
	x0, y0 := int(rect.X), int(rect.Y)

	static := atlas.Glyph(frame.Static.Rune(), w, h, constant.DigitFontSize)

	var panelMask *asset.Mask
	cos := 0.0
	if frame.Panel != nil {
		panelMask = atlas.Glyph(frame.Panel.Digit.Rune(), w, h, constant.DigitFontSize)
		cos = math.Abs(math.Cos(frame.Panel.Angle * math.Pi / 180))
	}

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			cov := rect.Coverage(x0+px, y0+py)
			if cov <= 0 {
				continue
			}

			color := staticPixel(static, px, py, half)
			if frame.Panel != nil && cos > 1e-6 {
				color = panelPixel(color, rect, panelMask, frame.Panel, cos, px, py, half)
			}
			buf.BlendPixel(x0+px, y0+py, color, cov)
		}
	}
}

// staticPixel is the settled face: highlight on top, shadow below, a dark seam between
func staticPixel(mask *asset.Mask, px, py, half int) render.RGB {
	if py >= half && py < half+constant.CardDivider {
		return render.Darken(render.RgbCard, render.DividerAlpha)
	}
	base := render.RgbCardTop
	if py > half {
		base = render.RgbCardBottom
	}
	return render.Blend(base, render.RgbDigit, mask.Coverage(px, py))
}

// panelPixel projects a half card rotated about its hinge onto the screen
// Rotation about a horizontal axis shortens the panel to half*cos(angle), anchored at the hinge
// Each covered row samples the unrotated half at the matching source row
func panelPixel(under render.RGB, rect render.RoundedRect, mask *asset.Mask, panel *flip.Panel, cos float64, px, py, half int) render.RGB {
	v := float64(py) + 0.5
	hinge := float64(half)
	projected := hinge * cos

	var src float64
	var shade float64
	var base render.RGB

	switch panel.Half {
	case flip.HalfTop:
		if v < hinge-projected || v >= hinge {
			return under
		}
		src = hinge - (hinge-v)/cos
		// Darkest at the free edge, fading toward the hinge
		shade = panel.Shade * (1 - src/hinge)
		base = render.RgbCardTop
	default:
		if v < hinge || v >= hinge+projected {
			return under
		}
		src = hinge + (v-hinge)/cos
		shade = panel.Shade * ((src - hinge) / hinge)
		base = render.RgbCardBottom
	}

	sy := int(math.Floor(src))
	// Source row outside the rounded outline (corners) shows the static face
	srcCov := rect.Coverage(int(rect.X)+px, int(rect.Y)+sy)
	if srcCov <= 0 {
		return under
	}

	c := render.Blend(base, render.RgbDigit, mask.Coverage(px, sy))
	c = render.Darken(c, shade)
	return render.Blend(under, c, srcCov)
}
