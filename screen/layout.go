package screen

import (
	"math"

	"github.com/lixenwraith/flip-clock/constant"
	"github.com/lixenwraith/flip-clock/render"
)

// Layout places the clock face on a terminal of Width × Height cells
// Card and colon rects are in pixel space (two pixels per cell row), text rows in cells
type Layout struct {
	Width, Height int

	// Compact is set when cards would be too small; the time is drawn as text on TimeRow
	Compact bool
	TimeRow int

	// Scale is pixels per logical unit
	Scale float64

	DateRow     int
	MeridiemRow int

	Cards  [4]render.RoundedRect
	Colon  render.RoundedRect
	Radius float64
}

// NewLayout computes the layout for a terminal size
// Top to bottom: padding, date, spacer, AM/PM, spacer, digit row centered in the remaining space, padding
func NewLayout(width, height int) Layout {
	l := Layout{
		Width:       width,
		Height:      height,
		DateRow:     constant.PadRows,
		MeridiemRow: constant.PadRows + constant.HeaderRows - 1,
	}

	bodyTop := constant.PadRows + constant.HeaderRows + 1
	bodyRows := height - bodyTop - constant.PadRows - 1
	availW := float64(width - 2*constant.PadCols)
	availH := float64(2 * bodyRows)

	scale := 0.0
	if bodyRows > 0 && availW > 0 {
		scale = math.Min(availW/constant.DigitRowWidth, availH/constant.CardHeight)
		scale = math.Min(scale, constant.MaxPixelScale)
	}
	l.Scale = scale

	if scale < constant.MinPixelScale {
		l.Compact = true
		l.TimeRow = bodyTop + max(bodyRows, 0)/2
		if l.TimeRow >= height {
			l.TimeRow = max(height-1, 0)
		}
		if height <= constant.PadRows+constant.HeaderRows {
			// Not even room for the header: time goes first
			l.TimeRow = 0
			l.DateRow = -1
			l.MeridiemRow = -1
		}
		return l
	}

	// Snap to whole pixels, card height kept even so both halves match
	cardW := math.Round(constant.CardWidth * scale)
	cardH := 2 * math.Round(constant.CardHeight/2*scale)
	gap := math.Max(1, math.Round(constant.DigitGap*scale))
	colonW := math.Max(1, math.Round(constant.ColonWidth*scale))
	l.Radius = constant.CardRadius * scale

	rowW := 4*cardW + colonW + 4*gap
	x := math.Floor((float64(width) - rowW) / 2)
	y := float64(2*bodyTop) + math.Floor((availH-cardH)/2)

	card := func() render.RoundedRect {
		r := render.RoundedRect{X: x, Y: y, W: cardW, H: cardH, R: l.Radius}
		x += cardW + gap
		return r
	}
	l.Cards[0] = card()
	l.Cards[1] = card()
	l.Colon = render.RoundedRect{X: x, Y: y, W: colonW, H: cardH}
	x += colonW + gap
	l.Cards[2] = card()
	l.Cards[3] = card()

	return l
}

// HalfHeight returns the pixel height of one card half
func (l Layout) HalfHeight() float64 {
	return l.Cards[0].H / 2
}
