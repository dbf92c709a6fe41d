package renderers

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flip-clock/constant"
	"github.com/lixenwraith/flip-clock/render"
	"github.com/lixenwraith/flip-clock/screen"
	"github.com/mattn/go-runewidth"
)

// HeaderRenderer draws the date label and the AM/PM label above the digit row
type HeaderRenderer struct {
	composer *screen.Composer
}

// NewHeaderRenderer creates a header renderer
func NewHeaderRenderer(composer *screen.Composer) *HeaderRenderer {
	return &HeaderRenderer{composer: composer}
}

// Render implements SystemRenderer
func (r *HeaderRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	if !r.composer.Ready() {
		return
	}
	l := r.composer.Layout(ctx.ScreenWidth, ctx.ScreenHeight)
	f := r.composer.Face()

	if l.DateRow >= 0 {
		label := runewidth.Truncate(f.DateLabel, ctx.ScreenWidth, "…")
		drawCentered(buf, ctx.ScreenWidth, l.DateRow, label, render.RgbDateLabel, tcell.AttrNone)
	}
	if l.MeridiemRow >= 0 {
		drawCentered(buf, ctx.ScreenWidth, l.MeridiemRow, letterSpaced(string(f.Meridiem)), render.RgbMeridiem, tcell.AttrBold)
	}
}

// letterSpaced inserts LetterSpacing blanks between runes, the terminal stand-in for tracking
func letterSpaced(s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	sep := strings.Repeat(" ", constant.LetterSpacing)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, sep)
}

// drawCentered writes s horizontally centered on row y
func drawCentered(buf *render.Buffer, width, y int, s string, fg render.RGB, attrs tcell.AttrMask) {
	x := (width - runewidth.StringWidth(s)) / 2
	buf.SetText(max(x, 0), y, s, fg, attrs)
}
