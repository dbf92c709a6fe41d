package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// halfBlock draws the upper pixel as foreground and the lower as background
const halfBlock = '▀'

// textCell is a character written over the pixel layer
// Wide runes occupy their cell and mark the next one as a continuation
type textCell struct {
	r     rune
	fg    RGB
	attrs tcell.AttrMask
	cont  bool
}

// Buffer is a compositor with a pixel layer and a text layer
// Every terminal cell holds two stacked pixels, so the pixel grid is width × 2*height
// Text cells take the mean of their two pixels as background
type Buffer struct {
	pixels []RGB
	text   []textCell
	width  int
	height int
}

// NewBuffer creates a buffer for a terminal of width × height cells
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	cells := width * height
	if cap(b.text) < cells {
		b.text = make([]textCell, cells)
		b.pixels = make([]RGB, cells*2)
	} else {
		b.text = b.text[:cells]
		b.pixels = b.pixels[:cells*2]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all pixels to the surface color and drops all text, using exponential copy
func (b *Buffer) Clear() {
	if len(b.text) == 0 {
		return
	}
	b.pixels[0] = RgbSurface
	for filled := 1; filled < len(b.pixels); filled *= 2 {
		copy(b.pixels[filled:], b.pixels[:filled])
	}
	b.text[0] = textCell{}
	for filled := 1; filled < len(b.text); filled *= 2 {
		copy(b.text[filled:], b.text[:filled])
	}
}

// Bounds returns the size in terminal cells
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// PixelBounds returns the size of the pixel grid
func (b *Buffer) PixelBounds() (int, int) {
	return b.width, b.height * 2
}

func (b *Buffer) pixelInBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height*2
}

func (b *Buffer) cellInBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// ===== PIXEL API =====

// SetPixel writes an opaque pixel
func (b *Buffer) SetPixel(x, y int, c RGB) {
	if !b.pixelInBounds(x, y) {
		return
	}
	b.pixels[y*b.width+x] = c
}

// BlendPixel composites c over the existing pixel with the given alpha
func (b *Buffer) BlendPixel(x, y int, c RGB, alpha float64) {
	if !b.pixelInBounds(x, y) || alpha <= 0 {
		return
	}
	idx := y*b.width + x
	b.pixels[idx] = Blend(b.pixels[idx], c, alpha)
}

// Pixel returns the pixel at (x, y), surface color outside the grid
func (b *Buffer) Pixel(x, y int) RGB {
	if !b.pixelInBounds(x, y) {
		return RgbSurface
	}
	return b.pixels[y*b.width+x]
}

// ===== TEXT API =====

// SetText writes s starting at cell (x, y) and returns the column after the last rune
// Runes falling outside the buffer are clipped
func (b *Buffer) SetText(x, y int, s string, fg RGB, attrs tcell.AttrMask) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if b.cellInBounds(x, y) {
			b.text[y*b.width+x] = textCell{r: r, fg: fg, attrs: attrs}
			if w == 2 && b.cellInBounds(x+1, y) {
				b.text[y*b.width+x+1] = textCell{cont: true}
			}
		}
		x += w
	}
	return x
}

// Text returns the rune and color written at cell (x, y)
func (b *Buffer) Text(x, y int) (rune, RGB, bool) {
	if !b.cellInBounds(x, y) {
		return 0, RGB{}, false
	}
	tc := b.text[y*b.width+x]
	if tc.r == 0 {
		return 0, RGB{}, false
	}
	return tc.r, tc.fg, true
}

// ===== OUTPUT =====

// Cell resolves terminal cell (x, y) to the rune and style that Flush writes
func (b *Buffer) Cell(x, y int) (rune, tcell.Style) {
	top := b.pixels[(2*y)*b.width+x]
	bottom := b.pixels[(2*y+1)*b.width+x]

	tc := b.text[y*b.width+x]
	if tc.r != 0 {
		style := tcell.StyleDefault.
			Foreground(RGBToTcell(tc.fg)).
			Background(RGBToTcell(Mix(top, bottom))).
			Attributes(tc.attrs)
		return tc.r, style
	}

	if top == bottom {
		return ' ', tcell.StyleDefault.Background(RGBToTcell(top))
	}
	return halfBlock, tcell.StyleDefault.Foreground(RGBToTcell(top)).Background(RGBToTcell(bottom))
}

// FlushToScreen writes the buffer to screen and shows it
func (b *Buffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.text[y*b.width+x].cont {
				continue
			}
			r, style := b.Cell(x, y)
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
