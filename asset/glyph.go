// Package asset rasterises the digit and colon glyphs drawn on flip cards
package asset

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Mask is an 8-bit coverage bitmap, row-major
type Mask struct {
	W, H int
	A    []uint8
}

// At returns coverage at (x, y), zero outside the mask
func (m *Mask) At(x, y int) uint8 {
	if m == nil || x < 0 || y < 0 || x >= m.W || y >= m.H {
		return 0
	}
	return m.A[y*m.W+x]
}

// Coverage returns coverage at (x, y) in [0, 1]
func (m *Mask) Coverage(x, y int) float64 {
	return float64(m.At(x, y)) / 255
}

var (
	fontOnce sync.Once
	monoBold *opentype.Font
)

// face returns the shared Go Mono Bold font, parsed on first use
func face() *opentype.Font {
	fontOnce.Do(func() {
		f, err := opentype.Parse(gomonobold.TTF)
		if err != nil {
			// Embedded font, failure means a broken build
			panic("asset: parse gomonobold: " + err.Error())
		}
		monoBold = f
	})
	return monoBold
}

type glyphKey struct {
	r    rune
	w, h int
	size float64
}

// Atlas caches glyph masks by rune and box size
// Not safe for concurrent use, the render loop owns it
type Atlas struct {
	cache map[glyphKey]*Mask
}

// NewAtlas creates an empty atlas
func NewAtlas() *Atlas {
	return &Atlas{cache: make(map[glyphKey]*Mask)}
}

// Glyph returns r centered in a w×h box with an em size of emFraction*h pixels
// Runes without ink (space) yield an empty mask
func (a *Atlas) Glyph(r rune, w, h int, emFraction float64) *Mask {
	if w <= 0 || h <= 0 {
		return &Mask{}
	}
	key := glyphKey{r: r, w: w, h: h, size: emFraction}
	if m, ok := a.cache[key]; ok {
		return m
	}
	m := rasterize(r, w, h, emFraction*float64(h))
	a.cache[key] = m
	return m
}

// Len returns the number of cached masks
func (a *Atlas) Len() int {
	return len(a.cache)
}

// Reset drops every cached mask, call after a resize changes the card size
func (a *Atlas) Reset() {
	clear(a.cache)
}

func rasterize(r rune, w, h int, size float64) *Mask {
	m := &Mask{W: w, H: h, A: make([]uint8, w*h)}
	if size < 1 {
		return m
	}

	ff, err := opentype.NewFace(face(), &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return m
	}
	defer ff.Close()

	s := string(r)
	bounds, _ := font.BoundString(ff, s)
	inkW := (bounds.Max.X - bounds.Min.X).Ceil()
	inkH := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if inkW <= 0 || inkH <= 0 {
		return m
	}

	// Center the ink box, not the advance box, so digits of different widths line up
	dotX := (w-inkW)/2 - bounds.Min.X.Floor()
	dotY := (h-inkH)/2 - bounds.Min.Y.Floor()

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: ff,
		Dot:  fixed.P(dotX, dotY),
	}
	d.DrawString(s)

	copy(m.A, dst.Pix)
	return m
}
