package render

import "math"

// FillVerticalGradient paints the whole pixel grid from top to bottom color
func FillVerticalGradient(buf *Buffer, top, bottom RGB) {
	w, h := buf.PixelBounds()
	if h == 0 {
		return
	}
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		c := Blend(top, bottom, t)
		for x := 0; x < w; x++ {
			buf.SetPixel(x, y, c)
		}
	}
}

// RoundedRect is a rectangle in pixel space with circular corners of radius R
type RoundedRect struct {
	X, Y, W, H float64
	R          float64
}

// Contains reports whether the point lies inside the shape
func (rr RoundedRect) Contains(x, y float64) bool {
	if x < rr.X || y < rr.Y || x >= rr.X+rr.W || y >= rr.Y+rr.H {
		return false
	}
	r := math.Min(rr.R, math.Min(rr.W, rr.H)/2)
	if r <= 0 {
		return true
	}

	// Distance to the nearest corner center, only relevant inside a corner square
	cx := math.Max(rr.X+r-x, x-(rr.X+rr.W-r))
	cy := math.Max(rr.Y+r-y, y-(rr.Y+rr.H-r))
	if cx <= 0 || cy <= 0 {
		return true
	}
	return cx*cx+cy*cy <= r*r
}

// supersample offsets inside one pixel
var supersample = [4][2]float64{{0.25, 0.25}, {0.75, 0.25}, {0.25, 0.75}, {0.75, 0.75}}

// Coverage returns the fraction of pixel (px, py) inside the shape, sampled 2×2
func (rr RoundedRect) Coverage(px, py int) float64 {
	hits := 0
	for _, o := range supersample {
		if rr.Contains(float64(px)+o[0], float64(py)+o[1]) {
			hits++
		}
	}
	return float64(hits) / float64(len(supersample))
}

// PixelSpan returns the integer pixel range [x0, x1) × [y0, y1) that covers the shape
func (rr RoundedRect) PixelSpan() (x0, y0, x1, y1 int) {
	return int(math.Floor(rr.X)), int(math.Floor(rr.Y)),
		int(math.Ceil(rr.X + rr.W)), int(math.Ceil(rr.Y + rr.H))
}
