package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundedRectContains(t *testing.T) {
	rr := RoundedRect{X: 0, Y: 0, W: 20, H: 20, R: 5}

	assert.True(t, rr.Contains(10, 10), "center")
	assert.True(t, rr.Contains(0.5, 10), "left edge middle")
	assert.False(t, rr.Contains(0.2, 0.2), "cut corner")
	assert.True(t, rr.Contains(5, 0.5), "corner tangent")
	assert.False(t, rr.Contains(20, 10), "right edge is exclusive")
	assert.False(t, rr.Contains(-1, 10))
}

func TestRoundedRectCoverage(t *testing.T) {
	rr := RoundedRect{X: 2, Y: 2, W: 10, H: 10, R: 3}

	assert.Equal(t, 1.0, rr.Coverage(6, 6))
	assert.Equal(t, 0.0, rr.Coverage(0, 0))
	assert.Equal(t, 0.0, rr.Coverage(2, 2), "outermost corner pixel")

	partial := rr.Coverage(2, 3)
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 1.0)
}

func TestRoundedRectRadiusClamped(t *testing.T) {
	// Radius larger than half the short side behaves as a stadium
	rr := RoundedRect{X: 0, Y: 0, W: 10, H: 4, R: 100}
	assert.True(t, rr.Contains(5, 2))
	assert.False(t, rr.Contains(0.1, 0.1))
}

func TestRoundedRectPixelSpan(t *testing.T) {
	rr := RoundedRect{X: 1.5, Y: 2, W: 3, H: 4}
	x0, y0, x1, y1 := rr.PixelSpan()
	assert.Equal(t, []int{1, 2, 5, 6}, []int{x0, y0, x1, y1})
}

func TestFillVerticalGradient(t *testing.T) {
	b := NewBuffer(3, 2)
	FillVerticalGradient(b, RGBWhite, RGBBlack)

	assert.Equal(t, RGBWhite, b.Pixel(0, 0))
	assert.Equal(t, RGBBlack, b.Pixel(2, 3))
	assert.Greater(t, b.Pixel(1, 1).R, b.Pixel(1, 2).R)
	assert.Equal(t, b.Pixel(0, 1), b.Pixel(2, 1), "rows are uniform")
}
