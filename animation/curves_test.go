package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCubicBezierEndpoints(t *testing.T) {
	curves := map[string]Curve{
		"flip":   FlipCurve,
		"linear": CubicBezier(0, 0, 1, 1),
		"ease":   CubicBezier(0.25, 0.1, 0.25, 1.0),
	}

	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0.0, curve(0))
			assert.Equal(t, 1.0, curve(1))
			assert.Equal(t, 0.0, curve(-0.5), "below range clamps to 0")
			assert.Equal(t, 1.0, curve(1.5), "above range clamps to 1")
		})
	}
}

func TestCubicBezierLinearControlPoints(t *testing.T) {
	curve := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for i := 1; i < 10; i++ {
		x := float64(i) / 10
		assert.InDelta(t, x, curve(x), 1e-5)
	}
}

func TestFlipCurveMonotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 200; i++ {
		v := FlipCurve(float64(i) / 200)
		assert.GreaterOrEqual(t, v, prev-1e-9, "curve must not move backward at step %d", i)
		assert.LessOrEqual(t, v, 1.0)
		prev = v
	}
}

func TestFlipCurveEasesOut(t *testing.T) {
	// Front-loaded: past the halfway point of progress before half the time
	assert.Greater(t, FlipCurve(0.5), 0.5)
	assert.Greater(t, FlipCurve(0.25), 0.25)
}

func TestLinearClamps(t *testing.T) {
	assert.Equal(t, 0.0, Linear(-1))
	assert.Equal(t, 0.3, Linear(0.3))
	assert.Equal(t, 1.0, Linear(2))
}
