package animation

import "math"

// Curve maps linear progress t in [0, 1] to eased progress
type Curve func(t float64) float64

// Linear returns t unchanged
func Linear(t float64) float64 {
	return clampUnit(t)
}

// FlipCurve is the ease-in-out used for card flips, a fast lift with a soft landing
var FlipCurve = CubicBezier(0.2, 0.55, 0.24, 1.0)

// CubicBezier returns an easing curve matching CSS cubic-bezier(x1, y1, x2, y2)
// The curve runs from (0,0) to (1,1); x is time, y is progress
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Solve x(u) = t with Newton-Raphson, fall back to bisection
		u := t
		for range 8 {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezierSample(y1, y2, clampUnit(u))
			}
			dx := bezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 20 {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return bezierSample(y1, y2, u)
	}
}

// bezierSample evaluates one axis of the curve with implicit end points 0 and 1
func bezierSample(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
