package vmath

import "math"

// Easing maps linear progress in [0,1] to eased progress
// Output may leave [0,1] for overshoot curves
type Easing func(t float64) float64

// CubicBezier is a CSS-style timing curve anchored at (0,0) and (1,1)
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Common curves
var (
	// EaseIn matches CSS ease-in
	EaseIn = CubicBezier{0.42, 0, 1, 1}.Ease
	// EaseOut matches CSS ease-out
	EaseOut = CubicBezier{0, 0, 0.58, 1}.Ease
	// EaseOutBack overshoots the target before settling
	EaseOutBack = CubicBezier{0.175, 0.885, 0.32, 1.275}.Ease
)

const (
	bezierNewtonIterations = 8
	bezierBisectIterations = 32
	bezierEpsilon          = 1e-6
)

// Ease solves x(s) = t for the curve parameter and returns y(s)
func (c CubicBezier) Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return sample(c.Y1, c.Y2, c.solveX(t))
}

func (c CubicBezier) solveX(x float64) float64 {
	// Newton-Raphson first, it converges in a few steps for sane curves
	s := x
	for range bezierNewtonIterations {
		dx := sample(c.X1, c.X2, s) - x
		if math.Abs(dx) < bezierEpsilon {
			return s
		}
		d := slope(c.X1, c.X2, s)
		if math.Abs(d) < bezierEpsilon {
			break
		}
		s -= dx / d
	}

	// Bisection fallback, x(s) is monotonic for x control points in [0,1]
	lo, hi := 0.0, 1.0
	s = x
	for range bezierBisectIterations {
		v := sample(c.X1, c.X2, s)
		if math.Abs(v-x) < bezierEpsilon {
			return s
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}

// sample evaluates one axis of the bezier with P0=0 and P3=1
func sample(p1, p2, s float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func slope(p1, p2, s float64) float64 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}
