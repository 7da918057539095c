package geometry

import "math"

// Roots holds the real roots of a quadratic in ascending order
type Roots struct {
	Count  int // 0, 1 or 2
	Values [2]float64
}

// SolveQuadratic finds the real roots of a*t^2 + b*t + c = 0.
// A zero discriminant yields one repeated root. When a is zero the
// equation is solved as linear.
func SolveQuadratic(a, b, c float64) Roots {
	if a == 0 {
		if b == 0 {
			return Roots{}
		}
		return Roots{Count: 1, Values: [2]float64{-c / b}}
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Roots{}
	}
	if discriminant == 0 {
		return Roots{Count: 1, Values: [2]float64{-b / (2 * a)}}
	}

	// q avoids cancellation between -b and the square root
	sqrtD := math.Sqrt(discriminant)
	var q float64
	if b < 0 {
		q = -0.5 * (b - sqrtD)
	} else {
		q = -0.5 * (b + sqrtD)
	}

	t0, t1 := q/a, c/q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return Roots{Count: 2, Values: [2]float64{t0, t1}}
}
