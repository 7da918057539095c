package core

// Ray represents a bounded ray segment. Only points at parameters in
// [Mint, Maxt) are valid intersection candidates.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Mint      float64 // Minimum parameter along the ray
	Maxt      float64 // Maximum parameter along the ray, narrowed as closer hits are found
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3, mint, maxt float64) Ray {
	return Ray{Origin: origin, Direction: direction, Mint: mint, Maxt: maxt}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Reverse returns a ray from the same origin pointing the opposite way.
// The parametric interval is kept, so it covers the mirrored segment.
func (r Ray) Reverse() Ray {
	return Ray{
		Origin:    r.Origin,
		Direction: r.Direction.Negate(),
		Mint:      r.Mint,
		Maxt:      r.Maxt,
	}
}
