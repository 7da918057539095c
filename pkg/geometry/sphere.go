package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect finds the nearest intersection of the ray with the sphere
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	// Substituting ray.At(t) into |p - center|^2 = r^2 gives
	// |d|^2 t^2 + 2 d·oc t + |oc|^2 - r^2 = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	b := 2 * ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	roots := SolveQuadratic(a, b, c)

	// Roots are ascending, so the first one inside the open interval is the nearest
	t, found := 0.0, false
	for i := 0; i < roots.Count; i++ {
		root := roots.Values[i]
		if ray.Mint < root && root < ray.Maxt {
			t, found = root, true
			break
		}
	}
	if !found {
		return Intersection{}, false
	}

	position := ray.At(t)
	return Intersection{
		T:        t,
		Position: position,
		Normal:   position.Subtract(s.Center).Divide(s.Radius),
	}, true
}
