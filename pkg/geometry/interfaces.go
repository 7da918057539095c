package geometry

import "github.com/df07/go-sphere-raytracer/pkg/core"

// Intersection contains information about a ray-surface intersection
type Intersection struct {
	T        float64   // Parameter t along the ray
	Position core.Vec3 // World-space hit point
	Normal   core.Vec3 // Unit outward surface normal at the hit point
}

// Shape interface for objects that can be intersected by rays.
// Intersect reports the nearest hit with t strictly inside (ray.Mint, ray.Maxt).
type Shape interface {
	Intersect(ray core.Ray) (Intersection, bool)
}
