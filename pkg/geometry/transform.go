package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Transform places an object in world space
type Transform struct {
	Position    core.Vec3
	Orientation mgl64.Quat
	Scale       core.Vec3
}

// NewTransform creates a transform with identity orientation and unit scale
func NewTransform(position core.Vec3) Transform {
	return Transform{
		Position:    position,
		Orientation: mgl64.QuatIdent(),
		Scale:       core.NewVec3(1, 1, 1),
	}
}

// NewTransformFromEuler creates a transform rotated by yaw (about z), pitch
// (about y) and roll (about x), all in degrees
func NewTransformFromEuler(position core.Vec3, yaw, pitch, roll float64) Transform {
	t := NewTransform(position)
	t.Orientation = mgl64.AnglesToQuat(
		mgl64.DegToRad(yaw),
		mgl64.DegToRad(pitch),
		mgl64.DegToRad(roll),
		mgl64.ZYX,
	)
	return t
}

// Matrix returns the rigid world matrix (translation and rotation, scale excluded)
func (t Transform) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(t.Position.X, t.Position.Y, t.Position.Z).Mul4(t.Orientation.Mat4())
}

// TransformDirection applies the transform to a direction, ignoring translation
func (t Transform) TransformDirection(d core.Vec3) core.Vec3 {
	v := t.Matrix().Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return core.NewVec3(v[0], v[1], v[2])
}

// TransformPoint applies the transform to a point
func (t Transform) TransformPoint(p core.Vec3) core.Vec3 {
	v := t.Matrix().Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return core.NewVec3(v[0], v[1], v[2])
}
