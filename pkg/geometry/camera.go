package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

var (
	ErrInvalidFOV         = errors.New("field of view must be between 0 and 180 degrees")
	ErrInvalidAspectRatio = errors.New("aspect ratio must be positive")
	ErrInvalidClip        = errors.New("clip distances must satisfy 0 <= near < far")
)

// Camera is a perspective camera looking down its local +x axis with +z up
type Camera struct {
	Transform   Transform // Camera to world transform
	FOV         float64   // Horizontal field of view in degrees
	AspectRatio float64   // Width / height
	NearClip    float64   // Near clipping plane in world-space units
	FarClip     float64   // Far clipping plane in world-space units

	directionX float64 // Forward distance to the projection plane
}

// NewCamera creates a camera. Parameters are not validated; see CameraConfig.Validate.
func NewCamera(transform Transform, fov, aspectRatio, nearClip, farClip float64) *Camera {
	return &Camera{
		Transform:   transform,
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearClip:    nearClip,
		FarClip:     farClip,
		directionX:  1.0 / math.Tan(mgl64.DegToRad(fov)/2.0),
	}
}

// GenerateRay converts a clip-space position in [-1,1]x[-1,1] into a world-space ray.
// Clip distances are measured along the forward axis, so they are rescaled for
// off-axis rays to keep the clip planes flat.
func (c *Camera) GenerateRay(clipX, clipY float64) core.Ray {
	direction := core.NewVec3(c.directionX, clipX*c.AspectRatio, clipY)
	scale := direction.Length() / c.directionX

	return core.NewRay(
		c.Transform.TransformPoint(core.Vec3{}),
		c.Transform.TransformDirection(direction).Normalize(),
		c.NearClip*scale,
		c.FarClip*scale,
	)
}

// CameraConfig contains camera parameters in a form suited to configuration
type CameraConfig struct {
	Position    core.Vec3
	Yaw         float64 // Rotation about world z in degrees
	Pitch       float64 // Rotation about world y in degrees
	Roll        float64 // Rotation about world x in degrees
	FOV         float64 // Horizontal field of view in degrees
	AspectRatio float64 // Width / height
	NearClip    float64
	FarClip     float64
}

// DefaultCameraConfig returns a camera at the origin looking down +x with a 90 degree view
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:    core.NewVec3(0, 0, 0),
		FOV:         90.0,
		AspectRatio: 4.0 / 3.0,
		NearClip:    0.1,
		FarClip:     1000.0,
	}
}

// Validate checks the preconditions ray generation relies on
func (cc CameraConfig) Validate() error {
	if !(cc.FOV > 0 && cc.FOV < 180) {
		return fmt.Errorf("fov %v: %w", cc.FOV, ErrInvalidFOV)
	}
	if !(cc.AspectRatio > 0) || math.IsInf(cc.AspectRatio, 0) {
		return fmt.Errorf("aspect ratio %v: %w", cc.AspectRatio, ErrInvalidAspectRatio)
	}
	if !(cc.NearClip >= 0 && cc.NearClip < cc.FarClip) {
		return fmt.Errorf("near %v, far %v: %w", cc.NearClip, cc.FarClip, ErrInvalidClip)
	}
	return nil
}

// NewCameraFromConfig creates a camera from a configuration
func NewCameraFromConfig(config CameraConfig) *Camera {
	transform := NewTransformFromEuler(config.Position, config.Yaw, config.Pitch, config.Roll)
	return NewCamera(transform, config.FOV, config.AspectRatio, config.NearClip, config.FarClip)
}

// MergeCameraConfig applies non-zero override fields on top of a base configuration
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Position != (core.Vec3{}) {
		result.Position = override.Position
	}
	if override.Yaw != 0 {
		result.Yaw = override.Yaw
	}
	if override.Pitch != 0 {
		result.Pitch = override.Pitch
	}
	if override.Roll != 0 {
		result.Roll = override.Roll
	}
	if override.FOV != 0 {
		result.FOV = override.FOV
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.NearClip != 0 {
		result.NearClip = override.NearClip
	}
	if override.FarClip != 0 {
		result.FarClip = override.FarClip
	}
	return result
}
