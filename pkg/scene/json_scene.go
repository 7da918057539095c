package scene

import (
	"fmt"
	"image/color"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/loaders"
)

// NewJSONScene loads a scene from a JSON scene file
func NewJSONScene(path string) (*Scene, error) {
	desc, err := loaders.LoadScene(path)
	if err != nil {
		return nil, err
	}
	return NewSceneFromDescription(desc)
}

// NewSceneFromDescription converts a parsed scene description into a renderable scene
func NewSceneFromDescription(desc *loaders.SceneDescription) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Position:    toVec3(desc.Camera.Position),
		Yaw:         desc.Camera.Rotation.Yaw,
		Pitch:       desc.Camera.Rotation.Pitch,
		Roll:        desc.Camera.Rotation.Roll,
		FOV:         desc.Camera.FOV,
		AspectRatio: float64(desc.Width) / float64(desc.Height),
		NearClip:    desc.Camera.Near,
		FarClip:     desc.Camera.Far,
	}

	s, err := newSceneFromConfig(cameraConfig, desc.Width, desc.Height)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	if desc.Background.Type == loaders.BackgroundSolid {
		c := desc.Background.Color
		s.Background = core.SolidBackground{Color: color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255}}
	}

	for _, sphere := range desc.Spheres {
		s.AddSphere(toVec3(sphere.Center), sphere.Radius)
	}
	return s, nil
}

func toVec3(v loaders.Vector) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
