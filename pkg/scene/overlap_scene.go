package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// NewOverlapScene creates interpenetrating spheres to exercise nearest-hit selection.
// The farthest sphere is added first so order alone cannot pick the winner.
func NewOverlapScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	width, height := 800, 600

	cameraConfig := geometry.DefaultCameraConfig()
	cameraConfig.AspectRatio = float64(width) / float64(height)
	cameraConfig.FOV = 70
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s, err := newSceneFromConfig(cameraConfig, width, height)
	if err != nil {
		return nil, err
	}

	s.AddSphere(core.NewVec3(40, 0, 0), 12)
	s.AddSphere(core.NewVec3(32, -8, 4), 8)
	s.AddSphere(core.NewVec3(28, 7, -3), 6)
	s.AddSphere(core.NewVec3(24, 0, 6), 3)
	return s, nil
}
