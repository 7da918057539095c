package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// NewDefaultScene creates a single sphere straight ahead of a camera at the origin
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	width, height := 800, 600

	cameraConfig := geometry.DefaultCameraConfig()
	cameraConfig.AspectRatio = float64(width) / float64(height)
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s, err := newSceneFromConfig(cameraConfig, width, height)
	if err != nil {
		return nil, err
	}

	s.AddSphere(core.NewVec3(30, 0, 0), 10)
	return s, nil
}
