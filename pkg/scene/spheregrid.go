package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// NewSphereGridScene creates a 10x10 grid of spheres in the y-z plane, viewed head on
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	width, height := 800, 800

	cameraConfig := geometry.DefaultCameraConfig()
	cameraConfig.AspectRatio = float64(width) / float64(height)
	cameraConfig.FOV = 60
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s, err := newSceneFromConfig(cameraConfig, width, height)
	if err != nil {
		return nil, err
	}

	const gridSize = 10
	const spacing = 3.0
	offset := spacing * (gridSize - 1) / 2

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			y := float64(i)*spacing - offset
			z := float64(j)*spacing - offset
			// Alternate depth and size so neighbouring spheres shade differently
			x := 30.0 + float64((i+j)%3)*2
			radius := 1.0 + 0.1*float64((i*gridSize+j)%5)
			s.AddSphere(core.NewVec3(x, y, z), radius)
		}
	}

	return s, nil
}
