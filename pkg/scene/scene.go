package scene

import (
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/loaders"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       *geometry.Camera
	Shapes       []geometry.Shape // Objects in the scene, tested in order
	Background   core.Background  // Color of pixels that hit nothing
	CameraConfig geometry.CameraConfig
	Width        int // Recommended image width
	Height       int // Recommended image height
}

// NewScene creates an empty scene viewed through camera
func NewScene(camera *geometry.Camera) *Scene {
	return &Scene{
		Camera:     camera,
		Shapes:     make([]geometry.Shape, 0),
		Background: core.GradientBackground{},
	}
}

// newSceneFromConfig builds an empty scene with a validated camera
func newSceneFromConfig(config geometry.CameraConfig, width, height int) (*Scene, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	s := NewScene(geometry.NewCameraFromConfig(config))
	s.CameraConfig = config
	s.Width = width
	s.Height = height
	return s, nil
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius)
	s.AddShape(sphere)
	return sphere
}

// AddShape appends any intersectable shape to the scene
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// SetImageSize changes the recommended image size and rebuilds the camera
// so its aspect ratio matches. Position, orientation, FOV and clip distances
// are kept from the current camera.
func (s *Scene) SetImageSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, loaders.ErrInvalidDimensions)
	}

	cam := *s.Camera
	aspectRatio := float64(width) / float64(height)
	check := geometry.CameraConfig{
		FOV:         cam.FOV,
		AspectRatio: aspectRatio,
		NearClip:    cam.NearClip,
		FarClip:     cam.FarClip,
	}
	if err := check.Validate(); err != nil {
		return err
	}

	s.Camera = geometry.NewCamera(cam.Transform, cam.FOV, aspectRatio, cam.NearClip, cam.FarClip)
	s.CameraConfig.AspectRatio = aspectRatio
	s.Width = width
	s.Height = height
	return nil
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetShapes returns the scene shapes
func (s *Scene) GetShapes() []geometry.Shape {
	return s.Shapes
}

// GetBackground returns the background, defaulting to the debug gradient
func (s *Scene) GetBackground() core.Background {
	if s.Background == nil {
		return core.GradientBackground{}
	}
	return s.Background
}
