package scene

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/loaders"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

func TestNewScene_AddSphere(t *testing.T) {
	camera := geometry.NewCamera(geometry.NewTransform(core.NewVec3(0, 0, 0)), 90, 4.0/3.0, 0.1, 1000)
	s := NewScene(camera)

	if len(s.GetShapes()) != 0 {
		t.Fatalf("Expected empty scene, got %d shapes", len(s.GetShapes()))
	}
	if s.GetCamera() != camera {
		t.Error("Expected scene to keep its camera")
	}
	if _, ok := s.GetBackground().(core.GradientBackground); !ok {
		t.Errorf("Expected gradient background, got %T", s.GetBackground())
	}

	first := s.AddSphere(core.NewVec3(30, 0, 0), 10)
	second := s.AddSphere(core.NewVec3(50, 5, 0), 2)

	shapes := s.GetShapes()
	if len(shapes) != 2 || shapes[0] != first || shapes[1] != second {
		t.Errorf("Expected spheres in insertion order, got %v", shapes)
	}
	if first.Center != core.NewVec3(30, 0, 0) || first.Radius != 10 {
		t.Errorf("Unexpected sphere %+v", first)
	}
}

func TestScene_NilBackgroundFallsBackToGradient(t *testing.T) {
	s := &Scene{}
	if _, ok := s.GetBackground().(core.GradientBackground); !ok {
		t.Errorf("Expected gradient background, got %T", s.GetBackground())
	}
}

func TestScene_SetImageSize(t *testing.T) {
	s, err := NewDefaultScene()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := s.SetImageSize(64, 32); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Width != 64 || s.Height != 32 {
		t.Errorf("Expected 64x32, got %dx%d", s.Width, s.Height)
	}
	if s.Camera.AspectRatio != 2 || s.CameraConfig.AspectRatio != 2 {
		t.Errorf("Expected aspect ratio 2, got %v", s.Camera.AspectRatio)
	}

	if err := s.SetImageSize(64, 0); !errors.Is(err, loaders.ErrInvalidDimensions) {
		t.Errorf("Expected dimensions error for zero height, got %v", err)
	}
	if err := s.SetImageSize(-64, -32); !errors.Is(err, loaders.ErrInvalidDimensions) {
		t.Errorf("Expected dimensions error for negative size, got %v", err)
	}
	if s.Width != 64 || s.Height != 32 {
		t.Error("Expected failed resize to leave the scene unchanged")
	}
}

func TestNewScene_SetImageSizeKeepsCamera(t *testing.T) {
	transform := geometry.NewTransform(core.NewVec3(1, 2, 3))
	transform.Orientation = mgl64.QuatRotate(mgl64.DegToRad(35), mgl64.Vec3{1, 1, 0}.Normalize())
	s := NewScene(geometry.NewCamera(transform, 90, 1, 0.1, 100))

	if err := s.SetImageSize(64, 48); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Width != 64 || s.Height != 48 {
		t.Errorf("Expected 64x48, got %dx%d", s.Width, s.Height)
	}

	cam := s.GetCamera()
	if cam.AspectRatio != 64.0/48.0 {
		t.Errorf("Expected aspect ratio %v, got %v", 64.0/48.0, cam.AspectRatio)
	}
	if cam.Transform != transform || cam.FOV != 90 || cam.NearClip != 0.1 || cam.FarClip != 100 {
		t.Errorf("Expected camera placement to be kept, got %+v", cam)
	}

	expected := geometry.NewCamera(transform, 90, 64.0/48.0, 0.1, 100).GenerateRay(0.5, -0.25)
	if got := cam.GenerateRay(0.5, -0.25); got != expected {
		t.Errorf("Expected ray %v, got %v", expected, got)
	}
}

func TestNewScene_SetImageSizeRejectsInvalidCamera(t *testing.T) {
	camera := geometry.NewCamera(geometry.NewTransform(core.NewVec3(0, 0, 0)), 0, 1, 0.1, 100)
	s := NewScene(camera)

	if err := s.SetImageSize(64, 48); !errors.Is(err, geometry.ErrInvalidFOV) {
		t.Errorf("Expected FOV error, got %v", err)
	}
	if s.GetCamera() != camera {
		t.Error("Expected failed resize to keep the original camera")
	}
}

func TestDefaultScene_CameraOverrides(t *testing.T) {
	s, err := NewDefaultScene(geometry.CameraConfig{FOV: 45})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Camera.FOV != 45 {
		t.Errorf("Expected overridden fov 45, got %v", s.Camera.FOV)
	}
	if s.Camera.NearClip != 0.1 || s.Camera.FarClip != 1000 {
		t.Errorf("Expected default clip distances, got %v and %v", s.Camera.NearClip, s.Camera.FarClip)
	}

	if _, err := NewDefaultScene(geometry.CameraConfig{FOV: 200}); !errors.Is(err, geometry.ErrInvalidFOV) {
		t.Errorf("Expected fov error, got %v", err)
	}
}

func TestBuiltinScenes_RenderIdenticallyInBothModes(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := Create(info.ID)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if err := s.SetImageSize(80, 60); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			rt := renderer.NewRaytracer(s, renderer.RenderConfig{TileSize: 16, NumWorkers: 4}, nil)
			parallel, stats := rt.RenderWithStats(80, 60, nil)
			single := rt.RenderSingleCore(80, 60)

			if !bytes.Equal(parallel.Pix, single.Pix) {
				t.Error("Expected parallel and single-core renders to match")
			}
			if stats.HitPixels == 0 {
				t.Error("Expected the scene's spheres to be visible")
			}
		})
	}
}

func TestOverlapScene_NearestWins(t *testing.T) {
	s, err := NewOverlapScene()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.SetImageSize(64, 48); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Brute force the nearest hit for the center pixel
	ray := s.Camera.GenerateRay(0, 0)
	var nearest geometry.Intersection
	found := false
	for _, shape := range s.Shapes {
		if hit, ok := shape.Intersect(ray); ok && (!found || hit.T < nearest.T) {
			nearest, found = hit, true
		}
	}
	if !found {
		t.Fatal("Expected the center ray to hit a sphere")
	}

	img := renderer.NewRaytracer(s, renderer.DefaultRenderConfig(), nil).Render(64, 48)
	expected := core.NormalToColor(nearest.Normal)
	if got := img.RGBAAt(32, 24); got != expected {
		t.Errorf("Expected nearest sphere color %v, got %v", expected, got)
	}
}
