package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrInvalidDimensions = errors.New("image dimensions must be positive")
	ErrInvalidRadius     = errors.New("sphere radius must be positive")
	ErrInvalidColor      = errors.New("color channels must be between 0 and 255")
	ErrUnknownBackground = errors.New("unknown background type")
)

// Background types accepted in scene files
const (
	BackgroundGradient = "gradient"
	BackgroundSolid    = "solid"
)

// Vector is a JSON [x, y, z] triple
type Vector [3]float64

// RotationDescription holds Euler angles in degrees
type RotationDescription struct {
	Yaw   float64 `json:"yaw"`   // About z
	Pitch float64 `json:"pitch"` // About y
	Roll  float64 `json:"roll"`  // About x
}

// CameraDescription describes a perspective camera
type CameraDescription struct {
	Position Vector              `json:"position"`
	Rotation RotationDescription `json:"rotation"`
	FOV      float64             `json:"fov"`  // Horizontal, degrees
	Near     float64             `json:"near"` // Near clip distance
	Far      float64             `json:"far"`  // Far clip distance
}

// BackgroundDescription describes the miss color
type BackgroundDescription struct {
	Type  string `json:"type"`
	Color [3]int `json:"color,omitempty"`
}

// SphereDescription describes one sphere
type SphereDescription struct {
	Center Vector  `json:"center"`
	Radius float64 `json:"radius"`
}

// SceneDescription is the on-disk form of a scene
type SceneDescription struct {
	Name       string                `json:"name,omitempty"`
	Width      int                   `json:"width"`
	Height     int                   `json:"height"`
	Camera     CameraDescription     `json:"camera"`
	Background BackgroundDescription `json:"background"`
	Spheres    []SphereDescription   `json:"spheres"`
}

// Defaults filled in for fields a scene file leaves out
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultFOV    = 90.0
	DefaultNear   = 0.1
	DefaultFar    = 1000.0
)

// LoadScene reads a scene description from a JSON file
func LoadScene(path string) (*SceneDescription, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	desc, err := ParseScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

// ParseScene decodes, defaults and validates a scene description
func ParseScene(r io.Reader) (*SceneDescription, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var desc SceneDescription
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	desc.applyDefaults()
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return &desc, nil
}

// SaveScene writes a scene description to a JSON file
func SaveScene(path string, desc *SceneDescription) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close scene: %w", closeErr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(desc); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

func (d *SceneDescription) applyDefaults() {
	if d.Width == 0 {
		d.Width = DefaultWidth
	}
	if d.Height == 0 {
		d.Height = DefaultHeight
	}
	if d.Camera.FOV == 0 {
		d.Camera.FOV = DefaultFOV
	}
	if d.Camera.Near == 0 && d.Camera.Far == 0 {
		d.Camera.Near = DefaultNear
		d.Camera.Far = DefaultFar
	}
	if d.Background.Type == "" {
		d.Background.Type = BackgroundGradient
	}
}

// Validate checks the parts of a description that the camera does not check itself
func (d *SceneDescription) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", d.Width, d.Height, ErrInvalidDimensions)
	}

	switch d.Background.Type {
	case BackgroundGradient:
	case BackgroundSolid:
		for _, c := range d.Background.Color {
			if c < 0 || c > 255 {
				return fmt.Errorf("background color %v: %w", d.Background.Color, ErrInvalidColor)
			}
		}
	default:
		return fmt.Errorf("%q: %w", d.Background.Type, ErrUnknownBackground)
	}

	for i, s := range d.Spheres {
		if s.Radius <= 0 {
			return fmt.Errorf("sphere %d radius %v: %w", i, s.Radius, ErrInvalidRadius)
		}
	}
	return nil
}
