package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownScene is returned for names that are neither built in nor a scene file
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

type builtinScene struct {
	info SceneInfo
	new  func() (*Scene, error)
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info: SceneInfo{ID: "default", DisplayName: "Default", Description: "A single sphere straight ahead of the camera"},
		new:  func() (*Scene, error) { return NewDefaultScene() },
	},
	"overlap": {
		info: SceneInfo{ID: "overlap", DisplayName: "Overlapping Spheres", Description: "Interpenetrating spheres added far to near"},
		new:  func() (*Scene, error) { return NewOverlapScene() },
	},
	"spheregrid": {
		info: SceneInfo{ID: "spheregrid", DisplayName: "Sphere Grid", Description: "A 10x10 grid of spheres"},
		new:  func() (*Scene, error) { return NewSphereGridScene() },
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		scenes = append(scenes, s.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds a scene from a built-in name or a path to a .json scene file
func Create(name string) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return NewJSONScene(name)
	}

	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownScene)
	}
	return builtin.new()
}
