package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetShapes() []geometry.Shape
	GetBackground() core.Background
}

// Raytracer renders a scene by casting one ray per pixel
type Raytracer struct {
	scene  Scene
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. The scene must not change while rendering.
func NewRaytracer(scene Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = NewDiscardLogger()
	}
	return &Raytracer{
		scene:  scene,
		config: config,
		logger: logger,
	}
}

// Render renders the scene in parallel tiles
func (rt *Raytracer) Render(width, height int) *image.RGBA {
	img, _ := rt.RenderWithStats(width, height, nil)
	return img
}

// RenderSingleCore renders the scene on the calling goroutine in raster order.
// The result is identical to Render.
func (rt *Raytracer) RenderSingleCore(width, height int) *image.RGBA {
	img, _ := rt.RenderSingleCoreWithStats(width, height)
	return img
}

// RenderSingleCoreWithStats is RenderSingleCore that also reports statistics
func (rt *Raytracer) RenderSingleCoreWithStats(width, height int) (*image.RGBA, RenderStats) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	rt.logger.Printf("Rendering %dx%d on a single core...\n", width, height)

	stats := rt.renderBounds(img, img.Bounds(), width, height)
	stats.Tiles = 1
	stats.Workers = 1
	stats.Duration = time.Since(startTime)

	rt.logger.Printf("Render completed in %v (%d/%d pixels hit)\n", stats.Duration, stats.HitPixels, stats.TotalPixels)
	return img, stats
}

// RenderWithStats renders the scene in parallel tiles and reports statistics.
// tileCallback, if not nil, is called from a single goroutine as each tile completes.
func (rt *Raytracer) RenderWithStats(width, height int, tileCallback func(TileCompletionResult)) (*image.RGBA, RenderStats) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	tiles := NewTileGrid(width, height, rt.config.TileSize)
	pool := NewWorkerPool(rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d: %d tiles on %d workers...\n",
		width, height, len(tiles), pool.GetNumWorkers())

	stats := RenderStats{
		Tiles:   len(tiles),
		Workers: pool.GetNumWorkers(),
	}

	// Each tile writes only its own pixels, so workers share img without locking
	completed := 0
	pool.Run(tiles, func(tile *Tile) RenderStats {
		return rt.renderBounds(img, tile.Bounds, width, height)
	}, func(result TileResult) {
		stats.merge(result.Stats)
		completed++

		if tileCallback != nil {
			tileCallback(TileCompletionResult{
				TileX:      result.Tile.Bounds.Min.X / rt.config.TileSize,
				TileY:      result.Tile.Bounds.Min.Y / rt.config.TileSize,
				Bounds:     result.Tile.Bounds,
				TileNumber: completed,
				TotalTiles: len(tiles),
			})
		}
	})

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d/%d pixels hit)\n", stats.Duration, stats.HitPixels, stats.TotalPixels)
	return img, stats
}

// renderBounds renders the pixels within bounds into img in raster order
func (rt *Raytracer) renderBounds(img *image.RGBA, bounds image.Rectangle, width, height int) RenderStats {
	camera := rt.scene.GetCamera()
	shapes := rt.scene.GetShapes()
	background := rt.scene.GetBackground()

	var stats RenderStats
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixelColor, hit := renderPixel(camera, shapes, background, x, y, width, height)
			img.SetRGBA(x, y, pixelColor)

			stats.TotalPixels++
			stats.IntersectionTests += len(shapes)
			if hit {
				stats.HitPixels++
			}
		}
	}
	return stats
}

// renderPixel casts the ray for pixel (x, y) and colors it by the nearest hit's normal.
// Each hit narrows ray.Maxt, so later shapes can only win by being strictly closer.
func renderPixel(camera *geometry.Camera, shapes []geometry.Shape, background core.Background, x, y, width, height int) (color.RGBA, bool) {
	clipX := float64(x)/float64(width)*2.0 - 1.0
	clipY := 1.0 - float64(y)/float64(height)*2.0
	ray := camera.GenerateRay(clipX, clipY)

	pixelColor := background.ColorAt(x, y)
	hitAnything := false
	for _, shape := range shapes {
		if hit, ok := shape.Intersect(ray); ok {
			pixelColor = core.NormalToColor(hit.Normal)
			ray.Maxt = hit.T
			hitAnything = true
		}
	}

	return pixelColor, hitAnything
}
