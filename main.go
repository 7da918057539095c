package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Config holds the parsed command line options
type Config struct {
	SceneType  string
	Width      int
	Height     int
	Workers    int
	TileSize   int
	SingleCore bool
	Background string
	Progress   bool
}

func main() {
	config, help := parseFlags()

	// Show help if requested
	if help {
		showHelp()
		return
	}

	fmt.Println("Starting Sphere Raytracer...")

	selectedScene, err := createScene(config.SceneType, config.Width, config.Height)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}
	if err := applyBackground(selectedScene, config.Background); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	outputDir := createOutputDir(config.SceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	img, stats := render(selectedScene, config)

	fmt.Printf("Render completed in %v\n", stats.Duration)
	fmt.Printf("Hit pixels: %d of %d (%.1f%%), %d intersection tests\n",
		stats.HitPixels, stats.TotalPixels, stats.HitRatio()*100, stats.IntersectionTests)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	if err := savePNG(filename, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func parseFlags() (Config, bool) {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene: built-in name or path to a .json scene file")
	flag.IntVar(&config.Width, "width", 0, "Image width (0 uses the scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height (0 uses the scene default)")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect)")
	flag.IntVar(&config.TileSize, "tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels for parallel rendering")
	flag.BoolVar(&config.SingleCore, "single-core", false, "Render on a single goroutine in raster order")
	flag.StringVar(&config.Background, "background", "gradient", "Background: 'gradient' or 'black'")
	flag.BoolVar(&config.Progress, "progress", false, "Print a line as each tile completes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()
	return config, *help
}

func showHelp() {
	fmt.Println("Sphere Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Println("  <file>.json - Scene description file")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
}

// createScene builds the named scene and resizes it when width and height are given
func createScene(sceneType string, width, height int) (*scene.Scene, error) {
	s, err := scene.Create(sceneType)
	if err != nil {
		return nil, err
	}

	if width == 0 && height == 0 {
		return s, nil
	}
	if width == 0 {
		width = s.Width
	}
	if height == 0 {
		height = s.Height
	}
	if err := s.SetImageSize(width, height); err != nil {
		return nil, fmt.Errorf("image size %dx%d: %w", width, height, err)
	}
	return s, nil
}

func applyBackground(s *scene.Scene, background string) error {
	switch background {
	case "gradient":
		s.Background = core.GradientBackground{}
	case "black":
		s.Background = core.NewSolidBackground(0, 0, 0)
	default:
		return fmt.Errorf("unknown background %q", background)
	}
	return nil
}

// createOutputDir returns the output directory for a scene name or scene file path
func createOutputDir(sceneType string) string {
	name := sceneType
	if strings.EqualFold(filepath.Ext(name), ".json") {
		name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return filepath.Join("output", name)
}

func render(s *scene.Scene, config Config) (*image.RGBA, renderer.RenderStats) {
	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.NumWorkers = config.Workers
	if config.TileSize > 0 {
		renderConfig.TileSize = config.TileSize
	}

	raytracer := renderer.NewRaytracer(s, renderConfig, renderer.NewDefaultLogger())

	if config.SingleCore {
		return raytracer.RenderSingleCoreWithStats(s.Width, s.Height)
	}

	var tileCallback func(renderer.TileCompletionResult)
	if config.Progress {
		tileCallback = func(result renderer.TileCompletionResult) {
			fmt.Printf("Tile %d/%d (%d,%d)\n", result.TileNumber, result.TotalTiles, result.TileX, result.TileY)
		}
	}
	return raytracer.RenderWithStats(s.Width, s.Height, tileCallback)
}

func savePNG(filename string, img image.Image) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	return png.Encode(file, img)
}
