package server

import (
	"bytes"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Limits on request parameters
const (
	maxImageSize = 2000
	maxWorkers   = 256
	maxTileSize  = 1024
)

var renderCounter atomic.Int64

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string // Built-in scene ID
	Width      int    // Image width (0 = scene default)
	Height     int    // Image height (0 = scene default)
	Mode       string // "parallel" or "single"
	Background string // "gradient" or "black"
	Workers    int    // Parallel workers (0 = CPU count)
	TileSize   int    // Tile size in pixels
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, maxWorkers); err != nil {
		return nil, err
	}
	if req.TileSize, err = parseIntParam(query, "tileSize", renderer.DefaultRenderConfig().TileSize, 1, maxTileSize); err != nil {
		return nil, err
	}
	if req.Mode, err = parseChoiceParam(query, "mode", "parallel", "parallel", "single"); err != nil {
		return nil, err
	}
	if req.Background, err = parseChoiceParam(query, "background", "gradient", "gradient", "black"); err != nil {
		return nil, err
	}

	return req, nil
}

// handleRender renders a built-in scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Scene files are never read on behalf of HTTP clients
	if !isBuiltinScene(req.Scene) {
		writeError(w, http.StatusNotFound, "Unknown scene: "+req.Scene)
		return
	}

	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	width, height := sceneObj.Width, sceneObj.Height
	if req.Width > 0 {
		width = req.Width
	}
	if req.Height > 0 {
		height = req.Height
	}
	if err := sceneObj.SetImageSize(width, height); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Background == "black" {
		sceneObj.Background = core.NewSolidBackground(0, 0, 0)
	}

	renderID := fmt.Sprintf("render-%d", renderCounter.Add(1))
	raytracer := renderer.NewRaytracer(sceneObj, renderer.RenderConfig{
		TileSize:   req.TileSize,
		NumWorkers: req.Workers,
	}, NewRequestLogger(renderID, nil))

	var stats renderer.RenderStats
	var buf bytes.Buffer
	if req.Mode == "single" {
		img, st := raytracer.RenderSingleCoreWithStats(width, height)
		stats = st
		err = png.Encode(&buf, img)
	} else {
		img, st := raytracer.RenderWithStats(width, height, nil)
		stats = st
		err = png.Encode(&buf, img)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("X-Render-Hit-Pixels", strconv.Itoa(stats.HitPixels))
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("[%s] Error writing response: %v", renderID, err)
	}
}

func isBuiltinScene(name string) bool {
	for _, info := range scene.ListScenes() {
		if info.ID == name {
			return true
		}
	}
	return false
}
