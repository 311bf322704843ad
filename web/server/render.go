package server

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

const (
	maxImageSize = 2000
	maxSamples   = 1000
	maxDepth     = 200
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string // Built-in scene name
	Width   int
	Height  int
	Samples int // Samples per pixel
	Depth   int // Maximum bounce depth
	Workers int // 0 = one per CPU
}

// parseRenderRequest parses and validates the query parameters shared by render and inspect
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	defaults := renderer.DefaultRenderConfig()

	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 225, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", defaults.SamplesPerPixel, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", defaults.MaxDepth, 0, maxDepth); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, 256); err != nil {
		return nil, err
	}

	return req, nil
}

// handleRender traces the requested scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	config := renderer.DefaultRenderConfig()
	config.SamplesPerPixel = req.Samples
	config.MaxDepth = req.Depth
	config.NumWorkers = req.Workers

	renderLogger := NewWebLogger(fmt.Sprintf("render-%d", time.Now().UnixNano()), s.logger)
	raytracer := renderer.NewRaytracer(sceneObj, req.Width, req.Height, config, renderLogger)

	raster, stats := raytracer.Trace()
	renderLogger.Printf("Trace took %v\n", stats.Duration)

	var buf bytes.Buffer
	if err := png.Encode(&buf, raster.ToImage(1.0)); err != nil {
		http.Error(w, fmt.Sprintf("failed to encode image: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
