package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	NumWorkers      int     // Number of parallel workers (0 = use CPU count)
	Jitter          bool    // Randomly offset every sample inside its pixel
	ShadowEpsilon   float64 // Minimum hit distance for all rays
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		SamplesPerPixel: 6,
		MaxDepth:        40,
		NumWorkers:      0,
		Jitter:          true,
		ShadowEpsilon:   0,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() geometry.Shape
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Raytracer traces a scene into a raster of a fixed size
type Raytracer struct {
	width, height int
	camera        *Camera
	shader        *Shader
	config        RenderConfig
	logger        core.Logger
}

// NewRaytracer creates a new raytracer. Panics on invalid dimensions or config.
func NewRaytracer(scene Scene, width, height int, config RenderConfig, logger core.Logger) *Raytracer {
	if config.SamplesPerPixel <= 0 {
		panic(fmt.Sprintf("renderer: samples per pixel must be positive, got %d", config.SamplesPerPixel))
	}
	if config.MaxDepth < 0 {
		panic(fmt.Sprintf("renderer: max depth must not be negative, got %d", config.MaxDepth))
	}
	if config.NumWorkers < 0 {
		panic(fmt.Sprintf("renderer: worker count must not be negative, got %d", config.NumWorkers))
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	top, bottom := scene.GetBackgroundColors()

	return &Raytracer{
		width:  width,
		height: height,
		camera: NewCamera(width, height),
		shader: &Shader{
			World:      scene.GetWorld(),
			Background: Background{Top: top, Bottom: bottom},
			MinT:       config.ShadowEpsilon,
		},
		config: config,
		logger: logger,
	}
}

// Trace renders the whole image in parallel row bands and blocks until every band is done
func (rt *Raytracer) Trace() (*Raster, RenderStats) {
	startTime := time.Now()
	raster := NewRaster(rt.width, rt.height)

	numWorkers := rt.config.NumWorkers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	bands := SplitBands(rt.height, numWorkers)

	rt.logger.Printf("Tracing %dx%d: %d samples, depth %d, %d workers (%d rows per band)\n",
		rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth, len(bands), bands[0].Rows())

	pool := NewWorkerPool(len(bands), len(bands), func(band Band, sampler core.Sampler) RenderStats {
		return rt.renderBand(band, raster, sampler)
	})
	pool.Start()

	for i, band := range bands {
		pool.SubmitTask(BandTask{Band: band, TaskID: i})
	}

	stats := RenderStats{
		SamplesPerPixel: rt.config.SamplesPerPixel,
		Workers:         pool.GetNumWorkers(),
	}
	for range bands {
		result, _ := pool.GetResult()
		stats.merge(result.Stats)
	}
	pool.Stop()

	stats.Duration = time.Since(startTime)
	return raster, stats
}

// renderBand traces every pixel in the band's rows and writes them to the raster
func (rt *Raytracer) renderBand(band Band, raster *Raster, sampler core.Sampler) RenderStats {
	stats := RenderStats{}

	for y := band.Begin; y < band.End; y++ {
		for x := 0; x < rt.width; x++ {
			ps := rt.samplePixel(x, y, sampler)
			rt.setPixel(raster, x, y, NewColor(ps.GetColor()))

			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
		}
	}

	return stats
}

// samplePixel averages SamplesPerPixel camera rays through tracer-space pixel (x, y)
func (rt *Raytracer) samplePixel(x, y int, sampler core.Sampler) PixelStats {
	var ps PixelStats
	uScale := 1.0 / float64(max(rt.width-1, 1))
	vScale := 1.0 / float64(max(rt.height-1, 1))

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		jx, jy := 0.0, 0.0
		if rt.config.Jitter {
			jx, jy = sampler.Get2D()
		}

		u := (float64(x) + jx) * uScale
		v := (float64(y) + jy) * vScale
		ray := rt.camera.GetRay(u, v)

		ps.AddSample(rt.shader.RayColor(ray, rt.config.MaxDepth, sampler))
	}

	return ps
}

// setPixel stores a tracer-space pixel; tracer row 0 is the bottom image row
func (rt *Raytracer) setPixel(raster *Raster, x, y int, c Color) {
	raster.Set(x, raster.Height()-y-1, c)
}
