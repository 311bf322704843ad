package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// Config represents the main configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
	Scene  SceneConfig  `yaml:"scene"`
	Log    LogConfig    `yaml:"log"`
}

// RenderConfig contains image size and sampling configuration
type RenderConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	SamplesPerPixel int     `yaml:"samples_per_pixel"`
	MaxDepth        int     `yaml:"max_depth"`
	NumWorkers      int     `yaml:"num_workers"` // 0 means one per CPU
	Jitter          bool    `yaml:"jitter"`
	ShadowEpsilon   float64 `yaml:"shadow_epsilon"`
}

// OutputConfig contains image file configuration
type OutputConfig struct {
	Path    string  `yaml:"path"`    // .png, .jpg or .jpeg
	Gamma   float64 `yaml:"gamma"`   // 1.0 writes linear values
	Quality int     `yaml:"quality"` // JPEG quality, 1-100
}

// SceneConfig selects a built-in scene or lists spheres explicitly
type SceneConfig struct {
	Name       string           `yaml:"name"`
	Background BackgroundConfig `yaml:"background"`
	Spheres    []SphereConfig   `yaml:"spheres,omitempty"`
}

// BackgroundConfig overrides the sky gradient; unset colors keep the scene default
type BackgroundConfig struct {
	Top    *ColorValue `yaml:"top,omitempty"`
	Bottom *ColorValue `yaml:"bottom,omitempty"`
}

// SphereConfig describes one sphere of a custom scene
type SphereConfig struct {
	Center []float64 `yaml:"center"` // x, y, z
	Radius float64   `yaml:"radius"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Optional: also log to this file
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Width:           1280,
			Height:          720,
			SamplesPerPixel: 6,
			MaxDepth:        40,
			NumWorkers:      0,
			Jitter:          true,
			ShadowEpsilon:   0,
		},
		Output: OutputConfig{
			Path:    "output.jpg",
			Gamma:   1.0,
			Quality: 90,
		},
		Scene: SceneConfig{
			Name: "default",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from a file.
// On error the defaults are returned together with the error.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", filePath, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks every value the renderer would otherwise reject
func (c *Config) Validate() error {
	r := c.Render
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("render size must be positive, got %dx%d", r.Width, r.Height)
	}
	if r.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples_per_pixel must be positive, got %d", r.SamplesPerPixel)
	}
	if r.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", r.MaxDepth)
	}
	if r.NumWorkers < 0 {
		return fmt.Errorf("num_workers must not be negative, got %d", r.NumWorkers)
	}
	if r.ShadowEpsilon < 0 {
		return fmt.Errorf("shadow_epsilon must not be negative, got %g", r.ShadowEpsilon)
	}

	if c.Output.Path == "" {
		return fmt.Errorf("output path must be set")
	}
	if c.Output.Gamma <= 0 {
		return fmt.Errorf("output gamma must be positive, got %g", c.Output.Gamma)
	}
	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output quality must be between 1 and 100, got %d", c.Output.Quality)
	}

	for i, s := range c.Scene.Spheres {
		if len(s.Center) != 3 {
			return fmt.Errorf("scene sphere %d: center needs 3 components, got %d", i, len(s.Center))
		}
		if !(s.Radius > 0) {
			return fmt.Errorf("scene sphere %d: radius must be positive, got %g", i, s.Radius)
		}
	}
	if c.Scene.Name == "" && len(c.Scene.Spheres) == 0 {
		return fmt.Errorf("scene needs a name or a list of spheres")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}

// RendererConfig converts the render section to the renderer's configuration
func (r RenderConfig) RendererConfig() renderer.RenderConfig {
	return renderer.RenderConfig{
		SamplesPerPixel: r.SamplesPerPixel,
		MaxDepth:        r.MaxDepth,
		NumWorkers:      r.NumWorkers,
		Jitter:          r.Jitter,
		ShadowEpsilon:   r.ShadowEpsilon,
	}
}
