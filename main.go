package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/df07/go-sphere-tracer/internal/logger"
	"github.com/df07/go-sphere-tracer/pkg/config"
	"github.com/df07/go-sphere-tracer/pkg/loaders"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// cliOptions holds the raw command line values
type cliOptions struct {
	configPath string
	sceneName  string
	output     string
	logLevel   string
	width      int
	height     int
	samples    int
	depth      int
	workers    int
	help       bool
}

func newFlagSet(opts *cliOptions) *flag.FlagSet {
	flags := flag.NewFlagSet("sphere-tracer", flag.ContinueOnError)
	flags.StringVar(&opts.configPath, "config", "config.yaml", "Path to YAML configuration file")
	flags.StringVar(&opts.sceneName, "scene", "", "Built-in scene name (overrides config)")
	flags.StringVar(&opts.output, "output", "", "Output image path, .png or .jpg (overrides config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flags.IntVar(&opts.width, "width", 0, "Image width in pixels (overrides config)")
	flags.IntVar(&opts.height, "height", 0, "Image height in pixels (overrides config)")
	flags.IntVar(&opts.samples, "samples", 0, "Samples per pixel (overrides config)")
	flags.IntVar(&opts.depth, "depth", 0, "Maximum bounce depth (overrides config)")
	flags.IntVar(&opts.workers, "workers", 0, "Number of worker goroutines, 0 = one per CPU (overrides config)")
	flags.BoolVar(&opts.help, "help", false, "Show help information")
	return flags
}

// buildConfig loads the config file and applies the flags that were set explicitly.
// configFound is false when the file does not exist and defaults were used.
func buildConfig(flags *flag.FlagSet, opts *cliOptions) (cfg *config.Config, configFound bool, err error) {
	cfg, err = config.LoadConfig(opts.configPath)
	switch {
	case err == nil:
		configFound = true
	case errors.Is(err, fs.ErrNotExist):
		configFound = false
	default:
		return nil, false, err
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			// A named scene replaces any sphere list from the file
			cfg.Scene.Name = opts.sceneName
			cfg.Scene.Spheres = nil
		case "output":
			cfg.Output.Path = opts.output
		case "log-level":
			cfg.Log.Level = opts.logLevel
		case "width":
			cfg.Render.Width = opts.width
		case "height":
			cfg.Render.Height = opts.height
		case "samples":
			cfg.Render.SamplesPerPixel = opts.samples
		case "depth":
			cfg.Render.MaxDepth = opts.depth
		case "workers":
			cfg.Render.NumWorkers = opts.workers
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, configFound, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, configFound, nil
}

// newLogger creates the console logger, tee'd to a file when one is configured
func newLogger(cfg config.LogConfig) (*logger.Logger, error) {
	if cfg.File == "" {
		return logger.NewLogger(cfg.Level), nil
	}
	return logger.NewMultiLogger(cfg.Level, cfg.File)
}

// run traces the configured scene and writes the image
func run(cfg *config.Config, log *logger.Logger) error {
	sceneObj, err := scene.FromConfig(cfg.Scene)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}
	log.Infof("Scene %q: %d spheres", sceneObj.Name, sceneObj.GetPrimitiveCount())

	rt := renderer.NewRaytracer(sceneObj, cfg.Render.Width, cfg.Render.Height, cfg.Render.RendererConfig(), log)

	raster, stats := rt.Trace()
	log.Infof("Trace took %v (%d workers, %.1f samples per pixel)", stats.Duration, stats.Workers, stats.AverageSamples())

	saveStart := time.Now()
	img := raster.ToImage(cfg.Output.Gamma)
	if err := loaders.SaveImage(cfg.Output.Path, img, loaders.SaveOptions{Quality: cfg.Output.Quality}); err != nil {
		return err
	}
	log.Infof("Saving took %v", time.Since(saveStart))
	log.Infof("Render saved as %s", cfg.Output.Path)

	return nil
}

func printHelp(flags *flag.FlagSet) {
	fmt.Println("Sphere Tracer")
	fmt.Println("Usage: sphere-tracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flags.SetOutput(os.Stdout)
	flags.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-12s %s\n", info.Name, info.Description)
	}
}

func main() {
	var opts cliOptions
	flags := newFlagSet(&opts)
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if opts.help {
		printHelp(flags)
		return
	}

	cfg, configFound, err := buildConfig(flags, &opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if !configFound {
		log.Warnf("Config file %s not found, using defaults", opts.configPath)
	}

	if err := run(cfg, log); err != nil {
		log.Errorf("Render failed: %v", err)
		log.Close()
		os.Exit(1)
	}
}
