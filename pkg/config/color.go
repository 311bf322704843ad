package config

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ColorValue is a linear RGB color. In YAML it is either a list of three
// floats or an SVG 1.1 color name such as "lightskyblue".
type ColorValue struct {
	R, G, B float64
}

// Vec3 returns the color as a vector
func (c ColorValue) Vec3() core.Vec3 {
	return core.NewVec3(c.R, c.G, c.B)
}

// ParseColorName resolves a color name to a ColorValue
func ParseColorName(name string) (ColorValue, error) {
	rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ColorValue{}, fmt.Errorf("unknown color name %q", name)
	}
	return ColorValue{
		R: float64(rgba.R) / 255.0,
		G: float64(rgba.G) / 255.0,
		B: float64(rgba.B) / 255.0,
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (c *ColorValue) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		parsed, err := ParseColorName(name)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var rgb []float64
	if err := unmarshal(&rgb); err != nil {
		return fmt.Errorf("color must be a name or [r, g, b]: %w", err)
	}
	if len(rgb) != 3 {
		return fmt.Errorf("color needs 3 components, got %d", len(rgb))
	}
	for _, ch := range rgb {
		if ch < 0 {
			return fmt.Errorf("color components must not be negative, got %v", rgb)
		}
	}

	*c = ColorValue{R: rgb[0], G: rgb[1], B: rgb[2]}
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (c ColorValue) MarshalYAML() (interface{}, error) {
	return []float64{c.R, c.G, c.B}, nil
}
