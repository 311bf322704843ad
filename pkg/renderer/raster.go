package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Color is a floating point RGBA pixel value
type Color struct {
	R, G, B, A float64
}

// NewColor builds an opaque color from an RGB vector
func NewColor(rgb core.Vec3) Color {
	return Color{R: rgb.X, G: rgb.Y, B: rgb.Z, A: 1.0}
}

// RGB returns the color channels as a vector
func (c Color) RGB() core.Vec3 {
	return core.NewVec3(c.R, c.G, c.B)
}

// Raster is a width x height grid of colors stored top-down (row 0 is the top of the image).
// Concurrent writers must touch disjoint pixels.
type Raster struct {
	width, height int
	pix           []Color
}

// NewRaster creates a black, fully transparent raster
func NewRaster(width, height int) *Raster {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("renderer: raster dimensions must be positive, got %dx%d", width, height))
	}
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the raster width in pixels
func (r *Raster) Width() int { return r.width }

// Height returns the raster height in pixels
func (r *Raster) Height() int { return r.height }

// Set stores a color at image coordinates (x, y)
func (r *Raster) Set(x, y int, c Color) {
	r.pix[r.index(x, y)] = c
}

// At returns the color at image coordinates (x, y)
func (r *Raster) At(x, y int) Color {
	return r.pix[r.index(x, y)]
}

func (r *Raster) index(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		panic(fmt.Sprintf("renderer: pixel (%d,%d) outside %dx%d raster", x, y, r.width, r.height))
	}
	return y*r.width + x
}

// ToImage converts the raster to 8-bit RGBA with gamma correction and clamping
func (r *Raster) ToImage(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			img.SetRGBA(x, y, toRGBA(r.At(x, y), gamma))
		}
	}
	return img
}

// toRGBA converts a float color to RGBA with proper clamping and gamma correction
func toRGBA(c Color, gamma float64) color.RGBA {
	rgb := c.RGB().Clamp(0.0, 1.0).GammaCorrect(gamma)
	alpha := max(0.0, min(1.0, c.A))

	return color.RGBA{
		R: uint8(255*rgb.X + 0.5),
		G: uint8(255*rgb.Y + 0.5),
		B: uint8(255*rgb.Z + 0.5),
		A: uint8(255*alpha + 0.5),
	}
}
