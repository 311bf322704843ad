package renderer

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

const (
	viewportHeight = 2.0
	focalLength    = 1.0
)

// Camera is a fixed pinhole camera at the world origin looking down -Z
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera whose viewport matches the image aspect ratio
func NewCamera(width, height int) *Camera {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("renderer: camera dimensions must be positive, got %dx%d", width, height))
	}

	aspectRatio := float64(width) / float64(height)
	viewportWidth := aspectRatio * viewportHeight

	origin := core.NewVec3(0, 0, 0)
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for viewport coordinates (u, v) where 0 <= u,v <= 1.
// Values outside [0, 1] aim outside the viewport.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
