package renderer

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// diffuseAlbedo is the fraction of light kept on every bounce
const diffuseAlbedo = 0.5

// Background is the sky gradient returned for rays that escape the scene
type Background struct {
	Bottom core.Vec3 // Color for straight-down rays
	Top    core.Vec3 // Color for straight-up rays
}

// DefaultBackground returns the white to sky blue gradient
func DefaultBackground() Background {
	return Background{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color maps the ray's Y direction from [-1, 1] onto the gradient.
// The direction is used as-is, so non-unit directions bias the result.
func (b Background) Color(r core.Ray) core.Vec3 {
	t := (r.Direction.Y + 1.0) * 0.5
	return core.Lerp(b.Bottom, b.Top, t)
}

// Shader computes ray colors against a read-only world.
// A Shader is safe for concurrent use as long as each goroutine passes its own Sampler.
type Shader struct {
	World      geometry.Shape
	Background Background
	MinT       float64 // Smallest accepted hit distance; 0 accepts hits at the ray origin
}

// RayColor returns the color seen along ray, bouncing at most depth times
func (s *Shader) RayColor(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := s.World.Hit(ray, s.MinT, math.Inf(1))
	if !isHit {
		return s.Background.Color(ray)
	}

	point := ray.At(hit.T)
	target := point.Add(hit.Normal).Add(core.RandomOnUnitSphere(sampler))
	direction := target.Subtract(point)
	// The random offset can cancel the normal exactly
	if direction.LengthSquared() < 1e-16 {
		direction = hit.Normal
	}
	bounce := core.NewRay(point, direction)

	return s.RayColor(bounce, depth-1, sampler).Multiply(diffuseAlbedo)
}
