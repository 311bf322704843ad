package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	center core.Vec3
	radius float64
}

// NewSphere creates a new sphere. Panics if radius is not positive.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	if !(radius > 0) {
		panic(fmt.Sprintf("geometry: sphere radius must be positive, got %v", radius))
	}
	return &Sphere{
		center: center,
		radius: radius,
	}
}

// Center returns the sphere center
func (s *Sphere) Center() core.Vec3 { return s.center }

// Radius returns the sphere radius
func (s *Sphere) Radius() float64 { return s.radius }

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		panic("geometry: ray direction has zero length")
	}
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / (2.0 * a)
	if !inRange(root, tMin, tMax) {
		root = (-b + sqrtD) / (2.0 * a)
		if !inRange(root, tMin, tMax) {
			return HitRecord{}, false
		}
	}

	return HitRecord{
		T:      root,
		Normal: ray.At(root).Subtract(s.center).Normalize(),
	}, true
}
