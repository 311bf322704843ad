package geometry

import "github.com/df07/go-sphere-tracer/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Normal core.Vec3 // Unit surface normal, pointing away from the shape's interior
	T      float64   // Parameter t along the ray
}

// Shape interface for objects that can be hit by rays.
// Hit reports the nearest intersection with t in the inclusive range [tMin, tMax].
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool)
}

// inRange reports whether t lies in the inclusive range [tMin, tMax]
func inRange(t, tMin, tMax float64) bool {
	return t >= tMin && t <= tMax
}
