package geometry

import "github.com/df07/go-sphere-tracer/pkg/core"

// HittableList is an ordered collection of shapes that is itself a Shape.
// Shapes are added while building a scene; the list is read-only while tracing
// and safe for concurrent Hit calls.
type HittableList struct {
	shapes []Shape
}

// NewHittableList creates a list holding the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	list := &HittableList{}
	for _, shape := range shapes {
		list.Add(shape)
	}
	return list
}

// Add appends a shape to the list
func (l *HittableList) Add(shape Shape) {
	if shape == nil {
		panic("geometry: cannot add nil shape")
	}
	l.shapes = append(l.shapes, shape)
}

// Len returns the number of shapes in the list
func (l *HittableList) Len() int {
	return len(l.shapes)
}

// Shapes returns a copy of the shapes in the list
func (l *HittableList) Shapes() []Shape {
	shapes := make([]Shape, len(l.shapes))
	copy(shapes, l.shapes)
	return shapes
}

// Hit returns the nearest hit among all shapes within [tMin, tMax]
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range l.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}
