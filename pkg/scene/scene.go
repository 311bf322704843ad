package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	World       *geometry.HittableList // Objects in the scene
	TopColor    core.Vec3              // Sky color straight up
	BottomColor core.Vec3              // Sky color straight down
}

// NewScene creates an empty scene with the default sky gradient
func NewScene(name string) *Scene {
	bg := renderer.DefaultBackground()
	return &Scene{
		Name:        name,
		World:       geometry.NewHittableList(),
		TopColor:    bg.Top,
		BottomColor: bg.Bottom,
	}
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64) {
	s.World.Add(geometry.NewSphere(center, radius))
}

// GetWorld returns the shapes to trace
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
