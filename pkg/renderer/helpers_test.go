package renderer

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// MockScene implements Scene for testing
type MockScene struct {
	world       geometry.Shape
	top, bottom core.Vec3
}

func newMockScene(shapes ...geometry.Shape) MockScene {
	bg := DefaultBackground()
	return MockScene{
		world:  geometry.NewHittableList(shapes...),
		top:    bg.Top,
		bottom: bg.Bottom,
	}
}

func (m MockScene) GetWorld() geometry.Shape { return m.world }
func (m MockScene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return m.top, m.bottom
}

// fixedSampler returns the same numbers forever
type fixedSampler struct{ u, v float64 }

func (f fixedSampler) Get1D() float64            { return f.u }
func (f fixedSampler) Get2D() (float64, float64) { return f.u, f.v }

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
