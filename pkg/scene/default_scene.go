package scene

import "github.com/df07/go-sphere-tracer/pkg/core"

// groundRadius is large enough that the ground looks flat from the camera
const groundRadius = 100.0

// NewDefaultScene creates a scene with one small sphere resting on a huge ground sphere
func NewDefaultScene() *Scene {
	s := NewScene("default")
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5)
	s.AddSphere(core.NewVec3(0, -groundRadius-0.5, -1), groundRadius)
	return s
}

// NewGroundScene creates a scene with only the ground sphere
func NewGroundScene() *Scene {
	s := NewScene("ground")
	s.AddSphere(core.NewVec3(0, -groundRadius-0.5, -1), groundRadius)
	return s
}
