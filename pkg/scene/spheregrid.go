package scene

import "github.com/df07/go-sphere-tracer/pkg/core"

const (
	gridSize    = 5
	gridSpacing = 0.45
	gridRadius  = 0.15
)

// NewSphereGridScene creates a gridSize x gridSize carpet of small spheres on the ground,
// receding from the camera
func NewSphereGridScene() *Scene {
	s := NewScene("spheregrid")
	s.AddSphere(core.NewVec3(0, -groundRadius-0.5, -1), groundRadius)

	// Center the grid on x = 0 and start just in front of the camera
	offset := float64(gridSize-1) * gridSpacing / 2
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			center := core.NewVec3(
				float64(col)*gridSpacing-offset,
				-0.5+gridRadius,
				-1.0-float64(row)*gridSpacing,
			)
			s.AddSphere(center, gridRadius)
		}
	}

	return s
}
