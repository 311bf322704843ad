package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

func TestShader_DepthZeroIsBlack(t *testing.T) {
	shader := &Shader{
		World:      geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5)),
		Background: DefaultBackground(),
	}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), // hit
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),  // miss
	}
	for _, depth := range []int{0, -3} {
		for _, ray := range rays {
			if got := shader.RayColor(ray, depth, sampler); got != (core.Vec3{}) {
				t.Errorf("depth %d: expected black, got %v", depth, got)
			}
		}
	}
}

func TestShader_MissReturnsSkyGradient(t *testing.T) {
	shader := &Shader{
		World:      geometry.NewHittableList(),
		Background: DefaultBackground(),
	}
	white := core.NewVec3(1, 1, 1)
	skyBlue := core.NewVec3(0.5, 0.7, 1.0)

	directions := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0.3, 0.5, -0.8).Normalize(),
		core.NewVec3(-0.1, -0.9, 0.2).Normalize(),
	}

	for _, dir := range directions {
		got := shader.RayColor(core.NewRay(core.Vec3{}, dir), 40, fixedSampler{})
		expected := core.Lerp(white, skyBlue, (dir.Y+1)*0.5)
		if !vecNear(got, expected, 1e-12) {
			t.Errorf("Direction %v: expected %v, got %v", dir, expected, got)
		}
	}
}

func TestShader_HitAtDepthOneIsBlack(t *testing.T) {
	shader := &Shader{
		World:      geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -2), 1)),
		Background: DefaultBackground(),
	}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	if got := shader.RayColor(ray, 1, fixedSampler{0, 0.5}); got != (core.Vec3{}) {
		t.Errorf("Expected black after the last bounce, got %v", got)
	}
}

func TestShader_SingleBounceHalvesSky(t *testing.T) {
	shader := &Shader{
		World:      geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -2), 1)),
		Background: DefaultBackground(),
		MinT:       1e-3,
	}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	// Hit at (0,0,-1) with normal +Z; the fixed sample is the +X unit vector,
	// so the bounce direction is (1, 0, 1) and escapes with Y = 0.
	got := shader.RayColor(ray, 2, fixedSampler{0, 0.5})
	expected := core.NewVec3(0.75, 0.85, 1.0).Multiply(0.5)
	if !vecNear(got, expected, 1e-9) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestShader_ColorsStayInRange(t *testing.T) {
	shader := &Shader{
		World: geometry.NewHittableList(
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100),
		),
		Background: DefaultBackground(),
	}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(99)))
	camera := NewCamera(16, 9)

	for i := 0; i < 200; i++ {
		u, v := sampler.Get2D()
		c := shader.RayColor(camera.GetRay(u, v), 40, sampler)
		for _, ch := range []float64{c.X, c.Y, c.Z} {
			if math.IsNaN(ch) || ch < 0 || ch > 1 {
				t.Fatalf("Color channel out of range: %v", c)
			}
		}
	}
}

func TestBackground_CustomColors(t *testing.T) {
	bg := Background{Bottom: core.NewVec3(0, 0, 0), Top: core.NewVec3(1, 0, 0)}
	got := bg.Color(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if !vecNear(got, core.NewVec3(0.5, 0, 0), 1e-12) {
		t.Errorf("Expected (0.5, 0, 0), got %v", got)
	}
}
