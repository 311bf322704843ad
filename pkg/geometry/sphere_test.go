package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	ranges := [][2]float64{{0, math.Inf(1)}, {-1000, 1000}, {0.001, 1}}
	for _, r := range ranges {
		hit, isHit := sphere.Hit(ray, r[0], r[1])
		if isHit {
			t.Errorf("Expected miss for range %v, but got hit at t=%f", r, hit.T)
		}
	}
}

func TestSphere_Hit_FrontAndInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "outside hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "origin inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "non-unit direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_InsideAlwaysHits(t *testing.T) {
	center := core.NewVec3(1, -2, 3)
	sphere := NewSphere(center, 2.0)

	origins := []core.Vec3{
		center,
		center.Add(core.NewVec3(1.5, 0, 0)),
		center.Add(core.NewVec3(0.3, -1.2, 0.9)),
	}
	directions := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(0.2, 0.7, -3),
	}

	for _, o := range origins {
		for _, d := range directions {
			hit, isHit := sphere.Hit(core.NewRay(o, d), 0, math.Inf(1))
			if !isHit {
				t.Errorf("Expected hit from inside origin %v dir %v", o, d)
				continue
			}
			if hit.T < 0 {
				t.Errorf("Expected t >= 0, got %f", hit.T)
			}
		}
	}
}

func TestSphere_Hit_NormalIsUnitAndOutward(t *testing.T) {
	center := core.NewVec3(0, 0, -1)
	sphere := NewSphere(center, 0.5)

	for _, dir := range []core.Vec3{
		core.NewVec3(0, 0, -1),
		core.NewVec3(0.2, 0.1, -1),
		core.NewVec3(-0.3, -0.3, -1),
	} {
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)
		hit, isHit := sphere.Hit(ray, 0, math.Inf(1))
		if !isHit {
			t.Fatalf("Expected hit for direction %v", dir)
		}
		if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
			t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
		}
		if hit.Normal.Dot(ray.At(hit.T).Subtract(center)) <= 0 {
			t.Errorf("Normal %v does not point away from center", hit.Normal)
		}
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, 0.001, 0.5)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, 3.5, 1000.0)
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Nearer root excluded, farther root accepted
	hit, isHit = sphere.Hit(ray, 1.5, 1000.0)
	if !isHit || math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root at t=3, got hit=%t t=%f", isHit, hit.T)
	}

	// Inclusive bounds
	hit, isHit = sphere.Hit(ray, 1.0, 1.0)
	if !isHit || hit.T != 1.0 {
		t.Errorf("Expected inclusive hit at t=1, got hit=%t t=%f", isHit, hit.T)
	}
}

func TestSphere_Hit_BehindOriginIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0, math.Inf(1)); isHit {
		t.Errorf("Expected miss for sphere behind the ray, got t=%f", hit.T)
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	if p := ray.At(hit.T); p.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected hit point (1, 0, 0), got %v", p)
	}
}

func TestSphere_PreconditionPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"zero radius", func() { NewSphere(core.NewVec3(0, 0, 0), 0) }},
		{"negative radius", func() { NewSphere(core.NewVec3(0, 0, 0), -1) }},
		{"zero direction", func() {
			NewSphere(core.NewVec3(0, 0, 0), 1).Hit(core.NewRay(core.NewVec3(0, 0, 2), core.Vec3{}), 0, 10)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic")
				}
			}()
			tt.fn()
		})
	}
}
