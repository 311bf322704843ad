package core

import (
	"math"
	"math/rand"
	"time"
)

// Sampler provides random numbers to the shader and the render driver.
// Can be swapped out for deterministic testing.
type Sampler interface {
	Get1D() float64
	Get2D() (float64, float64)
}

// RandomSampler wraps a standard Go random generator.
// A RandomSampler must not be shared between goroutines.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewWorkerSampler creates an independently seeded sampler for one worker
func NewWorkerSampler(workerID int) *RandomSampler {
	seed := time.Now().UnixNano() + int64(workerID)*7919
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() (float64, float64) {
	return r.random.Float64(), r.random.Float64()
}

// RandomOnUnitSphere picks a point on the unit sphere from two uniform angles.
// The angles are uniform, not the area, so points cluster toward the poles.
func RandomOnUnitSphere(sampler Sampler) Vec3 {
	u, v := sampler.Get2D()
	theta := 2.0 * math.Pi * u
	phi := math.Pi * v

	sinPhi := math.Sin(phi)
	return NewVec3(
		sinPhi*math.Cos(theta),
		math.Cos(phi),
		sinPhi*math.Sin(theta),
	)
}
