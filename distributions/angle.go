package distributions

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// UniformSphere samples a direction uniformly over the full sphere
// (spec.md §4.3's isotropic tether / ssDomain / dsds-junction angle).
type UniformSphere struct{}

// sampleVec draws a uniform point on the unit sphere via normalized
// Gaussian coordinates (the Marsaglia method), avoiding the polar bias a
// naive spherical-coordinate sampler would introduce.
func (UniformSphere) sampleVec(rng *rand.Rand) r3.Vec {
	for {
		v := r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		n := r3.Norm(v)
		if n > 1e-9 {
			return r3.Scale(1/n, v)
		}
	}
}

// Sample implements LengthAngleSampler; UniformSphere carries no length of
// its own; callers use it purely for direction.
func (u UniformSphere) Sample(region RegionDomain, prev *PlacementInfo, rng *rand.Rand) (r3.Vec, float64, float64) {
	vec := u.sampleVec(rng)
	angle := math.Acos(vec.Z) * 180 / math.Pi
	return vec, 0, angle
}

// UniformHemisphere samples a direction uniformly over the hemisphere
// z >= 0: the alternative tether model spec.md §4.3 and §9 list but the
// reference checker does not default to (useful when a tether point is
// physically constrained to one side of an anchor).
type UniformHemisphere struct{}

func (UniformHemisphere) sampleVec(rng *rand.Rand) r3.Vec {
	v := UniformSphere{}.sampleVec(rng)
	if v.Z < 0 {
		v = r3.Scale(-1, v)
	}
	return v
}

// Sample implements LengthAngleSampler.
func (h UniformHemisphere) Sample(region RegionDomain, prev *PlacementInfo, rng *rand.Rand) (r3.Vec, float64, float64) {
	vec := h.sampleVec(rng)
	angle := math.Acos(vec.Z) * 180 / math.Pi
	return vec, 0, angle
}
