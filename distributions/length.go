package distributions

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

// WLC samples a single-stranded region's end-to-end distance from a
// worm-like-chain-derived distribution, truncated to [0, contour length]
// (spec.md §4.3). The direction is isotropic, independent of any prior
// placement.
type WLC struct{}

// Sample implements LengthAngleSampler. The WLC end-to-end distribution
// has no closed-form inverse CDF; this approximates it with a normal
// distribution centered at the contour length scaled by how far the
// persistence length lets the chain actually reach, clamped into the
// physically valid range by rejection (bounded retries, falling back to
// clamping so sampling can never stall). The direction returned here is
// isotropic; the checker calls Sample only for its length and samples
// direction itself from the context-appropriate angle distribution in
// its Set (checker.Checker.angleSamplerFor).
func (WLC) Sample(region RegionDomain, prev *PlacementInfo, rng *rand.Rand) (r3.Vec, float64, float64) {
	contour := float64(region.NucleotideLength) * SSLength
	if contour <= 0 {
		return UniformSphere{}.sampleVec(rng), 0, 0
	}
	// Mean end-to-end distance under the WLC model approaches contour
	// length as persistence length grows relative to contour length, and
	// shrinks toward sqrt(2*persistence*contour) for a floppy chain.
	mean := math.Min(contour, math.Sqrt(2*SSDNAPersistenceLength*contour))
	sigma := mean / 4
	if sigma <= 0 {
		sigma = contour / 8
	}
	dist := distuv.Normal{Mu: mean, Sigma: sigma, Src: rng}

	length := dist.Rand()
	for i := 0; i < 16 && (length < 0 || length > contour); i++ {
		length = dist.Rand()
	}
	length = math.Max(0, math.Min(contour, length))

	vec := UniformSphere{}.sampleVec(rng)
	angle := math.Acos(vec.Z) * 180 / math.Pi
	return vec, length, angle
}

// MaxLength is the deterministic rigid-rod length sampler for
// double-stranded regions (spec.md §4.3): L = nt * DSLength, always.
type MaxLength struct{}

// Sample implements LengthAngleSampler. The direction returned here is
// isotropic; the checker calls Sample only for its length. Direction
// actually depends on the predecessor's own incoming region: a ds region
// following another ds region samples its direction from the dsds-
// junction angle distribution (Set.DSDSAngle); with no predecessor, or a
// predecessor that was single-stranded, direction is isotropic — see
// checker.Checker.angleSamplerFor, which the checker consults instead of
// this method's own vec.
func (MaxLength) Sample(region RegionDomain, prev *PlacementInfo, rng *rand.Rand) (r3.Vec, float64, float64) {
	length := float64(region.NucleotideLength) * DSLength
	vec := UniformSphere{}.sampleVec(rng)
	angle := math.Acos(vec.Z) * 180 / math.Pi
	return vec, length, angle
}
