package distributions

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// RegionDomain is the pair spec.md §3 calls RegionDomain: whether the
// region is double-stranded, and its total nucleotide length.
type RegionDomain struct {
	DoubleStranded   bool
	NucleotideLength int
}

// PlacementInfo records how the previously placed endpoint got there,
// mirroring the original implementation's previousDomainInfo: the unit
// vector used, the region it came from, and the angle it was sampled at.
// A nil *PlacementInfo means the endpoint being placed has no predecessor
// (it is the sampling origin).
type PlacementInfo struct {
	UnitVec        r3.Vec
	Domain         RegionDomain
	SampledAngle   float64
	PrevVertexName string
}

// LengthAngleSampler is the strategy interface of spec.md §9:
// "sample_length(region, prev_info, rng) -> (unit_vec, length, angle)".
// Implementations return a unit direction vector, a length in nm, and an
// angle in degrees; every implementation in this package reports the
// direction's polar angle from the +z axis, not an angle relative to prev.
type LengthAngleSampler interface {
	Sample(region RegionDomain, prev *PlacementInfo, rng *rand.Rand) (unitVec r3.Vec, length float64, angleDeg float64)
}

// Set bundles the five samplers the checker composes (spec.md §9's "tuple
// of four" — the reference implementation actually wires five: a length
// sampler for each strandedness, plus three angle samplers for distinct
// geometric contexts).
type Set struct {
	SSLength LengthAngleSampler
	DSLength LengthAngleSampler
	Tether   LengthAngleSampler
	SSAngle  LengthAngleSampler
	DSDSAngle LengthAngleSampler
}

// Default returns the Set the reference checker uses: worm-like-chain
// ssDNA lengths, deterministic dsDNA lengths, and isotropic sphere
// sampling for every angle context.
func Default() Set {
	return Set{
		SSLength:  WLC{},
		DSLength:  MaxLength{},
		Tether:    UniformSphere{},
		SSAngle:   UniformSphere{},
		DSDSAngle: UniformSphere{},
	}
}
