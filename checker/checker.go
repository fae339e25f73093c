package checker

import (
	"math/rand"
	"time"

	"github.com/dnastrand/geoenum/distributions"
	"github.com/dnastrand/geoenum/region"
	"github.com/dnastrand/geoenum/strandgraph"
	"github.com/dnastrand/geoenum/xlog"
)

// Info reports diagnostics about an IsPlausible call, per spec.md §4.4's
// public contract.
type Info struct {
	UnsuccessfulTrials int
}

// Checker is the sampling-based plausibility oracle. It is not safe for
// concurrent use: the single-threaded execution model of spec.md §5
// shares one RNG across the enumerator, the oracle, and sampling.
type Checker struct {
	dist distributions.Set
	rng  *rand.Rand
	log  *xlog.Logger
}

// New constructs a Checker configured with dist, seeded non-deterministically.
func New(dist distributions.Set) *Checker {
	c := &Checker{dist: dist}
	c.Reseed(nil)
	return c
}

// WithLogger attaches l so each IsPlausible call reports its verdict and
// the number of trials it used through it; nil disables logging (the
// default), mirroring
// enumerator.Enumerator.WithLogger.
func (c *Checker) WithLogger(l *xlog.Logger) *Checker {
	c.log = l
	return c
}

// angleSamplerFor picks the direction distribution for the edge being
// placed, matching spec.md §9's per-context angle tuple: a ds region
// continuing another ds region uses DSDSAngle (an unbroken or nicked
// double helix keeps its predecessor's bend statistics, spec.md §4.3's
// helical-continuity branch); an ss region leaving a ds predecessor uses
// Tether (the flexible single strand anchored to a rigid duplex); every
// other ss placement uses SSAngle; a ds region with no ds predecessor
// falls back to an isotropic direction, matching MaxLength's own
// no-predecessor case.
func (c *Checker) angleSamplerFor(doubleStranded bool, prev *distributions.PlacementInfo) distributions.LengthAngleSampler {
	dsPredecessor := prev != nil && prev.Domain.DoubleStranded
	switch {
	case doubleStranded && dsPredecessor && c.dist.DSDSAngle != nil:
		return c.dist.DSDSAngle
	case !doubleStranded && dsPredecessor && c.dist.Tether != nil:
		return c.dist.Tether
	case !doubleStranded && c.dist.SSAngle != nil:
		return c.dist.SSAngle
	default:
		return distributions.UniformSphere{}
	}
}

// Reseed replaces the checker's RNG (spec.md §4.4's reseed(seed)). A nil
// seed reseeds from the wall clock, for normal (non-test) use; tests
// should always pass an explicit seed.
func (c *Checker) Reseed(seed *int64) {
	if seed == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		return
	}
	c.rng = rand.New(rand.NewSource(*seed))
}

// IsPlausible reports whether sg admits a 3-D coordinate assignment
// satisfying all distance and nicked-angle constraints. Disconnected
// graphs are never plausible (spec.md §4.4): the enumerator is required
// to split composed graphs into connected components before checking.
func (c *Checker) IsPlausible(sg *strandgraph.StrandGraph) (bool, Info) {
	if !sg.IsConnected() {
		return false, Info{}
	}
	rg, err := region.FromStrandGraph(sg)
	if err != nil {
		return false, Info{}
	}

	unsuccessful := 0
	for i := 0; i < distributions.SamplingTrials; i++ {
		coords := c.sampleCoordinates(rg)
		if c.checkConstraints(rg, coords) {
			if c.log != nil {
				c.log.SamplingTrial(true, unsuccessful+1)
			}
			return true, Info{UnsuccessfulTrials: unsuccessful}
		}
		unsuccessful++
	}
	if c.log != nil {
		c.log.SamplingTrial(false, unsuccessful)
	}
	return false, Info{UnsuccessfulTrials: unsuccessful}
}
