package checker

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dnastrand/geoenum/distributions"
	"github.com/dnastrand/geoenum/region"
)

// distanceTolerance absorbs floating-point rounding in the equality check
// on double-stranded regions; it is far smaller than any physically
// meaningful length (DSLength alone is 0.34nm).
const distanceTolerance = 1e-6

// checkConstraints implements spec.md §4.4's checkConstraints: both the
// distance and angle checks must pass for a sample to be accepted.
func (c *Checker) checkConstraints(rg *region.RegionGraph, coords map[region.JunctionID]r3.Vec) bool {
	return checkDistanceConstraints(rg, coords) && checkAngleConstraints(rg, coords)
}

// checkDistanceConstraints requires ds edges to measure exactly nt *
// DSLength (within tolerance) and ss edges to measure at most nt *
// SSLength.
func checkDistanceConstraints(rg *region.RegionGraph, coords map[region.JunctionID]r3.Vec) bool {
	for _, e := range rg.Edges {
		d := r3.Norm(r3.Sub(coords[e.To], coords[e.From]))
		if e.DoubleStranded {
			l := float64(e.NucleotideLength) * distributions.DSLength
			if math.Abs(d-l) > distanceTolerance {
				return false
			}
			continue
		}
		l := float64(e.NucleotideLength) * distributions.SSLength
		if d > l+distanceTolerance {
			return false
		}
	}
	return true
}

// checkAngleConstraints requires every nicked junction's angle to be at
// most NickedAngleUpperBoundDeg, when NickedFlag is enabled.
func checkAngleConstraints(rg *region.RegionGraph, coords map[region.JunctionID]r3.Vec) bool {
	if !distributions.NickedFlag {
		return true
	}
	angles := rg.ComputeNickedAngles(coords)
	for _, deg := range angles {
		if deg > distributions.NickedAngleUpperBoundDeg {
			return false
		}
	}
	return true
}
