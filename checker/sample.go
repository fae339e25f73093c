package checker

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dnastrand/geoenum/distributions"
	"github.com/dnastrand/geoenum/region"
)

// sampleCoordinates implements spec.md §4.4's sampleCoordinates: place a
// random max-degree junction at the origin, then greedily extend a
// spanning assignment over dsDNA regions before ssDNA regions, promoting
// newly-reachable regions as their endpoints get placed. Edges whose both
// endpoints are already placed when popped are cycle-closing constraints,
// left for checkConstraints to verify against whatever coordinates they
// ended up with.
func (c *Checker) sampleCoordinates(rg *region.RegionGraph) map[region.JunctionID]r3.Vec {
	maxDeg := rg.FindMaxDegreeVertices()
	origin := maxDeg[c.rng.Intn(len(maxDeg))]

	coords := map[region.JunctionID]r3.Vec{origin: {}}
	prevInfo := map[region.JunctionID]*distributions.PlacementInfo{origin: nil}

	var dsWork, ssWork, unprocessed []region.RegionEdge
	for _, e := range rg.Edges {
		if e.From == origin || e.To == origin {
			if e.DoubleStranded {
				dsWork = append(dsWork, e)
			} else {
				ssWork = append(ssWork, e)
			}
		} else {
			unprocessed = append(unprocessed, e)
		}
	}

	popRandom := func(work *[]region.RegionEdge) region.RegionEdge {
		idx := c.rng.Intn(len(*work))
		e := (*work)[idx]
		*work = append((*work)[:idx], (*work)[idx+1:]...)
		return e
	}

	promote := func(newJ region.JunctionID) {
		remaining := unprocessed[:0:0]
		for _, u := range unprocessed {
			if u.From == newJ || u.To == newJ {
				if u.DoubleStranded {
					dsWork = append(dsWork, u)
				} else {
					ssWork = append(ssWork, u)
				}
			} else {
				remaining = append(remaining, u)
			}
		}
		unprocessed = remaining
	}

	for len(dsWork) > 0 || len(ssWork) > 0 {
		var e region.RegionEdge
		if len(dsWork) > 0 {
			e = popRandom(&dsWork)
		} else {
			e = popRandom(&ssWork)
		}

		_, fromPlaced := coords[e.From]
		_, toPlaced := coords[e.To]
		if fromPlaced && toPlaced {
			continue // cycle-closing edge; checked post-hoc by checkConstraints
		}

		known, unknown := e.From, e.To
		if !fromPlaced {
			known, unknown = e.To, e.From
		}

		domain := distributions.RegionDomain{DoubleStranded: e.DoubleStranded, NucleotideLength: e.NucleotideLength}
		lengthSampler := c.dist.SSLength
		if e.DoubleStranded {
			lengthSampler = c.dist.DSLength
		}
		prev := prevInfo[known]
		_, length, _ := lengthSampler.Sample(domain, prev, c.rng)
		vec, _, angle := c.angleSamplerFor(e.DoubleStranded, prev).Sample(domain, prev, c.rng)

		coords[unknown] = r3.Add(coords[known], r3.Scale(length, vec))
		prevInfo[unknown] = &distributions.PlacementInfo{
			UnitVec:        vec,
			Domain:         domain,
			SampledAngle:   angle,
			PrevVertexName: fmt.Sprintf("%d", known),
		}

		promote(unknown)
	}

	return coords
}
