package region

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ComputeNickedAngles returns, for each nicked junction, the angle in
// degrees between its two incident double-stranded regions (spec.md
// §4.2's computeNickedAngles), derived from a completed coordinate
// assignment. coords must carry an entry for every junction the region
// graph's edges touch; a junction whose edges are missing a coordinate is
// omitted from the result rather than causing a panic, since a rejected
// sample may leave some junctions unplaced.
func (rg *RegionGraph) ComputeNickedAngles(coords map[JunctionID]r3.Vec) map[JunctionID]float64 {
	out := map[JunctionID]float64{}
	for _, j := range rg.NickedJunctions() {
		edges := rg.EdgesAt(j)
		d0, ok0 := awayFrom(j, edges[0], coords)
		d1, ok1 := awayFrom(j, edges[1], coords)
		if !ok0 || !ok1 {
			continue
		}
		cos := r3.Dot(d0, d1) / (r3.Norm(d0) * r3.Norm(d1))
		cos = math.Max(-1, math.Min(1, cos))
		out[j] = math.Acos(cos) * 180 / math.Pi
	}
	return out
}

// awayFrom returns the (non-unit) vector from junction j to e's other
// endpoint, i.e. the direction e points away from j.
func awayFrom(j JunctionID, e RegionEdge, coords map[JunctionID]r3.Vec) (r3.Vec, bool) {
	other := e.Other(j)
	cj, ok1 := coords[j]
	co, ok2 := coords[other]
	if !ok1 || !ok2 {
		return r3.Vec{}, false
	}
	return r3.Sub(co, cj), true
}
