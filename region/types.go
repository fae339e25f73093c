package region

import (
	"sort"

	"github.com/dnastrand/geoenum/strandgraph"
)

// JunctionID indexes a RegionGraph vertex: a nick, branch point, or free
// strand end (spec.md §3's RegionGraph).
type JunctionID int

// RegionEdge is one contiguous single- or double-stranded run between two
// junctions (spec.md's RegionDomain paired with its endpoints). From and To
// are arbitrary but fixed at construction time, giving every edge a stable
// direction that sampled unit vectors can be expressed against.
type RegionEdge struct {
	ID               int
	From, To         JunctionID
	DoubleStranded   bool
	NucleotideLength int
	SourceVertex     int
	SourceSites      []strandgraph.Site
}

// Other returns the endpoint of e that is not j. Panics if j is not an
// endpoint of e.
func (e RegionEdge) Other(j JunctionID) JunctionID {
	switch j {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		panic("region: RegionEdge.Other called with non-endpoint junction")
	}
}

// RegionGraph is the derived graph of spec.md §4.2: vertices are junctions,
// edges are nt-length-carrying regions. Parallel edges and self-loops are
// permitted.
type RegionGraph struct {
	NumJunctions int
	Edges        []RegionEdge
}

// EdgesAt returns every edge incident to j, in edge-ID order.
func (rg *RegionGraph) EdgesAt(j JunctionID) []RegionEdge {
	out := make([]RegionEdge, 0)
	for _, e := range rg.Edges {
		if e.From == j || e.To == j {
			out = append(out, e)
		}
	}
	return out
}

// Degree returns the incidence count of j, counting a self-loop twice.
func (rg *RegionGraph) Degree(j JunctionID) int {
	d := 0
	for _, e := range rg.Edges {
		if e.From == j {
			d++
		}
		if e.To == j {
			d++
		}
	}
	return d
}

// FindMaxDegreeVertices returns all junctions tied for maximum incidence
// count (spec.md §4.2's findMaxDegreeVertices).
func (rg *RegionGraph) FindMaxDegreeVertices() []JunctionID {
	best := -1
	degrees := make([]int, rg.NumJunctions)
	for j := 0; j < rg.NumJunctions; j++ {
		d := rg.Degree(JunctionID(j))
		degrees[j] = d
		if d > best {
			best = d
		}
	}
	out := make([]JunctionID, 0)
	for j, d := range degrees {
		if d == best {
			out = append(out, JunctionID(j))
		}
	}
	return out
}

// NickedJunctions returns junctions where exactly two double-stranded
// regions meet, sourced from two distinct strand instances (spec.md §3's
// "opposite strands" nicked junction), and nothing else is incident.
func (rg *RegionGraph) NickedJunctions() []JunctionID {
	out := make([]JunctionID, 0)
	for j := 0; j < rg.NumJunctions; j++ {
		edges := rg.EdgesAt(JunctionID(j))
		if len(edges) != 2 {
			continue
		}
		if !edges[0].DoubleStranded || !edges[1].DoubleStranded {
			continue
		}
		if edges[0].SourceVertex == edges[1].SourceVertex {
			continue
		}
		out = append(out, JunctionID(j))
	}
	return out
}

// sortedEdgeIDs returns es's IDs, ascending, used only for deterministic
// diagnostics/tests.
func sortedEdgeIDs(es []RegionEdge) []int {
	ids := make([]int, len(es))
	for i, e := range es {
		ids[i] = e.ID
	}
	sort.Ints(ids)
	return ids
}
