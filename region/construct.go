package region

import (
	"sort"

	"github.com/dnastrand/geoenum/strandgraph"
)

// boundaryKey identifies one inter-site boundary on one strand: the
// position between site pos-1 and site pos, for pos in [0, n] where n is
// the strand's domain count. Position 0 is the 5' free end; position n is
// the 3' free end.
type boundaryKey struct {
	vertex, pos int
}

// boundaryUF is a union-find over boundaryKeys, used to merge junctions
// that a bond ties together across strands.
type boundaryUF struct {
	index  map[boundaryKey]int
	parent []int
	keys   []boundaryKey
}

func newBoundaryUF() *boundaryUF {
	return &boundaryUF{index: map[boundaryKey]int{}}
}

func (u *boundaryUF) idOf(k boundaryKey) int {
	if i, ok := u.index[k]; ok {
		return i
	}
	i := len(u.parent)
	u.index[k] = i
	u.parent = append(u.parent, i)
	u.keys = append(u.keys, k)
	return i
}

func (u *boundaryUF) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *boundaryUF) union(a, b boundaryKey) {
	ra, rb := u.find(u.idOf(a)), u.find(u.idOf(b))
	if ra != rb {
		u.parent[ra] = rb
	}
}

// run is a maximal contiguous range of same-boundedness sites on one
// strand: [lo, hi] inclusive domain indices.
type run struct {
	vertex, lo, hi int
	bound          bool
}

// strandRuns partitions one strand's sites into maximal runs of equal
// boundedness (spec.md §4.2's "merging consecutive sites into a region of
// the same strandedness").
func strandRuns(sg *strandgraph.StrandGraph, vertex int, isBound func(strandgraph.Site) bool) []run {
	n := sg.Vertices[vertex].Strand.Len()
	out := make([]run, 0)
	lo := 0
	cur := isBound(strandgraph.Site{Vertex: vertex, Index: 0})
	for i := 1; i < n; i++ {
		b := isBound(strandgraph.Site{Vertex: vertex, Index: i})
		if b != cur {
			out = append(out, run{vertex: vertex, lo: lo, hi: i - 1, bound: cur})
			lo = i
			cur = b
		}
	}
	out = append(out, run{vertex: vertex, lo: lo, hi: n - 1, bound: cur})
	return out
}

// isTerminal reports whether site s sits at the boundary of its run on the
// given side: true at a strand end, or where the strand-adjacent neighbor
// on that side has different boundedness.
func isTerminal(sg *strandgraph.StrandGraph, s strandgraph.Site, isBound func(strandgraph.Site) bool, threePrime bool) bool {
	var neighbor strandgraph.Site
	var ok bool
	if threePrime {
		neighbor, ok = sg.ThreePrimeAdjacentSite(s)
	} else {
		neighbor, ok = sg.FivePrimeAdjacentSite(s)
	}
	if !ok {
		return true
	}
	return isBound(neighbor) != isBound(s)
}

// FromStrandGraph derives a RegionGraph from sg (spec.md §4.2). Junctions
// that a current edge ties together across strands (a bond crossing to
// another strand, or a nick between two double-stranded segments) are
// merged by unioning the boundary each bonded site terminates, on the
// antiparallel side of its partner.
func FromStrandGraph(sg *strandgraph.StrandGraph) (*RegionGraph, error) {
	if sg.NumVertices() == 0 {
		return nil, ErrNoJunctions
	}

	isBound := func(s strandgraph.Site) bool {
		_, ok := sg.GetBindingPartner(s)
		return ok
	}

	uf := newBoundaryUF()

	// Compute every strand's runs first and register their boundary
	// tokens, so every junction a region edge will reference already
	// exists before the dense-ID pass below runs.
	runsByVertex := make([][]run, sg.NumVertices())
	for v := range sg.Vertices {
		runsByVertex[v] = strandRuns(sg, v, isBound)
		for _, r := range runsByVertex[v] {
			uf.idOf(boundaryKey{vertex: v, pos: r.lo})
			uf.idOf(boundaryKey{vertex: v, pos: r.hi + 1})
		}
	}

	leftBoundary := func(s strandgraph.Site) boundaryKey { return boundaryKey{vertex: s.Vertex, pos: s.Index} }
	rightBoundary := func(s strandgraph.Site) boundaryKey { return boundaryKey{vertex: s.Vertex, pos: s.Index + 1} }

	// Watson-Crick pairing is antiparallel: a bonded site that terminates
	// its run on the 5' side always faces its partner's 3'-side
	// terminus, and vice versa. Matching same-side termini instead would
	// collapse a duplex's two ends into one junction.
	for e := range sg.Current {
		a, b := e.A, e.B
		aLeft, aRight := isTerminal(sg, a, isBound, false), isTerminal(sg, a, isBound, true)
		bLeft, bRight := isTerminal(sg, b, isBound, false), isTerminal(sg, b, isBound, true)
		if aLeft && bRight {
			uf.union(leftBoundary(a), rightBoundary(b))
		}
		if aRight && bLeft {
			uf.union(rightBoundary(a), leftBoundary(b))
		}
	}

	// Assign dense, deterministic junction IDs by sorted representative
	// boundary key.
	rootOf := make(map[int]int) // union-find id -> dense JunctionID
	roots := make([]int, 0)
	for i := range uf.parent {
		r := uf.find(i)
		if _, seen := rootOf[r]; !seen {
			rootOf[r] = -1
			roots = append(roots, r)
		}
	}
	sort.Slice(roots, func(i, j int) bool {
		ki, kj := uf.keys[roots[i]], uf.keys[roots[j]]
		if ki.vertex != kj.vertex {
			return ki.vertex < kj.vertex
		}
		return ki.pos < kj.pos
	})
	for idx, r := range roots {
		rootOf[r] = idx
	}
	junctionOf := func(k boundaryKey) JunctionID {
		return JunctionID(rootOf[uf.find(uf.idOf(k))])
	}

	rg := &RegionGraph{NumJunctions: len(roots)}
	edgeID := 0
	for v := range sg.Vertices {
		for _, r := range runsByVertex[v] {
			total := 0
			sites := make([]strandgraph.Site, 0, r.hi-r.lo+1)
			for idx := r.lo; idx <= r.hi; idx++ {
				d := sg.DomainAt(strandgraph.Site{Vertex: v, Index: idx})
				length, _ := sg.DomainLength.Lookup(d.Name)
				total += length.Length
				sites = append(sites, strandgraph.Site{Vertex: v, Index: idx})
			}
			rg.Edges = append(rg.Edges, RegionEdge{
				ID:               edgeID,
				From:             junctionOf(boundaryKey{vertex: v, pos: r.lo}),
				To:               junctionOf(boundaryKey{vertex: v, pos: r.hi + 1}),
				DoubleStranded:   r.bound,
				NucleotideLength: total,
				SourceVertex:     v,
				SourceSites:      sites,
			})
			edgeID++
		}
	}
	return rg, nil
}
