package strandgraph

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/dnastrand/geoenum/domain"
)

// Site identifies one domain position: the Vertex is a dense 0-based index
// into StrandGraph.Vertices, and Index is the domain's position on that
// strand (5'->3').
type Site struct {
	Vertex int
	Index  int
}

// Less gives Site a total order used to normalize edges and to produce
// deterministic, sorted output everywhere a []Site or []Edge is returned.
func (s Site) Less(o Site) bool {
	if s.Vertex != o.Vertex {
		return s.Vertex < o.Vertex
	}
	return s.Index < o.Index
}

func (s Site) String() string { return fmt.Sprintf("v%d.%d", s.Vertex, s.Index) }

// Edge is an unordered pair of sites, stored with A <= B so that two Edge
// values constructed from either ordering of the same pair compare equal
// and hash identically as a map key.
type Edge struct {
	A, B Site
}

// NewEdge builds the normalized Edge over s1 and s2.
func NewEdge(s1, s2 Site) Edge {
	if s2.Less(s1) {
		s1, s2 = s2, s1
	}
	return Edge{A: s1, B: s2}
}

// Has reports whether s is one of the edge's endpoints.
func (e Edge) Has(s Site) bool { return e.A == s || e.B == s }

// Other returns the endpoint of e that is not s. Panics if s is not an
// endpoint; callers must guard with Has when s's membership is unknown.
func (e Edge) Other(s Site) Site {
	switch {
	case e.A == s:
		return e.B
	case e.B == s:
		return e.A
	default:
		panic("strandgraph: Edge.Other called with non-endpoint site")
	}
}

// Less orders edges lexicographically by (A, B); used to produce the
// deterministic "sorted multiset of involved edges" of spec.md §4.5.
func (e Edge) Less(o Edge) bool {
	if e.A != o.A {
		return e.A.Less(o.A)
	}
	return e.B.Less(o.B)
}

func (e Edge) String() string { return fmt.Sprintf("%s-%s", e.A, e.B) }

// SortEdges returns a new, ascending-sorted copy of es.
func SortEdges(es []Edge) []Edge {
	out := make([]Edge, len(es))
	copy(out, es)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// SortSites returns a new, ascending-sorted copy of ss.
func SortSites(ss []Site) []Site {
	out := make([]Site, len(ss))
	copy(out, ss)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// VertexInstance is one strand instance: its domain sequence plus an opaque
// debug tag. InstanceID is never consulted for canonical equality or cache
// keys (see strandgraph/canonical.go); FromProcess sets it, and no renderer
// in this module (CLI text or crn's DOT output) prints it.
type VertexInstance struct {
	Strand     domain.Strand
	InstanceID string
}

// EdgeSet is a set of edges, represented as a map for O(1) membership tests.
type EdgeSet map[Edge]struct{}

// Clone returns a shallow copy of the set.
func (s EdgeSet) Clone() EdgeSet {
	out := make(EdgeSet, len(s))
	for e := range s {
		out[e] = struct{}{}
	}
	return out
}

// Slice returns the set's members in ascending sorted order.
func (s EdgeSet) Slice() []Edge {
	out := make([]Edge, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	return SortEdges(out)
}

// StrandGraph is the colored multigraph of spec.md §3/§4.1. It is treated
// as a value type: methods that would mutate edge sets return a new
// StrandGraph rather than modifying the receiver in place.
type StrandGraph struct {
	Vertices     []VertexInstance
	Admissible   EdgeSet
	Toehold      EdgeSet
	Current      EdgeSet
	DomainLength domain.LengthMap
}

// New validates and constructs a StrandGraph from explicit edge sets. Most
// callers should use FromProcess instead; New is exposed for enumerator
// transition code that has already computed a successor edge set directly.
func New(vertices []VertexInstance, admissible, toehold, current EdgeSet, lengths domain.LengthMap) (*StrandGraph, error) {
	sg := &StrandGraph{
		Vertices:     vertices,
		Admissible:   admissible,
		Toehold:      toehold,
		Current:      current,
		DomainLength: lengths,
	}
	if err := sg.validate(); err != nil {
		return nil, err
	}
	return sg, nil
}

// validate checks the invariants of spec.md §3: current/toehold subset of
// admissible, at most one current edge per site, and a declared length for
// every domain that appears on any strand.
func (sg *StrandGraph) validate() error {
	for e := range sg.Current {
		if _, ok := sg.Admissible[e]; !ok {
			return fmt.Errorf("current edge %s: %w", e, ErrEdgeNotAdmissible)
		}
	}
	for e := range sg.Toehold {
		if _, ok := sg.Admissible[e]; !ok {
			return fmt.Errorf("toehold edge %s: %w", e, ErrEdgeNotAdmissible)
		}
	}
	boundCount := map[Site]int{}
	for e := range sg.Current {
		boundCount[e.A]++
		boundCount[e.B]++
		if boundCount[e.A] > 1 || boundCount[e.B] > 1 {
			return fmt.Errorf("site double-bound at %s: %w", e, ErrSiteDoubleBound)
		}
	}
	for _, v := range sg.Vertices {
		for _, d := range v.Strand.Domains {
			if _, ok := sg.DomainLength[d.Name]; !ok {
				return fmt.Errorf("domain %q: %w", d.Name, ErrMissingLength)
			}
		}
	}
	if err := detectZeroNucleotideLoops(sg); err != nil {
		return err
	}
	return nil
}

// detectZeroNucleotideLoops rejects the degenerate motif of spec.md §8:
// two strand-adjacent complementary domains that are, or could become,
// bound to each other with no intervening nucleotide (an admissible edge
// directly between a site and its own 3'-adjacent neighbor).
func detectZeroNucleotideLoops(sg *StrandGraph) error {
	for e := range sg.Admissible {
		if e.A.Vertex != e.B.Vertex {
			continue
		}
		lo, hi := e.A.Index, e.B.Index
		if lo > hi {
			lo, hi = hi, lo
		}
		if hi-lo == 1 {
			return fmt.Errorf("strand-adjacent sites %s: %w", e, ErrZeroNucleotideLoop)
		}
	}
	return nil
}

// NumVertices returns the number of strand instances in the graph.
func (sg *StrandGraph) NumVertices() int { return len(sg.Vertices) }

// Sites returns every site of the graph, in (vertex, index) order.
func (sg *StrandGraph) Sites() []Site {
	out := make([]Site, 0)
	for vi, v := range sg.Vertices {
		for di := range v.Strand.Domains {
			out = append(out, Site{Vertex: vi, Index: di})
		}
	}
	return out
}

// DomainAt returns the Domain occupying site s.
func (sg *StrandGraph) DomainAt(s Site) domain.Domain {
	return sg.Vertices[s.Vertex].Strand.Domains[s.Index]
}

// newInstanceID produces a fresh debug tag for a strand instance.
func newInstanceID() string { return uuid.NewString() }
