package strandgraph

import (
	"fmt"

	"github.com/dnastrand/geoenum/domain"
)

// PossibleNewEdges returns Admissible \ Current, per spec.md §4.1.
func (sg *StrandGraph) PossibleNewEdges() []Edge {
	out := make([]Edge, 0, len(sg.Admissible))
	for e := range sg.Admissible {
		if _, bound := sg.Current[e]; !bound {
			out = append(out, e)
		}
	}
	return SortEdges(out)
}

// CurrentEdges returns the graph's current edges in sorted order.
func (sg *StrandGraph) CurrentEdges() []Edge { return sg.Current.Slice() }

// ToeholdEdges returns the graph's toehold edges in sorted order.
func (sg *StrandGraph) ToeholdEdges() []Edge { return sg.Toehold.Slice() }

// CurrentlyBoundSites returns every site incident to a current edge.
func (sg *StrandGraph) CurrentlyBoundSites() []Site {
	seen := map[Site]struct{}{}
	for e := range sg.Current {
		seen[e.A] = struct{}{}
		seen[e.B] = struct{}{}
	}
	out := make([]Site, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return SortSites(out)
}

// CurrentlyUnboundSites returns every site not incident to a current edge.
func (sg *StrandGraph) CurrentlyUnboundSites() []Site {
	bound := map[Site]struct{}{}
	for e := range sg.Current {
		bound[e.A] = struct{}{}
		bound[e.B] = struct{}{}
	}
	out := make([]Site, 0)
	for _, s := range sg.Sites() {
		if _, ok := bound[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// GetBindingPartner returns the other end of the current edge at s, if any.
func (sg *StrandGraph) GetBindingPartner(s Site) (Site, bool) {
	for e := range sg.Current {
		if e.Has(s) {
			return e.Other(s), true
		}
	}
	return Site{}, false
}

// BoundSitesOnSameVertexAs returns every bound site sharing s's vertex,
// excluding s itself.
func (sg *StrandGraph) BoundSitesOnSameVertexAs(s Site) []Site {
	out := make([]Site, 0)
	for _, bs := range sg.CurrentlyBoundSites() {
		if bs.Vertex == s.Vertex && bs != s {
			out = append(out, bs)
		}
	}
	return out
}

// ThreePrimeAdjacentSite returns the next site (toward 3') on the same
// strand, or false at the strand's 3' end.
func (sg *StrandGraph) ThreePrimeAdjacentSite(s Site) (Site, bool) {
	n := len(sg.Vertices[s.Vertex].Strand.Domains)
	if s.Index+1 >= n {
		return Site{}, false
	}
	return Site{Vertex: s.Vertex, Index: s.Index + 1}, true
}

// FivePrimeAdjacentSite returns the previous site (toward 5') on the same
// strand, or false at the strand's 5' end.
func (sg *StrandGraph) FivePrimeAdjacentSite(s Site) (Site, bool) {
	if s.Index-1 < 0 {
		return Site{}, false
	}
	return Site{Vertex: s.Vertex, Index: s.Index - 1}, true
}

// AddEdge returns a new StrandGraph with e inserted into the current edge
// set. e must be admissible, not already current, and incident only to
// presently unbound sites.
func (sg *StrandGraph) AddEdge(e Edge) (*StrandGraph, error) {
	if _, ok := sg.Admissible[e]; !ok {
		return nil, fmt.Errorf("%s: %w", e, ErrEdgeNotAdmissible)
	}
	if _, ok := sg.Current[e]; ok {
		return nil, fmt.Errorf("%s: %w", e, ErrEdgeAlreadyCurrent)
	}
	for existing := range sg.Current {
		if existing.Has(e.A) || existing.Has(e.B) {
			return nil, fmt.Errorf("%s conflicts with %s: %w", e, existing, ErrSiteDoubleBound)
		}
	}
	next := sg.Current.Clone()
	next[e] = struct{}{}
	return &StrandGraph{
		Vertices:     sg.Vertices,
		Admissible:   sg.Admissible,
		Toehold:      sg.Toehold,
		Current:      next,
		DomainLength: sg.DomainLength,
	}, nil
}

// RemoveEdge returns a new StrandGraph with e deleted from the current edge
// set. e must currently be bound.
func (sg *StrandGraph) RemoveEdge(e Edge) (*StrandGraph, error) {
	if _, ok := sg.Current[e]; !ok {
		return nil, fmt.Errorf("%s: %w", e, ErrEdgeNotCurrent)
	}
	next := sg.Current.Clone()
	delete(next, e)
	return &StrandGraph{
		Vertices:     sg.Vertices,
		Admissible:   sg.Admissible,
		Toehold:      sg.Toehold,
		Current:      next,
		DomainLength: sg.DomainLength,
	}, nil
}

// HasAdjacent reports whether some current edge shares a strand-adjacent
// site with e (used for unbindingMode=adjacent, spec.md §4.5).
func (sg *StrandGraph) HasAdjacent(e Edge) bool {
	adjacentTo := func(s Site) []Site {
		out := make([]Site, 0, 2)
		if p, ok := sg.ThreePrimeAdjacentSite(s); ok {
			out = append(out, p)
		}
		if p, ok := sg.FivePrimeAdjacentSite(s); ok {
			out = append(out, p)
		}
		return out
	}
	candidates := append(adjacentTo(e.A), adjacentTo(e.B)...)
	for cur := range sg.Current {
		if cur == e {
			continue
		}
		for _, c := range candidates {
			if cur.Has(c) {
				return true
			}
		}
	}
	return false
}

// Compose returns the parallel composition of sg and other: a new
// StrandGraph whose vertices are sg's followed by other's (re-indexed), and
// whose edge sets are the union, shifted accordingly. Used to build the
// combined graph for bimolecular transition discovery (spec.md §4.5).
func (sg *StrandGraph) Compose(other *StrandGraph) *StrandGraph {
	offset := len(sg.Vertices)
	vertices := make([]VertexInstance, 0, offset+len(other.Vertices))
	vertices = append(vertices, sg.Vertices...)
	vertices = append(vertices, other.Vertices...)

	shift := func(s Site) Site { return Site{Vertex: s.Vertex + offset, Index: s.Index} }
	shiftSet := func(in EdgeSet) EdgeSet {
		out := make(EdgeSet, len(in))
		for e := range in {
			out[NewEdge(shift(e.A), shift(e.B))] = struct{}{}
		}
		return out
	}

	admissible := sg.Admissible.Clone()
	for e := range shiftSet(other.Admissible) {
		admissible[e] = struct{}{}
	}
	toehold := sg.Toehold.Clone()
	for e := range shiftSet(other.Toehold) {
		toehold[e] = struct{}{}
	}
	current := sg.Current.Clone()
	for e := range shiftSet(other.Current) {
		current[e] = struct{}{}
	}

	// sg and other were each built independently, so neither one's admissible
	// set accounts for complementary domains that straddle the two: scan
	// every (sg site, other site) pair for a new cross-molecule admissible
	// edge, the same rule FromProcess applies within a single graph.
	for _, a := range sg.Sites() {
		da := sg.DomainAt(a)
		for _, b := range other.Sites() {
			db := other.DomainAt(b)
			if !da.ComplementaryTo(db) {
				continue
			}
			e := NewEdge(a, shift(b))
			admissible[e] = struct{}{}
			if da.Toehold && db.Toehold {
				toehold[e] = struct{}{}
			}
		}
	}

	lengths := domain.LengthMap{}
	for k, v := range sg.DomainLength {
		lengths[k] = v
	}
	for k, v := range other.DomainLength {
		lengths[k] = v
	}

	return &StrandGraph{
		Vertices:     vertices,
		Admissible:   admissible,
		Toehold:      toehold,
		Current:      current,
		DomainLength: lengths,
	}
}
