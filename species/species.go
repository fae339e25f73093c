package species

import (
	"fmt"

	"github.com/dnastrand/geoenum/domain"
	"github.com/dnastrand/geoenum/strandgraph"
)

// Species is a connected StrandGraph held in canonical form. Equality is by
// canonical form (spec.md §3): two Species are Equal iff their Key()s
// match.
type Species struct {
	graph *strandgraph.StrandGraph
	key   string
}

// FromStrandGraph builds a Species from sg, which must be connected. sg is
// canonicalized internally; the caller's graph is not mutated.
func FromStrandGraph(sg *strandgraph.StrandGraph) (*Species, error) {
	if !sg.IsConnected() {
		return nil, &notConnectedError{inner: fmt.Errorf("%d vertices: %w", sg.NumVertices(), ErrNotConnected)}
	}
	canon := sg.Canonical()
	return &Species{graph: canon, key: canon.Key()}, nil
}

// Graph returns the species' canonical strand graph. Callers must treat it
// as read-only; StrandGraph methods that "mutate" already return copies.
func (s *Species) Graph() *strandgraph.StrandGraph { return s.graph }

// Key returns the canonical-form string used as species identity and as
// the plausibility-cache key (spec.md §4.5).
func (s *Species) Key() string { return s.key }

// NumVertices returns the number of strands in the species.
func (s *Species) NumVertices() int { return s.graph.NumVertices() }

// Equal reports whether s and other have the same canonical form.
func (s *Species) Equal(other *Species) bool {
	if other == nil {
		return false
	}
	return s.key == other.key
}

// Less gives Species a total, deterministic order (by canonical key),
// used to build the sorted species pairs of spec.md §4.5's closure loop.
func (s *Species) Less(other *Species) bool { return s.key < other.key }

// String renders the species using the Process surface syntax of spec.md
// §6, with bond labels assigned deterministically from the sorted current
// edge list (i1, i2, ...) rather than taken from whatever bond label text
// happened to appear in the input — those are not kept in sync with the
// edge set across transitions (see strandgraph.strandShape).
func (s *Species) String() string {
	return s.AsProcess().String()
}

// AsProcess reconstructs a domain.Process for s, with bond labels assigned
// deterministically from the sorted current edge list.
func (s *Species) AsProcess() domain.Process {
	g := s.graph
	labels := map[strandgraph.Edge]string{}
	for i, e := range g.CurrentEdges() {
		labels[e] = fmt.Sprintf("i%d", i+1)
	}
	siteLabel := map[strandgraph.Site]string{}
	for e, lbl := range labels {
		siteLabel[e.A] = lbl
		siteLabel[e.B] = lbl
	}

	strands := make([]domain.Strand, g.NumVertices())
	for vi, v := range g.Vertices {
		ds := make([]domain.Domain, len(v.Strand.Domains))
		for di, dm := range v.Strand.Domains {
			site := strandgraph.Site{Vertex: vi, Index: di}
			bond := siteLabel[site]
			ds[di] = domain.Domain{Name: dm.Name, Toehold: dm.Toehold, Complement: dm.Complement, Bond: bond}
		}
		strands[vi], _ = domain.NewStrand(ds)
	}
	return domain.NewProcess(strands)
}

// FromProcess is a convenience wrapper combining strandgraph.FromProcess and
// FromStrandGraph's connectivity check, for the common case of a Process
// that is itself a single connected species (e.g. one strand of a test
// scenario).
func FromProcess(p domain.Process, lengths domain.LengthMap) (*Species, error) {
	sg, err := strandgraph.FromProcess(p, lengths)
	if err != nil {
		return nil, err
	}
	return FromStrandGraph(sg)
}

// ListFromProcess splits p into its connected components and returns one
// Species per component (spec.md §9: "speciesListFromProcess"), in the
// order strandgraph.ConnectedComponents produces them. There may be
// duplicate canonical forms in the result; callers needing a deduplicated
// set should key by Species.Key().
func ListFromProcess(p domain.Process, lengths domain.LengthMap) ([]*Species, error) {
	sg, err := strandgraph.FromProcess(p, lengths)
	if err != nil {
		return nil, err
	}
	comps := sg.ConnectedComponents()
	out := make([]*Species, 0, len(comps))
	for _, c := range comps {
		sp, err := FromStrandGraph(c)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, nil
}
