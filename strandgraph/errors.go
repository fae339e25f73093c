package strandgraph

import "errors"

// Sentinel errors for the strandgraph package. Callers branch with
// errors.Is; context is attached with fmt.Errorf("%w", ...) at call sites
// that know which site/edge triggered the failure.
var (
	// ErrSiteDoubleBound indicates a site would be incident to more than one
	// current edge, violating the strand graph invariant of spec.md §3.
	ErrSiteDoubleBound = errors.New("strandgraph: site already bound")

	// ErrEdgeNotAdmissible indicates an edge added to current/toehold sets is
	// not present in the admissible edge set.
	ErrEdgeNotAdmissible = errors.New("strandgraph: edge is not admissible")

	// ErrEdgeNotCurrent indicates RemoveEdge was called on an edge that is not
	// presently bound.
	ErrEdgeNotCurrent = errors.New("strandgraph: edge is not currently bound")

	// ErrEdgeAlreadyCurrent indicates AddEdge was called on an edge already
	// present in the current edge set.
	ErrEdgeAlreadyCurrent = errors.New("strandgraph: edge is already bound")

	// ErrMissingLength indicates the graph's domain length map omits a domain
	// that appears on one of its strands. spec.md §3: "length defined for
	// every domain appearing in any strand."
	ErrMissingLength = errors.New("strandgraph: missing domain length")

	// ErrZeroNucleotideLoop indicates two strand-adjacent complementary
	// domains are, or could become, bound to each other with no
	// intervening nucleotide,
	// spec.md §8's boundary behavior: such inputs must be rejected before
	// enumeration begins.
	ErrZeroNucleotideLoop = errors.New("strandgraph: zero-nucleotide loop")

	// ErrDisconnected is returned by operations (notably Species construction,
	// see package species) that require a connected strand graph.
	ErrDisconnected = errors.New("strandgraph: graph is not connected")

	// ErrUnknownVertex/ErrUnknownSite indicate an operation referenced a
	// vertex or site outside the graph's current bounds.
	ErrUnknownVertex = errors.New("strandgraph: unknown vertex")
	ErrUnknownSite   = errors.New("strandgraph: unknown site")
)
