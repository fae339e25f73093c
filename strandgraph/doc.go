// Package strandgraph implements the colored multigraph data model of
// spec.md §3/§4.1: vertices are strand instances, each with an ordered list
// of sites (one per domain); admissible edges are the site pairs that could
// in principle bind, toehold edges the admissible pairs where both base
// domains are toeholds, and current edges the admissible pairs currently
// bound.
//
// StrandGraph is a value type: AddEdge/RemoveEdge return a new graph built
// by copying the edge sets, matching the "transitions produce new graphs by
// edge-set mutation over a copy" lifetime rule of spec.md §3. Vertex
// identity within a single StrandGraph is a dense 0-based index; Site pairs
// that index with a domain position, so no pointers cross graphs.
package strandgraph
