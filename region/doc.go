// Package region derives a RegionGraph from a strandgraph.StrandGraph
// (spec.md §4.2): junctions as vertices, and contiguous single- or
// double-stranded runs between them as edges carrying a summed nucleotide
// length. It also classifies nicked junctions, the angle-constrained
// vertices used by the plausibility checker.
package region
