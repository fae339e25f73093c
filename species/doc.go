// Package species wraps a connected, canonical strandgraph.StrandGraph as
// the unit of CRN membership (spec.md §3). Two species are equal iff their
// canonical forms are equal; construction from a disconnected strand graph
// is a fatal error (spec.md §7's "Non-connected species constructed").
package species
