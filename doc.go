// Package geoenum enumerates the chemical reaction network reachable from a
// set of DNA strand-displacement species, restricted to transitions whose
// product admits a geometrically plausible 3-D structure.
//
// Package layout:
//
//	domain/        — surface-syntax types: Domain, Strand, Process
//	strandgraph/   — the colored multigraph model and canonical labeling
//	species/       — connected, canonicalized StrandGraph values
//	region/        — per-junction region graph derived from a StrandGraph
//	distributions/ — length/angle samplers and their physical constants
//	checker/       — the Monte-Carlo geometric plausibility oracle
//	crn/           — Reaction and CRN records, text/DOT renderers
//	enumerator/    — transition discovery and the closure loop
//	syntax/        — lexer/parser for the process and domain-length grammars
//	xlog/          — structured logging
//	config/        — settings loading
//	cmd/geoenum/   — the CLI test harness
//
// FatalError is implemented by the syntax, invalid-settings,
// complex-size-exceeded and disconnected-species errors of spec.md §7, so
// the CLI can map them to a nonzero exit code without string matching.
// Well-formedness errors from packages domain and strandgraph are plain
// wrapped sentinels that do not implement it; the CLI exits with code 1
// for those and code 2 for a FatalError.
package geoenum

// FatalError is satisfied by any error that should terminate a run rather
// than be treated as recoverable.
type FatalError interface {
	error
	Fatal() bool
}
