// Package enumerator discovers the chemical reaction network reachable
// from an initial species list (spec.md §4.5): binding, unbinding, and
// three-/four-way branch migration transitions, each admitted only if
// every connected component of its product strand graph passes the
// geometric plausibility oracle (package checker).
package enumerator
