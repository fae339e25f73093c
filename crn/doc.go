// Package crn holds the Reaction and CRN records of spec.md §3/§6: one
// reaction per discovered transition, deduplicated and reversible-pair
// compressed, plus text and DOT renderings of the resulting network.
package crn
