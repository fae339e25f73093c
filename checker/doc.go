// Package checker implements the geometric plausibility oracle of
// spec.md §4.4: given a strand graph, it derives a region graph and makes
// up to distributions.SamplingTrials attempts to assign 3-D coordinates
// to its junctions that satisfy every region's distance constraint and
// every nicked junction's angle bound. A strand graph is plausible iff
// some attempt succeeds.
package checker
