// Package distributions supplies the length and angle samplers the
// plausibility checker composes into 3-D placements (spec.md §4.3): a
// worm-like-chain sampler for single-stranded regions, a deterministic
// rigid-rod length for double-stranded regions, and isotropic angle
// samplers for tethers, single-stranded turns, and duplex-duplex
// junctions.
package distributions
