// Package config loads enumerator settings via viper: enumeration/
// three-way/unbinding modes, maxComplexSize, the four reaction rates,
// and the RNG seed, from an optional YAML/JSON file plus GEOENUM_-prefixed
// environment overrides. The distribution constants of spec.md §4.3 are
// not configurable here; they are constants of package distributions.
// Validation beyond what viper itself provides is done by
// enumerator.Settings.Validate (spec.md §7's "Settings invalid" kind) —
// viper is a loader here, not a validator.
package config
