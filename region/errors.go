package region

import "errors"

// ErrNoJunctions is returned when a strand graph with no vertices is passed
// to FromStrandGraph; there is no region graph to derive.
var ErrNoJunctions = errors.New("region: strand graph has no vertices")
