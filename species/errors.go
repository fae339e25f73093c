package species

import "errors"

// ErrNotConnected indicates an attempt to build a Species from a
// disconnected strand graph, spec.md §7's "Non-connected species
// constructed" fatal error kind. The enumerator must split a composed
// graph into connected components (strandgraph.(*StrandGraph).
// ConnectedComponents) before constructing species from it.
var ErrNotConnected = errors.New("species: strand graph is not connected")

// Fatal reports true: a caller attempting to build a Species from a
// disconnected graph has violated an invariant the enumerator is supposed
// to guarantee, and spec.md §7 classifies this as fatal, not recoverable.
func (e *notConnectedError) Fatal() bool { return true }

type notConnectedError struct{ inner error }

func (e *notConnectedError) Error() string { return e.inner.Error() }
func (e *notConnectedError) Unwrap() error { return e.inner }
