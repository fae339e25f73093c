package strandgraph

// Key returns the encode()-string of sg taken as-is, with no further
// relabeling. It is only a valid species identity when sg is already in
// canonical form (i.e. sg == sg.Canonical()); package species is the sole
// intended caller, immediately after calling Canonical.
func (sg *StrandGraph) Key() string { return sg.encode() }
