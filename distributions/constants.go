package distributions

// Physical constants of spec.md §4.3, all in nanometers unless noted.
const (
	// DSLength is the rise per nucleotide of double-stranded DNA, nm.
	DSLength = 0.34
	// SSLength is the contour-length contribution per nucleotide of
	// single-stranded DNA, nm.
	SSLength = 0.68
	// DSDNAPersistenceLength is the persistence length of dsDNA, nm.
	DSDNAPersistenceLength = 39.0
	// SSDNAPersistenceLength is the persistence length of ssDNA, nm.
	SSDNAPersistenceLength = 2.0
	// HelixThreeTurnsLength is the contour length of three helical turns
	// of dsDNA, nm.
	HelixThreeTurnsLength = 10.88
	// ProbToNM converts a binding-probability-derived rate into nM.
	ProbToNM = 1_660_577_881
	// SamplingTrials is the number of coordinate-assignment attempts the
	// checker makes before declaring a strand graph implausible.
	SamplingTrials = 1000
	// NickedAngleUpperBoundDeg is the maximum angle, in degrees, a nicked
	// junction's two incident duplexes may subtend.
	NickedAngleUpperBoundDeg = 120.0
	// NickedFlag gates the angle-constraint check entirely; false would
	// disable nicked-angle enforcement, left on per spec.md §4.3.
	NickedFlag = true
)
