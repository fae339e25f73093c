package domain

import "errors"

// Sentinel errors for the domain package.
var (
	// ErrEmptyStrand indicates a Strand was constructed with zero domains.
	// Strands are required to be non-empty per the Strand grammar.
	ErrEmptyStrand = errors.New("domain: strand has no domains")

	// ErrBondNotPaired indicates a bond label appears a number of times other
	// than exactly two within a Process.
	ErrBondNotPaired = errors.New("domain: bond label does not occur exactly twice")

	// ErrBondNotComplementary indicates a bond label's two occurrences are on
	// domains that are not complementary (names differ, or complement flags
	// do not differ).
	ErrBondNotComplementary = errors.New("domain: bond label links non-complementary domains")

	// ErrMissingLength indicates a domain name appearing in a Strand has no
	// entry in the LengthMap.
	ErrMissingLength = errors.New("domain: no declared length for domain")
)
