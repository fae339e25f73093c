package domain

import "fmt"

// Domain is the identity (name, is_toehold, is_complemented, bond) of
// spec.md §3. Bond is the empty string when the domain is currently
// unbound; any non-empty value is an opaque label shared by exactly one
// complementary partner in a well-formed Process.
type Domain struct {
	Name       string
	Toehold    bool
	Complement bool
	Bond       string
}

// Bound reports whether d carries a bond label.
func (d Domain) Bound() bool { return d.Bond != "" }

// ComplementaryTo reports whether d and other could hybridize: same base
// name, and exactly one of the pair is marked complemented.
func (d Domain) ComplementaryTo(other Domain) bool {
	return d.Name == other.Name && d.Complement != other.Complement
}

// WithoutBond returns a copy of d with no bond label, preserving the base
// domain type (name/toehold/complement). Mirrors Strand.strandType in the
// original implementation.
func (d Domain) WithoutBond() Domain {
	d.Bond = ""
	return d
}

// String renders d using the surface syntax of spec.md §6:
// name ['^'] ['*'] ['!' bond].
func (d Domain) String() string {
	s := d.Name
	if d.Toehold {
		s += "^"
	}
	if d.Complement {
		s += "*"
	}
	if d.Bond != "" {
		s += "!" + d.Bond
	}
	return s
}

// Strand is an ordered, non-empty sequence of domains (5'->3').
type Strand struct {
	Domains []Domain
}

// NewStrand validates and constructs a Strand.
func NewStrand(ds []Domain) (Strand, error) {
	if len(ds) == 0 {
		return Strand{}, ErrEmptyStrand
	}
	cp := make([]Domain, len(ds))
	copy(cp, ds)
	return Strand{Domains: cp}, nil
}

// Len returns the number of domains (and sites) on the strand.
func (s Strand) Len() int { return len(s.Domains) }

// String renders s using the surface syntax '<' d1 ' ' d2 ... '>'.
func (s Strand) String() string {
	out := "<"
	for i, d := range s.Domains {
		if i != 0 {
			out += " "
		}
		out += d.String()
	}
	out += ">"
	return out
}

// Equal reports structural equality of two strands (order-sensitive,
// including bond labels).
func (s Strand) Equal(other Strand) bool {
	if len(s.Domains) != len(other.Domains) {
		return false
	}
	for i := range s.Domains {
		if s.Domains[i] != other.Domains[i] {
			return false
		}
	}
	return true
}

// Process is an unordered parallel composition of strands.
type Process struct {
	Strands []Strand
}

// NewProcess constructs a Process from a slice of strands without checking
// well-formedness; call WellFormed (or Validate) before using it to build a
// StrandGraph.
func NewProcess(strands []Strand) Process {
	cp := make([]Strand, len(strands))
	copy(cp, strands)
	return Process{Strands: cp}
}

// String renders p using the surface syntax of spec.md §6.
func (p Process) String() string {
	if len(p.Strands) == 1 {
		return p.Strands[0].String()
	}
	out := "("
	for i, s := range p.Strands {
		if i != 0 {
			out += " | "
		}
		out += s.String()
	}
	out += ")"
	return out
}

// bondOccurrence records one occurrence of a bond label for well-formedness
// checking.
type bondOccurrence struct {
	strandIdx, domainIdx int
	d                    Domain
}

// WellFormed reports whether every bond label in p occurs exactly twice, on
// complementary domains, per spec.md §3's Process well-formedness rule.
func (p Process) WellFormed() bool {
	return p.Validate() == nil
}

// Validate is WellFormed with a diagnostic error describing one
// violation: bond labels are checked in sorted label order, and the first
// offending label is reported.
func (p Process) Validate() error {
	occurrences := map[string][]bondOccurrence{}
	for si, s := range p.Strands {
		for di, d := range s.Domains {
			if d.Bond == "" {
				continue
			}
			occurrences[d.Bond] = append(occurrences[d.Bond], bondOccurrence{si, di, d})
		}
	}
	// Deterministic iteration: sort keys.
	keys := make([]string, 0, len(occurrences))
	for k := range occurrences {
		keys = append(keys, k)
	}
	sortStrings(keys)
	for _, k := range keys {
		occs := occurrences[k]
		if len(occs) != 2 {
			return fmt.Errorf("bond %q: %w", k, ErrBondNotPaired)
		}
		if !occs[0].d.ComplementaryTo(occs[1].d) {
			return fmt.Errorf("bond %q: %w", k, ErrBondNotComplementary)
		}
	}
	return nil
}

// sortStrings is a tiny insertion sort to avoid importing sort for a single
// call site used only for deterministic error messages.
func sortStrings(ss []string) {
	for i := 1; i < len(ss); i++ {
		for j := i; j > 0 && ss[j-1] > ss[j]; j-- {
			ss[j-1], ss[j] = ss[j], ss[j-1]
		}
	}
}

// LengthEntry is one domain-length declaration: its nucleotide length and
// whether it was declared as a toehold domain.
type LengthEntry struct {
	Length  int
	Toehold bool
}

// LengthMap is the out-of-band name -> length mapping required by spec.md
// §3: "length defined for every domain appearing in any strand."
type LengthMap map[string]LengthEntry

// Lookup returns the declared length for a domain name.
func (m LengthMap) Lookup(name string) (LengthEntry, bool) {
	e, ok := m[name]
	return e, ok
}

// ValidateAgainst reports ErrMissingLength (wrapped with the domain name) if
// any domain occurring in p has no entry in m.
func (m LengthMap) ValidateAgainst(p Process) error {
	for _, s := range p.Strands {
		for _, d := range s.Domains {
			if _, ok := m[d.Name]; !ok {
				return fmt.Errorf("domain %q: %w", d.Name, ErrMissingLength)
			}
		}
	}
	return nil
}
