package crn

import (
	"sort"

	"github.com/dnastrand/geoenum/species"
	"github.com/dnastrand/geoenum/strandgraph"
)

// Kind discriminates the transition that produced a Reaction (spec.md
// §9's sum-typed transitions).
type Kind int

const (
	Binding Kind = iota
	Unbinding
	ThreeWay
	FourWay
)

func (k Kind) String() string {
	switch k {
	case Binding:
		return "BINDING"
	case Unbinding:
		return "UNBINDING"
	case ThreeWay:
		return "THREE_WAY"
	case FourWay:
		return "FOUR_WAY"
	default:
		return "UNKNOWN"
	}
}

// Metadata records which transition produced a Reaction and the edges it
// added/removed, per spec.md §3's Reaction.metadata.
type Metadata struct {
	Kind          Kind
	EdgesAdded    []strandgraph.Edge
	EdgesRemoved  []strandgraph.Edge
}

// Reaction is one discovered transition: reactants to products at a
// forward rate, with an optional backward rate once compress() has merged
// in a reverse reaction (spec.md §3).
type Reaction struct {
	Reactants []*species.Species
	Products  []*species.Species
	FwdRate   float64
	BwdRate   *float64
	Meta      Metadata
}

// speciesMultisetKey renders a species slice as a sorted, comma-joined
// key list, giving order-independent multiset equality a cheap
// comparison key.
func speciesMultisetKey(ss []*species.Species) string {
	keys := make([]string, len(ss))
	for i, s := range ss {
		keys[i] = s.Key()
	}
	sort.Strings(keys)
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ","
		}
		out += k
	}
	return out
}

// sameMultiset reports whether a and b contain the same species with the
// same multiplicities, ignoring order.
func sameMultiset(a, b []*species.Species) bool {
	return speciesMultisetKey(a) == speciesMultisetKey(b)
}

// listOfSpeciesInvolved returns every species appearing in r, reactants
// then products.
func (r *Reaction) listOfSpeciesInvolved() []*species.Species {
	out := make([]*species.Species, 0, len(r.Reactants)+len(r.Products))
	out = append(out, r.Reactants...)
	out = append(out, r.Products...)
	return out
}

// sameForward reports whether r and other have identical reactant and
// product multisets in the same direction.
func (r *Reaction) sameForward(other *Reaction) bool {
	return sameMultiset(r.Reactants, other.Reactants) && sameMultiset(r.Products, other.Products)
}

// isReverseOf reports whether other's reactants are r's products and
// vice versa.
func (r *Reaction) isReverseOf(other *Reaction) bool {
	return sameMultiset(r.Reactants, other.Products) && sameMultiset(r.Products, other.Reactants)
}

// tryCombineWith attempts to merge other into r (spec.md §3's compress()):
// an exact duplicate is dropped, and a reverse reaction is folded in as a
// backward rate on r. Returns the combined reaction and true on success,
// or (nil, false) if r and other are unrelated.
func (r *Reaction) tryCombineWith(other *Reaction) (*Reaction, bool) {
	if r.sameForward(other) {
		return r, true
	}
	if r.isReverseOf(other) && r.BwdRate == nil {
		rate := other.FwdRate
		merged := *r
		merged.BwdRate = &rate
		return &merged, true
	}
	return nil, false
}
