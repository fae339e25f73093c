package enumerator

import (
	"github.com/dnastrand/geoenum/checker"
	"github.com/dnastrand/geoenum/crn"
	"github.com/dnastrand/geoenum/species"
	"github.com/dnastrand/geoenum/strandgraph"
	"github.com/dnastrand/geoenum/xlog"
)

// Enumerator is the geometric reaction-network enumerator of spec.md
// §4.5: detailed-mode transition discovery gated by a sampling-based
// plausibility oracle, with a memoizing cache keyed by canonical species.
type Enumerator struct {
	settings Settings
	checker  *checker.Checker
	cache    *plausibilityCache
	log      *xlog.Logger
}

// New validates settings and constructs an Enumerator backed by cc.
// Returns a fatal error (satisfying geoenum.FatalError) if settings is
// invalid.
func New(settings Settings, cc *checker.Checker) (*Enumerator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Enumerator{settings: settings, checker: cc, cache: newPlausibilityCache()}, nil
}

// WithLogger attaches l so Enumerate reports its progress through it;
// nil disables logging (the default).
func (e *Enumerator) WithLogger(l *xlog.Logger) *Enumerator {
	e.log = l
	return e
}

func (e *Enumerator) rateFor(kind crn.Kind) float64 {
	switch kind {
	case crn.Binding:
		return e.settings.Rate.Bind
	case crn.Unbinding:
		return e.settings.Rate.Unbind
	case crn.ThreeWay:
		return e.settings.Rate.Displace
	case crn.FourWay:
		return e.settings.Rate.Displace
	default:
		return 0
	}
}

func (e *Enumerator) transitionsToReactions(reactants []*species.Species, ts []transition) []*crn.Reaction {
	out := make([]*crn.Reaction, 0, len(ts))
	for _, t := range ts {
		out = append(out, &crn.Reaction{
			Reactants: reactants,
			Products:  t.products,
			FwdRate:   e.rateFor(t.kind),
			Meta: crn.Metadata{
				Kind:         t.kind,
				EdgesAdded:   t.edgesAdded,
				EdgesRemoved: t.edgesRemoved,
			},
		})
	}
	return out
}

// unimolecularReactions computes every Reaction reachable from x alone
// (spec.md §4.5).
func (e *Enumerator) unimolecularReactions(x *species.Species) ([]*crn.Reaction, error) {
	ts, err := e.allUnimolecularTransitions(x.Graph())
	if err != nil {
		return nil, err
	}
	return e.transitionsToReactions([]*species.Species{x}, ts), nil
}

// bimolecularReactions computes every binding Reaction reachable when x is
// paired with y (spec.md §4.5).
func (e *Enumerator) bimolecularReactions(x, y *species.Species) ([]*crn.Reaction, error) {
	composed := x.Graph().Compose(y.Graph())
	ts, err := e.allBindingTransitions(composed)
	if err != nil {
		return nil, err
	}
	return e.transitionsToReactions([]*species.Species{x, y}, ts), nil
}

func sortedPairKey(a, b *species.Species) string {
	if a.Less(b) {
		return a.Key() + "|" + b.Key()
	}
	return b.Key() + "|" + a.Key()
}

func reactionKey(r *crn.Reaction) string {
	out := r.Meta.Kind.String() + ":"
	for _, s := range r.Reactants {
		out += s.Key() + ","
	}
	out += "->"
	for _, s := range r.Products {
		out += s.Key() + ","
	}
	out += "+" + edgesKey(strandgraph.SortEdges(r.Meta.EdgesAdded))
	out += "-" + edgesKey(strandgraph.SortEdges(r.Meta.EdgesRemoved))
	return out
}

// Enumerate runs the closure loop of spec.md §4.5 from the given initial
// species and returns the resulting CRN (already compressed). Returns a
// complexSizeError (fatal) if enumeration discovers a species exceeding
// Settings.MaxComplexSize.
func (e *Enumerator) Enumerate(initial []*species.Species) (*crn.CRN, error) {
	toProcess := append([]*species.Species(nil), initial...)
	var processed []*species.Species
	pairsProcessed := map[string]bool{}
	var allReactions []*crn.Reaction
	reactionSeen := map[string]bool{}

	seenSpecies := map[string]bool{}
	for _, s := range toProcess {
		seenSpecies[s.Key()] = true
	}

	for len(toProcess) > 0 {
		x := toProcess[0]
		toProcess = toProcess[1:]

		ok, _, err := e.cache.plausible(e.checker, x.Graph())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if x.NumVertices() > e.settings.MaxComplexSize {
			if e.log != nil {
				e.log.ComplexSizeExceeded(x.Key(), x.NumVertices(), e.settings.MaxComplexSize)
			}
			return nil, &complexSizeError{species: x, size: x.NumVertices(), max: e.settings.MaxComplexSize}
		}
		if e.log != nil {
			e.log.SpeciesProcessed(x.Key(), x.NumVertices())
		}

		newReactions, err := e.unimolecularReactions(x)
		if err != nil {
			return nil, err
		}
		for _, y := range processed {
			pairKey := sortedPairKey(x, y)
			if pairsProcessed[pairKey] {
				continue
			}
			pairsProcessed[pairKey] = true
			bimol, err := e.bimolecularReactions(x, y)
			if err != nil {
				return nil, err
			}
			newReactions = append(newReactions, bimol...)
		}

		var possiblyNew []*species.Species
		for _, r := range newReactions {
			key := reactionKey(r)
			if reactionSeen[key] {
				continue
			}
			reactionSeen[key] = true
			allReactions = append(allReactions, r)
			possiblyNew = append(possiblyNew, r.Products...)
			if e.log != nil {
				e.log.ReactionEmitted(r.Meta.Kind.String(), len(r.Reactants), len(r.Products))
			}
		}

		processed = append(processed, x)
		for _, pns := range possiblyNew {
			if !seenSpecies[pns.Key()] {
				seenSpecies[pns.Key()] = true
				toProcess = append(toProcess, pns)
			}
		}
	}

	return crn.New(processed, allReactions)
}
