package enumerator

import (
	"github.com/dnastrand/geoenum/crn"
	"github.com/dnastrand/geoenum/species"
	"github.com/dnastrand/geoenum/strandgraph"
)

// transition is one admitted candidate: the edges it adds/removes from
// the starting graph, the products of its resulting connected components,
// and the rate it fires at (spec.md §4.5).
type transition struct {
	kind         crn.Kind
	edgesAdded   []strandgraph.Edge
	edgesRemoved []strandgraph.Edge
	products     []*species.Species
}

// componentsPlausible splits sg into connected components and reports
// whether every one passes the plausibility oracle, per spec.md §4.5's
// "submitted to the plausibility oracle on each resulting connected
// component" (not just the first, which an early return in the reference
// implementation's checkPlausibility effectively checked — see
// DESIGN.md).
func (e *Enumerator) componentsPlausible(sg *strandgraph.StrandGraph) (bool, []*species.Species, error) {
	comps := sg.ConnectedComponents()
	products := make([]*species.Species, 0, len(comps))
	for _, comp := range comps {
		ok, sp, err := e.cache.plausible(e.checker, comp)
		if err != nil {
			return false, nil, err
		}
		if !ok {
			return false, nil, nil
		}
		products = append(products, sp)
	}
	return true, products, nil
}

// allBindingTransitions proposes adding each admissible, not-yet-current
// edge whose endpoints are both unbound (spec.md §4.5's BINDING rule).
// sg may be a single species or a Compose of two, for intra- or
// inter-molecular binding respectively.
func (e *Enumerator) allBindingTransitions(sg *strandgraph.StrandGraph) ([]transition, error) {
	bound := map[strandgraph.Site]struct{}{}
	for _, s := range sg.CurrentlyBoundSites() {
		bound[s] = struct{}{}
	}
	var out []transition
	for _, a := range sg.PossibleNewEdges() {
		if _, ok := bound[a.A]; ok {
			continue
		}
		if _, ok := bound[a.B]; ok {
			continue
		}
		next, err := sg.AddEdge(a)
		if err != nil {
			return nil, err
		}
		ok, products, err := e.componentsPlausible(next)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, transition{
			kind:       crn.Binding,
			edgesAdded: []strandgraph.Edge{a},
			products:   products,
		})
	}
	return out, nil
}

// allUnbindingTransitions proposes removing each current toehold edge
// (spec.md §4.5's UNBINDING rule). No plausibility re-check: removing an
// edge only removes constraints, so a plausible predecessor stays
// plausible.
func (e *Enumerator) allUnbindingTransitions(sg *strandgraph.StrandGraph) ([]transition, error) {
	var out []transition
	for _, edge := range sg.ToeholdEdges() {
		if _, bound := sg.Current[edge]; !bound {
			continue
		}
		next, err := sg.RemoveEdge(edge)
		if err != nil {
			return nil, err
		}
		comps := next.ConnectedComponents()
		products := make([]*species.Species, 0, len(comps))
		for _, comp := range comps {
			sp, err := species.FromStrandGraph(comp)
			if err != nil {
				return nil, err
			}
			products = append(products, sp)
		}
		out = append(out, transition{
			kind:         crn.Unbinding,
			edgesRemoved: []strandgraph.Edge{edge},
			products:     products,
		})
	}
	return out, nil
}

// allThreeWayMigrationTransitions implements spec.md §4.5's adjacent
// three-way migration rule: for each current edge (s1,s2) and each
// currently unbound site s in the same component as s2, with (s,s2)
// admissible, propose removing (s1,s2) and adding (s,s2).
func (e *Enumerator) allThreeWayMigrationTransitions(sg *strandgraph.StrandGraph) ([]transition, error) {
	admissible := map[strandgraph.Edge]struct{}{}
	for _, a := range sg.PossibleNewEdges() {
		admissible[a] = struct{}{}
	}
	var out []transition
	for _, edgeToRemove := range sg.CurrentEdges() {
		for _, pair := range [][2]strandgraph.Site{{edgeToRemove.A, edgeToRemove.B}, {edgeToRemove.B, edgeToRemove.A}} {
			s2 := pair[1]
			for _, s := range sg.CurrentlyUnboundSites() {
				edgeToAdd := strandgraph.NewEdge(s, s2)
				if _, ok := admissible[edgeToAdd]; !ok {
					continue
				}
				if !sg.SameSpecies(s, s2) {
					continue
				}
				removed, err := sg.RemoveEdge(edgeToRemove)
				if err != nil {
					return nil, err
				}
				next, err := removed.AddEdge(edgeToAdd)
				if err != nil {
					return nil, err
				}
				ok, products, err := e.componentsPlausible(next)
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
				out = append(out, transition{
					kind:         crn.ThreeWay,
					edgesAdded:   []strandgraph.Edge{edgeToAdd},
					edgesRemoved: []strandgraph.Edge{edgeToRemove},
					products:     products,
				})
			}
		}
	}
	return out, nil
}

// allFourWayMigrationTransitions implements spec.md §4.5's Holliday-
// junction pattern: for each current edge (s1,s2) in each orientation,
// s1'=3'-adjacent(s1), s2'=5'-adjacent(s2), s3=partner(s1'),
// s3'=3'-adjacent(s3), s4=partner(s3'), s4'=3'-adjacent(s4); admitted iff
// all exist and partner(s4')=s2', and both new edges (s1',s2') and
// (s3,s4') are admissible. Removes (s1',s3) and (s2',s4').
func (e *Enumerator) allFourWayMigrationTransitions(sg *strandgraph.StrandGraph) ([]transition, error) {
	admissible := map[strandgraph.Edge]struct{}{}
	for _, a := range sg.PossibleNewEdges() {
		admissible[a] = struct{}{}
	}
	seen := map[string]bool{}
	var out []transition
	for _, edge := range sg.CurrentEdges() {
		for _, pair := range [][2]strandgraph.Site{{edge.A, edge.B}, {edge.B, edge.A}} {
			s1, s2 := pair[0], pair[1]
			s1pr, ok := sg.ThreePrimeAdjacentSite(s1)
			if !ok {
				continue
			}
			s2pr, ok := sg.FivePrimeAdjacentSite(s2)
			if !ok {
				continue
			}
			s3, ok := sg.GetBindingPartner(s1pr)
			if !ok {
				continue
			}
			s3pr, ok := sg.ThreePrimeAdjacentSite(s3)
			if !ok {
				continue
			}
			s4, ok := sg.GetBindingPartner(s3pr)
			if !ok {
				continue
			}
			s4pr, ok := sg.ThreePrimeAdjacentSite(s4)
			if !ok {
				continue
			}
			partner, ok := sg.GetBindingPartner(s4pr)
			if !ok || partner != s2pr {
				continue
			}
			firstAdd := strandgraph.NewEdge(s1pr, s2pr)
			secondAdd := strandgraph.NewEdge(s3, s4pr)
			if _, ok := admissible[firstAdd]; !ok {
				continue
			}
			if _, ok := admissible[secondAdd]; !ok {
				continue
			}
			firstRemove := strandgraph.NewEdge(s1pr, s3)
			secondRemove := strandgraph.NewEdge(s2pr, s4pr)

			added := strandgraph.SortEdges([]strandgraph.Edge{firstAdd, secondAdd})
			removed := strandgraph.SortEdges([]strandgraph.Edge{firstRemove, secondRemove})
			involved := strandgraph.SortEdges(append(append([]strandgraph.Edge{}, added...), removed...))
			dedupKey := edgesKey(involved)
			if seen[dedupKey] {
				continue
			}
			seen[dedupKey] = true

			removed1, err := sg.RemoveEdge(firstRemove)
			if err != nil {
				return nil, err
			}
			removed2, err := removed1.RemoveEdge(secondRemove)
			if err != nil {
				return nil, err
			}
			added1, err := removed2.AddEdge(firstAdd)
			if err != nil {
				return nil, err
			}
			next, err := added1.AddEdge(secondAdd)
			if err != nil {
				return nil, err
			}
			ok2, products, err := e.componentsPlausible(next)
			if err != nil {
				return nil, err
			}
			if !ok2 {
				continue
			}
			out = append(out, transition{
				kind:         crn.FourWay,
				edgesAdded:   added,
				edgesRemoved: removed,
				products:     products,
			})
		}
	}
	return out, nil
}

func edgesKey(es []strandgraph.Edge) string {
	out := ""
	for _, e := range es {
		out += e.String() + "|"
	}
	return out
}

// allUnimolecularTransitions computes every BINDING/UNBINDING/THREE_WAY/
// FOUR_WAY transition possible from sg alone.
func (e *Enumerator) allUnimolecularTransitions(sg *strandgraph.StrandGraph) ([]transition, error) {
	var all []transition
	for _, fn := range []func(*strandgraph.StrandGraph) ([]transition, error){
		e.allBindingTransitions,
		e.allUnbindingTransitions,
		e.allThreeWayMigrationTransitions,
		e.allFourWayMigrationTransitions,
	} {
		ts, err := fn(sg)
		if err != nil {
			return nil, err
		}
		all = append(all, ts...)
	}
	return all, nil
}
