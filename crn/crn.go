package crn

import (
	"fmt"

	"github.com/dnastrand/geoenum/species"
)

// CRN is the chemical reaction network of spec.md §3: an ordered species
// set with stable synthetic names (sp_0, sp_1, ...) and a compressed
// reaction list.
type CRN struct {
	order   []*species.Species
	names   map[string]string // species key -> "sp_N"
	byName  map[string]*species.Species
	Reactions []*Reaction
}

// New constructs a CRN from speciesList and reactions, assigns synthetic
// names in list order, and compresses the reaction list (spec.md §3).
// Returns ErrUnknownSpecies if any reaction references a species not in
// speciesList.
func New(speciesList []*species.Species, reactions []*Reaction) (*CRN, error) {
	c := &CRN{
		order:  append([]*species.Species(nil), speciesList...),
		names:  map[string]string{},
		byName: map[string]*species.Species{},
	}
	for i, s := range c.order {
		name := fmt.Sprintf("sp_%d", i)
		c.names[s.Key()] = name
		c.byName[name] = s
	}
	for _, r := range reactions {
		for _, s := range r.listOfSpeciesInvolved() {
			if _, ok := c.names[s.Key()]; !ok {
				return nil, fmt.Errorf("%s: %w", s.Key(), ErrUnknownSpecies)
			}
		}
	}
	c.Reactions = append([]*Reaction(nil), reactions...)
	c.Compress()
	return c, nil
}

// Species returns the CRN's species in assigned-name order.
func (c *CRN) Species() []*species.Species { return c.order }

// SpeciesName returns s's synthetic name ("sp_N"), or "" if s is not in
// the CRN.
func (c *CRN) SpeciesName(s *species.Species) string { return c.names[s.Key()] }

// SpeciesByName returns the species named name, or nil.
func (c *CRN) SpeciesByName(name string) *species.Species { return c.byName[name] }

// Compress merges identical reactions and folds reverse pairs into a
// single bidirectional record (spec.md §3's compress()). Idempotent:
// running it twice equals running it once.
func (c *CRN) Compress() {
	merged := make([]*Reaction, 0, len(c.Reactions))
	for _, r := range c.Reactions {
		combinedInto := -1
		for i, m := range merged {
			if x, ok := m.tryCombineWith(r); ok {
				merged[i] = x
				combinedInto = i
				break
			}
		}
		if combinedInto == -1 {
			merged = append(merged, r)
		}
	}
	c.Reactions = merged
}
