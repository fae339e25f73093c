package enumerator

import (
	"github.com/dnastrand/geoenum/checker"
	"github.com/dnastrand/geoenum/species"
	"github.com/dnastrand/geoenum/strandgraph"
)

// plausibilityCache memoizes the constraint checker's verdict by canonical
// species key (spec.md §4.5: "keyed by canonical species; hit returns the
// cached verdict without re-sampling").
type plausibilityCache struct {
	verdicts map[string]bool
}

func newPlausibilityCache() *plausibilityCache {
	return &plausibilityCache{verdicts: map[string]bool{}}
}

// plausible reports whether sg (which must be connected) is geometrically
// plausible, consulting and then populating the cache.
func (c *plausibilityCache) plausible(cc *checker.Checker, sg *strandgraph.StrandGraph) (bool, *species.Species, error) {
	sp, err := species.FromStrandGraph(sg)
	if err != nil {
		return false, nil, err
	}
	if v, ok := c.verdicts[sp.Key()]; ok {
		return v, sp, nil
	}
	ok, _ := cc.IsPlausible(sg)
	c.verdicts[sp.Key()] = ok
	return ok, sp, nil
}
