package crn

import (
	"strconv"
	"strings"

	"github.com/dnastrand/geoenum/species"
)

// String renders the CRN as the textual format of spec.md §6: a species
// table with synthetic names, followed by reactions printed as
// "A + B ->{r} C + D" or, for a compressed reversible pair,
// "A + B {r_bwd}<->{r_fwd} C + D".
func (c *CRN) String() string {
	var b strings.Builder
	b.WriteString("SPECIES:\n")
	for _, s := range c.order {
		b.WriteString(c.SpeciesName(s))
		b.WriteString(" = ")
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	b.WriteString("\nREACTIONS:\n")
	for _, r := range c.Reactions {
		b.WriteString(c.formatReaction(r))
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteText is an alias for String, named to match the CLI's --format
// text contract.
func (c *CRN) WriteText() string { return c.String() }

func (c *CRN) formatReaction(r *Reaction) string {
	lhs := c.formatSpeciesList(r.Reactants)
	rhs := c.formatSpeciesList(r.Products)
	if r.BwdRate == nil {
		return lhs + " ->{" + formatRate(r.FwdRate) + "} " + rhs
	}
	return lhs + " {" + formatRate(*r.BwdRate) + "}<->{" + formatRate(r.FwdRate) + "} " + rhs
}

func (c *CRN) formatSpeciesList(ss []*species.Species) string {
	names := make([]string, len(ss))
	for i, s := range ss {
		names[i] = c.SpeciesName(s)
	}
	return strings.Join(names, " + ")
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'g', -1, 64)
}
