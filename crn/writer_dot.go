package crn

import (
	"fmt"
	"strings"
)

// WriteDOT renders the CRN as a Graphviz digraph: one node per species
// (labeled with its process notation) and one node per reaction (labeled
// with its rate(s)), with edges from reactants into the reaction node and
// from the reaction node to products. This is the species/reaction graph,
// not a strand-level rendering (see doc.go).
func (c *CRN) WriteDOT() string {
	var b strings.Builder
	b.WriteString("digraph CRN {\n")
	b.WriteString("  rankdir=LR;\n")

	for _, s := range c.order {
		fmt.Fprintf(&b, "  %s [shape=ellipse, label=%q];\n", c.SpeciesName(s), s.String())
	}

	for i, r := range c.Reactions {
		rxnNode := fmt.Sprintf("rxn_%d", i)
		label := formatRate(r.FwdRate)
		if r.BwdRate != nil {
			label = formatRate(*r.BwdRate) + " / " + label
		}
		fmt.Fprintf(&b, "  %s [shape=box, label=%q];\n", rxnNode, label)
		for _, s := range r.Reactants {
			fmt.Fprintf(&b, "  %s -> %s;\n", c.SpeciesName(s), rxnNode)
		}
		for _, s := range r.Products {
			fmt.Fprintf(&b, "  %s -> %s;\n", rxnNode, c.SpeciesName(s))
		}
		if r.BwdRate != nil {
			for _, s := range r.Products {
				fmt.Fprintf(&b, "  %s -> %s [style=dashed];\n", c.SpeciesName(s), rxnNode)
			}
			for _, s := range r.Reactants {
				fmt.Fprintf(&b, "  %s -> %s [style=dashed];\n", rxnNode, c.SpeciesName(s))
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}
