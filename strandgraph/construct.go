package strandgraph

import (
	"fmt"

	"github.com/dnastrand/geoenum/domain"
)

// FromProcess builds the initial StrandGraph for a well-formed Process, per
// spec.md §3/§6: one vertex per strand, admissible edges over every pair of
// complementary base domains (same or distinct strands), toehold edges
// where both sides are toeholds, and current edges recovered from the
// Process's existing bond labels.
func FromProcess(p domain.Process, lengths domain.LengthMap) (*StrandGraph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := lengths.ValidateAgainst(p); err != nil {
		return nil, err
	}

	vertices := make([]VertexInstance, len(p.Strands))
	for i, s := range p.Strands {
		vertices[i] = VertexInstance{Strand: s, InstanceID: newInstanceID()}
	}

	admissible := EdgeSet{}
	toehold := EdgeSet{}
	bondSites := map[string][]Site{}

	sites := make([]Site, 0)
	for vi, v := range vertices {
		for di := range v.Strand.Domains {
			sites = append(sites, Site{Vertex: vi, Index: di})
		}
	}

	for i := 0; i < len(sites); i++ {
		di := domainOf(vertices, sites[i])
		if di.Bond != "" {
			bondSites[di.Bond] = append(bondSites[di.Bond], sites[i])
		}
		for j := i + 1; j < len(sites); j++ {
			if sites[i].Vertex == sites[j].Vertex && sites[i].Index == sites[j].Index {
				continue
			}
			dj := domainOf(vertices, sites[j])
			if !di.ComplementaryTo(dj) {
				continue
			}
			e := NewEdge(sites[i], sites[j])
			admissible[e] = struct{}{}
			if di.Toehold && dj.Toehold {
				toehold[e] = struct{}{}
			}
		}
	}

	current := EdgeSet{}
	for bond, pair := range bondSites {
		if len(pair) != 2 {
			return nil, fmt.Errorf("bond %q: %w", bond, ErrEdgeNotAdmissible)
		}
		e := NewEdge(pair[0], pair[1])
		if _, ok := admissible[e]; !ok {
			return nil, fmt.Errorf("bond %q: %w", bond, ErrEdgeNotAdmissible)
		}
		current[e] = struct{}{}
	}

	return New(vertices, admissible, toehold, current, lengths)
}

func domainOf(vertices []VertexInstance, s Site) domain.Domain {
	return vertices[s.Vertex].Strand.Domains[s.Index]
}
