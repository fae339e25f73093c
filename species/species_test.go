package species_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnastrand/geoenum/domain"
	"github.com/dnastrand/geoenum/species"
	"github.com/dnastrand/geoenum/strandgraph"
)

func d(name string, toehold, complement bool, bond string) domain.Domain {
	return domain.Domain{Name: name, Toehold: toehold, Complement: complement, Bond: bond}
}

func TestFromStrandGraph_RejectsDisconnected(t *testing.T) {
	x, _ := domain.NewStrand([]domain.Domain{d("x", false, false, "")})
	xStar, _ := domain.NewStrand([]domain.Domain{d("x", false, true, "")})
	p := domain.NewProcess([]domain.Strand{x, xStar})
	lm := domain.LengthMap{"x": domain.LengthEntry{Length: 20}}

	sg, err := strandgraph.FromProcess(p, lm)
	require.NoError(t, err)

	_, err = species.FromStrandGraph(sg)
	require.Error(t, err)
	assert.ErrorIs(t, err, species.ErrNotConnected)

	type fataler interface{ Fatal() bool }
	f, ok := err.(fataler)
	require.True(t, ok)
	assert.True(t, f.Fatal())
}

func TestSpecies_EqualByCanonicalForm(t *testing.T) {
	a, _ := domain.NewStrand([]domain.Domain{d("x", false, false, "i")})
	b, _ := domain.NewStrand([]domain.Domain{d("x", false, true, "i")})
	lm := domain.LengthMap{"x": domain.LengthEntry{Length: 20}}

	sp1, err := species.FromProcess(domain.NewProcess([]domain.Strand{a, b}), lm)
	require.NoError(t, err)
	sp2, err := species.FromProcess(domain.NewProcess([]domain.Strand{b, a}), lm)
	require.NoError(t, err)

	assert.True(t, sp1.Equal(sp2))
	assert.Equal(t, sp1.Key(), sp2.Key())
}

func TestSpecies_AsProcess_AssignsDeterministicBondLabels(t *testing.T) {
	a, _ := domain.NewStrand([]domain.Domain{d("x", false, false, "")})
	b, _ := domain.NewStrand([]domain.Domain{d("x", false, true, "")})
	lm := domain.LengthMap{"x": domain.LengthEntry{Length: 20}}
	sg, err := strandgraph.FromProcess(domain.NewProcess([]domain.Strand{a, b}), lm)
	require.NoError(t, err)
	bound, err := sg.AddEdge(sg.PossibleNewEdges()[0])
	require.NoError(t, err)

	sp, err := species.FromStrandGraph(bound)
	require.NoError(t, err)
	proc := sp.AsProcess()
	for _, s := range proc.Strands {
		assert.Equal(t, "i1", s.Domains[0].Bond)
	}
}

func TestListFromProcess_SplitsComponents(t *testing.T) {
	x, _ := domain.NewStrand([]domain.Domain{d("x", false, false, "")})
	y, _ := domain.NewStrand([]domain.Domain{d("y", false, false, "")})
	lm := domain.LengthMap{"x": domain.LengthEntry{Length: 20}, "y": domain.LengthEntry{Length: 20}}

	list, err := species.ListFromProcess(domain.NewProcess([]domain.Strand{x, y}), lm)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
