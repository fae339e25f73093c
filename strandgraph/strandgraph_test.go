package strandgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnastrand/geoenum/domain"
	"github.com/dnastrand/geoenum/strandgraph"
)

func d(name string, toehold, complement bool, bond string) domain.Domain {
	return domain.Domain{Name: name, Toehold: toehold, Complement: complement, Bond: bond}
}

func lengths(entries map[string]int) domain.LengthMap {
	m := domain.LengthMap{}
	for k, v := range entries {
		m[k] = domain.LengthEntry{Length: v}
	}
	return m
}

func mustStrand(t *testing.T, ds ...domain.Domain) domain.Strand {
	t.Helper()
	s, err := domain.NewStrand(ds)
	require.NoError(t, err)
	return s
}

func TestFromProcess_SimpleBindingPair(t *testing.T) {
	x := mustStrand(t, d("x", false, false, ""))
	xStar := mustStrand(t, d("x", false, true, ""))
	p := domain.NewProcess([]domain.Strand{x, xStar})

	sg, err := strandgraph.FromProcess(p, lengths(map[string]int{"x": 20}))
	require.NoError(t, err)

	assert.Len(t, sg.Admissible, 1)
	assert.Len(t, sg.Current, 0)
	assert.Len(t, sg.Toehold, 0)
	assert.False(t, sg.IsConnected())
}

func TestFromProcess_RejectsZeroNtLoop(t *testing.T) {
	s := mustStrand(t, d("t", true, false, "i"), d("t", true, true, "i"))
	p := domain.NewProcess([]domain.Strand{s})

	_, err := strandgraph.FromProcess(p, lengths(map[string]int{"t": 14}))
	require.Error(t, err)
	assert.ErrorIs(t, err, strandgraph.ErrZeroNucleotideLoop)
}

func TestAddEdge_RemoveEdge_RoundTrip(t *testing.T) {
	x := mustStrand(t, d("x", false, false, ""))
	xStar := mustStrand(t, d("x", false, true, ""))
	p := domain.NewProcess([]domain.Strand{x, xStar})
	sg, err := strandgraph.FromProcess(p, lengths(map[string]int{"x": 20}))
	require.NoError(t, err)

	edges := sg.PossibleNewEdges()
	require.Len(t, edges, 1)
	e := edges[0]

	bound, err := sg.AddEdge(e)
	require.NoError(t, err)
	assert.True(t, bound.IsConnected())
	assert.Len(t, bound.PossibleNewEdges(), 0)

	back, err := bound.RemoveEdge(e)
	require.NoError(t, err)
	assert.Equal(t, sg.CanonicalKey(), back.CanonicalKey())
}

func TestAddEdge_RejectsDoubleBinding(t *testing.T) {
	x := mustStrand(t, d("x", false, false, ""))
	xStar := mustStrand(t, d("x", false, true, ""))
	p := domain.NewProcess([]domain.Strand{x, xStar})
	sg, err := strandgraph.FromProcess(p, lengths(map[string]int{"x": 20}))
	require.NoError(t, err)

	e := sg.PossibleNewEdges()[0]
	bound, err := sg.AddEdge(e)
	require.NoError(t, err)

	_, err = bound.AddEdge(e)
	assert.ErrorIs(t, err, strandgraph.ErrEdgeAlreadyCurrent)
}

func TestConnectedComponents_SplitsIndependentStrands(t *testing.T) {
	x := mustStrand(t, d("x", false, false, ""))
	y := mustStrand(t, d("y", false, false, ""))
	p := domain.NewProcess([]domain.Strand{x, y})
	sg, err := strandgraph.FromProcess(p, lengths(map[string]int{"x": 20, "y": 20}))
	require.NoError(t, err)

	comps := sg.ConnectedComponents()
	require.Len(t, comps, 2)
	for _, c := range comps {
		assert.True(t, c.IsConnected())
		assert.Equal(t, 1, c.NumVertices())
	}
}

func TestCanonical_InvariantUnderVertexPermutation(t *testing.T) {
	a := mustStrand(t, d("x", false, false, "i"))
	b := mustStrand(t, d("x", false, true, "i"))
	p1 := domain.NewProcess([]domain.Strand{a, b})
	p2 := domain.NewProcess([]domain.Strand{b, a})

	lm := lengths(map[string]int{"x": 20})
	sg1, err := strandgraph.FromProcess(p1, lm)
	require.NoError(t, err)
	sg2, err := strandgraph.FromProcess(p2, lm)
	require.NoError(t, err)

	assert.Equal(t, sg1.CanonicalKey(), sg2.CanonicalKey())
}

func TestCanonical_Idempotent(t *testing.T) {
	a := mustStrand(t, d("x", false, false, ""))
	b := mustStrand(t, d("x", false, true, ""))
	p := domain.NewProcess([]domain.Strand{a, b})
	sg, err := strandgraph.FromProcess(p, lengths(map[string]int{"x": 20}))
	require.NoError(t, err)

	once := sg.Canonical()
	twice := once.Canonical()
	assert.Equal(t, once.CanonicalKey(), twice.CanonicalKey())
}

func TestThreePrimeFivePrimeAdjacency(t *testing.T) {
	s := mustStrand(t, d("t", true, false, ""), d("x", false, false, ""))
	p := domain.NewProcess([]domain.Strand{s})
	sg, err := strandgraph.FromProcess(p, lengths(map[string]int{"t": 5, "x": 20}))
	require.NoError(t, err)

	s0 := strandgraph.Site{Vertex: 0, Index: 0}
	s1 := strandgraph.Site{Vertex: 0, Index: 1}

	next, ok := sg.ThreePrimeAdjacentSite(s0)
	require.True(t, ok)
	assert.Equal(t, s1, next)

	_, ok = sg.ThreePrimeAdjacentSite(s1)
	assert.False(t, ok)

	prev, ok := sg.FivePrimeAdjacentSite(s1)
	require.True(t, ok)
	assert.Equal(t, s0, prev)
}
