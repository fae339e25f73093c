package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnastrand/geoenum/domain"
	"github.com/dnastrand/geoenum/region"
	"github.com/dnastrand/geoenum/strandgraph"
)

func d(name string, toehold, complement bool, bond string) domain.Domain {
	return domain.Domain{Name: name, Toehold: toehold, Complement: complement, Bond: bond}
}

// a single duplex formed by binding <x> to <x*> should collapse to two
// junctions (one per duplex end) and two parallel ds region edges of the
// same nucleotide length, per spec.md scenario 1.
func TestFromStrandGraph_SingleDuplex(t *testing.T) {
	x, _ := domain.NewStrand([]domain.Domain{d("x", false, false, "")})
	xStar, _ := domain.NewStrand([]domain.Domain{d("x", false, true, "")})
	lm := domain.LengthMap{"x": domain.LengthEntry{Length: 20}}
	sg, err := strandgraph.FromProcess(domain.NewProcess([]domain.Strand{x, xStar}), lm)
	require.NoError(t, err)
	bound, err := sg.AddEdge(sg.PossibleNewEdges()[0])
	require.NoError(t, err)

	rg, err := region.FromStrandGraph(bound)
	require.NoError(t, err)

	assert.Equal(t, 2, rg.NumJunctions)
	require.Len(t, rg.Edges, 2)
	for _, e := range rg.Edges {
		assert.True(t, e.DoubleStranded)
		assert.Equal(t, 20, e.NucleotideLength)
	}
	assert.Equal(t, rg.Edges[0].From, rg.Edges[1].To)
	assert.Equal(t, rg.Edges[0].To, rg.Edges[1].From)
}

// an unbound single strand has exactly two junctions (its free ends) and
// one ss region edge summing all domain lengths.
func TestFromStrandGraph_UnboundStrand(t *testing.T) {
	a, _ := domain.NewStrand([]domain.Domain{d("x", false, false, ""), d("y", false, false, "")})
	lm := domain.LengthMap{"x": domain.LengthEntry{Length: 20}, "y": domain.LengthEntry{Length: 10}}
	sg, err := strandgraph.FromProcess(domain.NewProcess([]domain.Strand{a}), lm)
	require.NoError(t, err)

	rg, err := region.FromStrandGraph(sg)
	require.NoError(t, err)

	assert.Equal(t, 2, rg.NumJunctions)
	require.Len(t, rg.Edges, 1)
	assert.False(t, rg.Edges[0].DoubleStranded)
	assert.Equal(t, 30, rg.Edges[0].NucleotideLength)
}

func TestFindMaxDegreeVertices_TiesAllReported(t *testing.T) {
	a, _ := domain.NewStrand([]domain.Domain{d("x", false, false, "")})
	lm := domain.LengthMap{"x": domain.LengthEntry{Length: 20}}
	sg, err := strandgraph.FromProcess(domain.NewProcess([]domain.Strand{a}), lm)
	require.NoError(t, err)

	rg, err := region.FromStrandGraph(sg)
	require.NoError(t, err)
	maxDeg := rg.FindMaxDegreeVertices()
	assert.NotEmpty(t, maxDeg)
	for _, j := range maxDeg {
		assert.Equal(t, rg.Degree(maxDeg[0]), rg.Degree(j))
	}
}

func TestFromStrandGraph_NoVertices(t *testing.T) {
	sg, err := strandgraph.New(nil, strandgraph.EdgeSet{}, strandgraph.EdgeSet{}, strandgraph.EdgeSet{}, domain.LengthMap{})
	require.NoError(t, err)
	_, err = region.FromStrandGraph(sg)
	assert.ErrorIs(t, err, region.ErrNoJunctions)
}
