package crn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnastrand/geoenum/crn"
	"github.com/dnastrand/geoenum/domain"
	"github.com/dnastrand/geoenum/species"
)

func d(name string, toehold, complement bool, bond string) domain.Domain {
	return domain.Domain{Name: name, Toehold: toehold, Complement: complement, Bond: bond}
}

func mustSpecies(t *testing.T, strands []domain.Strand, lm domain.LengthMap) *species.Species {
	t.Helper()
	sp, err := species.FromProcess(domain.NewProcess(strands), lm)
	require.NoError(t, err)
	return sp
}

// buildScenario1 follows the shape of spec.md §8 scenario 1,
// <x> + <x*> -> <x!i x*!i>, except that x is marked as a toehold here.
func buildScenario1(t *testing.T) (*species.Species, *species.Species, *species.Species, domain.LengthMap) {
	t.Helper()
	lm := domain.LengthMap{"x": domain.LengthEntry{Length: 20}}

	x, _ := domain.NewStrand([]domain.Domain{d("x", true, false, "")})
	xStar, _ := domain.NewStrand([]domain.Domain{d("x", true, true, "")})
	reactantX := mustSpecies(t, []domain.Strand{x}, lm)
	reactantXStar := mustSpecies(t, []domain.Strand{xStar}, lm)

	boundA, _ := domain.NewStrand([]domain.Domain{d("x", true, false, "i")})
	boundB, _ := domain.NewStrand([]domain.Domain{d("x", true, true, "i")})
	product := mustSpecies(t, []domain.Strand{boundA, boundB}, lm)

	return reactantX, reactantXStar, product, lm
}

func TestCRN_New_RejectsUnknownSpecies(t *testing.T) {
	x, xStar, product, _ := buildScenario1(t)
	r := &crn.Reaction{
		Reactants: []*species.Species{x, xStar},
		Products:  []*species.Species{product},
		FwdRate:   1,
		Meta:      crn.Metadata{Kind: crn.Binding},
	}
	_, err := crn.New([]*species.Species{x, xStar}, []*crn.Reaction{r})
	require.Error(t, err)
	assert.ErrorIs(t, err, crn.ErrUnknownSpecies)
}

func TestCRN_New_AssignsSyntheticNames(t *testing.T) {
	x, xStar, product, _ := buildScenario1(t)
	r := &crn.Reaction{
		Reactants: []*species.Species{x, xStar},
		Products:  []*species.Species{product},
		FwdRate:   1,
		Meta:      crn.Metadata{Kind: crn.Binding},
	}
	c, err := crn.New([]*species.Species{x, xStar, product}, []*crn.Reaction{r})
	require.NoError(t, err)

	assert.Equal(t, "sp_0", c.SpeciesName(x))
	assert.Equal(t, "sp_1", c.SpeciesName(xStar))
	assert.Equal(t, "sp_2", c.SpeciesName(product))
	assert.Same(t, x, c.SpeciesByName("sp_0"))
}

func TestCRN_Compress_FoldsReversePairAndIsIdempotent(t *testing.T) {
	x, xStar, product, _ := buildScenario1(t)
	fwd := &crn.Reaction{
		Reactants: []*species.Species{x, xStar},
		Products:  []*species.Species{product},
		FwdRate:   1,
		Meta:      crn.Metadata{Kind: crn.Binding},
	}
	bwd := &crn.Reaction{
		Reactants: []*species.Species{product},
		Products:  []*species.Species{x, xStar},
		FwdRate:   0.5,
		Meta:      crn.Metadata{Kind: crn.Unbinding},
	}

	c, err := crn.New([]*species.Species{x, xStar, product}, []*crn.Reaction{fwd, bwd})
	require.NoError(t, err)
	require.Len(t, c.Reactions, 1)
	assert.Equal(t, 1.0, c.Reactions[0].FwdRate)
	require.NotNil(t, c.Reactions[0].BwdRate)
	assert.Equal(t, 0.5, *c.Reactions[0].BwdRate)

	before := len(c.Reactions)
	c.Compress()
	assert.Len(t, c.Reactions, before)
}

func TestCRN_Compress_DropsExactDuplicate(t *testing.T) {
	x, xStar, product, _ := buildScenario1(t)
	r1 := &crn.Reaction{Reactants: []*species.Species{x, xStar}, Products: []*species.Species{product}, FwdRate: 1}
	r2 := &crn.Reaction{Reactants: []*species.Species{xStar, x}, Products: []*species.Species{product}, FwdRate: 1}

	c, err := crn.New([]*species.Species{x, xStar, product}, []*crn.Reaction{r1, r2})
	require.NoError(t, err)
	assert.Len(t, c.Reactions, 1)
}

func TestCRN_String_RendersSpeciesAndReversibleReaction(t *testing.T) {
	x, xStar, product, _ := buildScenario1(t)
	fwd := &crn.Reaction{Reactants: []*species.Species{x, xStar}, Products: []*species.Species{product}, FwdRate: 1}
	bwd := &crn.Reaction{Reactants: []*species.Species{product}, Products: []*species.Species{x, xStar}, FwdRate: 0.5}

	c, err := crn.New([]*species.Species{x, xStar, product}, []*crn.Reaction{fwd, bwd})
	require.NoError(t, err)

	out := c.String()
	assert.Contains(t, out, "SPECIES:")
	assert.Contains(t, out, "sp_0 = ")
	assert.Contains(t, out, "REACTIONS:")
	assert.Contains(t, out, "sp_0 + sp_1 {0.5}<->{1} sp_2")
}

func TestCRN_WriteDOT_ContainsSpeciesAndReactionNodes(t *testing.T) {
	x, xStar, product, _ := buildScenario1(t)
	fwd := &crn.Reaction{Reactants: []*species.Species{x, xStar}, Products: []*species.Species{product}, FwdRate: 1}

	c, err := crn.New([]*species.Species{x, xStar, product}, []*crn.Reaction{fwd})
	require.NoError(t, err)

	out := c.WriteDOT()
	assert.Contains(t, out, "digraph CRN")
	assert.Contains(t, out, "sp_0 -> rxn_0")
	assert.Contains(t, out, "rxn_0 -> sp_2")
}
