package enumerator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnastrand/geoenum/checker"
	"github.com/dnastrand/geoenum/distributions"
	"github.com/dnastrand/geoenum/domain"
	"github.com/dnastrand/geoenum/enumerator"
	"github.com/dnastrand/geoenum/species"
)

func d(name string, toehold, complement bool, bond string) domain.Domain {
	return domain.Domain{Name: name, Toehold: toehold, Complement: complement, Bond: bond}
}

func seed(n int64) *int64 { return &n }

func validSettings() enumerator.Settings {
	return enumerator.Settings{
		EnumerationMode: enumerator.EnumerationModeDetailed,
		ThreeWayMode:    enumerator.ThreeWayModeAdjacent,
		UnbindingMode:   enumerator.UnbindingModeAdjacent,
		MaxComplexSize:  10,
		Rate: enumerator.Rates{
			Bind: 1, Unbind: 1, Migrate: 1, Displace: 1,
		},
	}
}

func TestSettings_Validate_RejectsUnsupportedMode(t *testing.T) {
	s := validSettings()
	s.ThreeWayMode = enumerator.ThreeWayModeAnchoredSTRGSD
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, enumerator.ErrModeNotSupported)

	type fataler interface{ Fatal() bool }
	f, ok := err.(fataler)
	require.True(t, ok)
	assert.True(t, f.Fatal())
}

func TestSettings_Validate_RejectsNonPositiveRate(t *testing.T) {
	s := validSettings()
	s.Rate.Bind = 0
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, enumerator.ErrInvalidSettings)
}

func TestNew_RejectsInvalidSettings(t *testing.T) {
	s := validSettings()
	s.MaxComplexSize = 0
	_, err := enumerator.New(s, checker.New(distributions.Default()))
	require.Error(t, err)
}

func TestEnumerate_ToeholdBindingAndUnbinding(t *testing.T) {
	lm := domain.LengthMap{"x": domain.LengthEntry{Length: 20}}
	x, _ := domain.NewStrand([]domain.Domain{d("x", true, false, "")})
	xStar, _ := domain.NewStrand([]domain.Domain{d("x", true, true, "")})
	spX, err := species.FromProcess(domain.NewProcess([]domain.Strand{x}), lm)
	require.NoError(t, err)
	spXStar, err := species.FromProcess(domain.NewProcess([]domain.Strand{xStar}), lm)
	require.NoError(t, err)

	cc := checker.New(distributions.Default())
	cc.Reseed(seed(7))
	en, err := enumerator.New(validSettings(), cc)
	require.NoError(t, err)

	out, err := en.Enumerate([]*species.Species{spX, spXStar})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(out.Species()), 3, "should discover the bound duplex in addition to the two reactants")

	var sawBindUnbindPair bool
	for _, r := range out.Reactions {
		if len(r.Reactants) == 2 && len(r.Products) == 1 && r.BwdRate != nil {
			sawBindUnbindPair = true
		}
	}
	assert.True(t, sawBindUnbindPair, "binding and its reverse unbinding should compress into one reversible reaction")
}

func TestEnumerate_ComplexSizeExceededIsFatal(t *testing.T) {
	lm := domain.LengthMap{"x": domain.LengthEntry{Length: 20}}
	x, _ := domain.NewStrand([]domain.Domain{d("x", true, false, "")})
	xStar, _ := domain.NewStrand([]domain.Domain{d("x", true, true, "")})
	spX, err := species.FromProcess(domain.NewProcess([]domain.Strand{x}), lm)
	require.NoError(t, err)
	spXStar, err := species.FromProcess(domain.NewProcess([]domain.Strand{xStar}), lm)
	require.NoError(t, err)

	cc := checker.New(distributions.Default())
	cc.Reseed(seed(7))
	settings := validSettings()
	settings.MaxComplexSize = 1
	en, err := enumerator.New(settings, cc)
	require.NoError(t, err)

	_, err = en.Enumerate([]*species.Species{spX, spXStar})
	require.Error(t, err)

	type fataler interface{ Fatal() bool }
	f, ok := err.(fataler)
	require.True(t, ok)
	assert.True(t, f.Fatal())
}
