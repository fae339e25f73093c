package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnastrand/geoenum/domain"
)

func mkDomain(name string, toehold, complement bool, bond string) domain.Domain {
	return domain.Domain{Name: name, Toehold: toehold, Complement: complement, Bond: bond}
}

func TestDomain_ComplementaryTo(t *testing.T) {
	x := mkDomain("x", false, false, "")
	xStar := mkDomain("x", false, true, "")
	y := mkDomain("y", false, false, "")

	assert.True(t, x.ComplementaryTo(xStar))
	assert.True(t, xStar.ComplementaryTo(x))
	assert.False(t, x.ComplementaryTo(y))
	assert.False(t, x.ComplementaryTo(x))
}

func TestDomain_String(t *testing.T) {
	cases := []struct {
		d    domain.Domain
		want string
	}{
		{mkDomain("x", false, false, ""), "x"},
		{mkDomain("t", true, false, ""), "t^"},
		{mkDomain("x", false, true, ""), "x*"},
		{mkDomain("x", false, false, "i"), "x!i"},
		{mkDomain("t", true, true, "i1"), "t^*!i1"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.d.String())
	}
}

func TestStrand_NewStrand_RejectsEmpty(t *testing.T) {
	_, err := domain.NewStrand(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyStrand)
}

func TestStrand_String(t *testing.T) {
	s, err := domain.NewStrand([]domain.Domain{
		mkDomain("t", true, false, ""),
		mkDomain("x", false, false, "i"),
	})
	require.NoError(t, err)
	assert.Equal(t, "<t^ x!i>", s.String())
}

func TestProcess_WellFormed(t *testing.T) {
	x, _ := domain.NewStrand([]domain.Domain{mkDomain("x", false, false, "i")})
	xStar, _ := domain.NewStrand([]domain.Domain{mkDomain("x", false, true, "i")})
	p := domain.NewProcess([]domain.Strand{x, xStar})
	assert.True(t, p.WellFormed())
}

func TestProcess_Validate_BondAppearsOnce(t *testing.T) {
	x, _ := domain.NewStrand([]domain.Domain{mkDomain("x", false, false, "i")})
	p := domain.NewProcess([]domain.Strand{x})
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBondNotPaired))
}

func TestProcess_Validate_BondNotComplementary(t *testing.T) {
	x, _ := domain.NewStrand([]domain.Domain{mkDomain("x", false, false, "i")})
	y, _ := domain.NewStrand([]domain.Domain{mkDomain("y", false, true, "i")})
	p := domain.NewProcess([]domain.Strand{x, y})
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBondNotComplementary))
}

func TestLengthMap_ValidateAgainst(t *testing.T) {
	x, _ := domain.NewStrand([]domain.Domain{mkDomain("x", false, false, "")})
	p := domain.NewProcess([]domain.Strand{x})

	m := domain.LengthMap{}
	err := m.ValidateAgainst(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingLength)

	m["x"] = domain.LengthEntry{Length: 20}
	assert.NoError(t, m.ValidateAgainst(p))
}
