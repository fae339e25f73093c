package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnastrand/geoenum/domain"
	"github.com/dnastrand/geoenum/syntax"
)

func TestParseProcess_TwoStrands(t *testing.T) {
	p, err := syntax.ParseProcess("(<x> | <x*>)")
	require.NoError(t, err)
	require.Len(t, p.Strands, 2)
	assert.Equal(t, "x", p.Strands[0].Domains[0].Name)
	assert.False(t, p.Strands[0].Domains[0].Complement)
	assert.True(t, p.Strands[1].Domains[0].Complement)
}

func TestParseProcess_BareStrand(t *testing.T) {
	p, err := syntax.ParseProcess("<t^ x>")
	require.NoError(t, err)
	require.Len(t, p.Strands, 1)
	ds := p.Strands[0].Domains
	require.Len(t, ds, 2)
	assert.True(t, ds[0].Toehold)
	assert.Equal(t, "x", ds[1].Name)
}

func TestParseProcess_BondLabelsAndComments(t *testing.T) {
	p, err := syntax.ParseProcess("(* a nested (* comment *) here *) (<A!1> | <A B!2> | <B*!2 A*!1>)")
	require.NoError(t, err)
	require.Len(t, p.Strands, 3)
	assert.Equal(t, "1", p.Strands[0].Domains[0].Bond)
	assert.Equal(t, "2", p.Strands[1].Domains[1].Bond)
}

func TestParseProcess_RejectsIllegalCharacter(t *testing.T) {
	_, err := syntax.ParseProcess("<x % y>")
	require.Error(t, err)
	assert.ErrorIs(t, err, syntax.ErrSyntax)

	type fataler interface{ Fatal() bool }
	f, ok := err.(fataler)
	require.True(t, ok)
	assert.True(t, f.Fatal())
}

func TestParseProcess_RejectsUnterminatedComment(t *testing.T) {
	_, err := syntax.ParseProcess("(* never closed <x>")
	require.Error(t, err)
	assert.ErrorIs(t, err, syntax.ErrSyntax)
}

func TestParseProcess_RejectsMismatchedParens(t *testing.T) {
	_, err := syntax.ParseProcess("(<x> | <x*>")
	require.Error(t, err)
}

func TestParseLengthMap(t *testing.T) {
	lm, err := syntax.ParseLengthMap("toeholdDomain t length 5 longDomain x length 20")
	require.NoError(t, err)
	assert.Equal(t, domain.LengthEntry{Length: 5, Toehold: true}, lm["t"])
	assert.Equal(t, domain.LengthEntry{Length: 20, Toehold: false}, lm["x"])
}

func TestParseLengthMap_RejectsUnknownKeyword(t *testing.T) {
	_, err := syntax.ParseLengthMap("shortDomain x length 20")
	require.Error(t, err)
	assert.ErrorIs(t, err, syntax.ErrSyntax)
}
