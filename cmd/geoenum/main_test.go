package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnastrand/geoenum/config"
	"github.com/dnastrand/geoenum/enumerator"
)

func TestRunScenario_ToeholdFreeBinding(t *testing.T) {
	s, ok := scenarioByName("toehold-free-binding")
	require.True(t, ok)

	out, err := runScenario(s, config.Default(), "text", nil)
	require.NoError(t, err)
	assert.Contains(t, out, "SPECIES:")
	assert.Contains(t, out, "REACTIONS:")
}

func TestRunScenario_ZeroNucleotideLoopReportsExpectedRejection(t *testing.T) {
	s, ok := scenarioByName("zero-nucleotide-loop-rejected")
	require.True(t, ok)

	out, err := runScenario(s, config.Default(), "text", nil)
	require.NoError(t, err)
	assert.Contains(t, out, "rejected as expected")
}

func TestRunScenario_DotFormat(t *testing.T) {
	s, ok := scenarioByName("toehold-reversible-binding")
	require.True(t, ok)

	out, err := runScenario(s, config.Default(), "dot", nil)
	require.NoError(t, err)
	assert.Contains(t, out, "digraph CRN")
}

func TestRunScenario_FourWayHollidayJunction(t *testing.T) {
	s, ok := scenarioByName("four-way-holliday-junction")
	require.True(t, ok)

	out, err := runScenario(s, config.Default(), "text", nil)
	require.NoError(t, err)
	assert.Contains(t, out, "SPECIES:")
}

func TestRunScenario_ThreeWayMigrationRing(t *testing.T) {
	s, ok := scenarioByName("three-way-migration-ring")
	require.True(t, ok)

	out, err := runScenario(s, config.Default(), "text", nil)
	require.NoError(t, err)
	assert.Contains(t, out, "SPECIES:")
}

func TestScenarioByName_UnknownNameNotFound(t *testing.T) {
	_, ok := scenarioByName("does-not-exist")
	assert.False(t, ok)
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, 0, exitCodeFor(nil))
	assert.Equal(t, 1, exitCodeFor(errors.New("plain error")))

	cfg := config.Default()
	cfg.ThreeWayMode = "anchored_strgsd"
	err := cfg.ToEnumeratorSettings().Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, enumerator.ErrModeNotSupported)
	assert.Equal(t, 2, exitCodeFor(err))
}
