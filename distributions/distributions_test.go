package distributions_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dnastrand/geoenum/distributions"
)

func TestMaxLength_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	region := distributions.RegionDomain{DoubleStranded: true, NucleotideLength: 20}
	_, length, _ := distributions.MaxLength{}.Sample(region, nil, rng)
	assert.InDelta(t, 20*distributions.DSLength, length, 1e-9)
}

func TestWLC_TruncatedToContourLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	region := distributions.RegionDomain{DoubleStranded: false, NucleotideLength: 20}
	contour := 20 * distributions.SSLength
	for i := 0; i < 200; i++ {
		_, length, _ := distributions.WLC{}.Sample(region, nil, rng)
		assert.GreaterOrEqual(t, length, 0.0)
		assert.LessOrEqual(t, length, contour+1e-9)
	}
}

func TestUniformSphere_ProducesUnitVectors(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		vec, _, _ := distributions.UniformSphere{}.Sample(distributions.RegionDomain{}, nil, rng)
		assert.InDelta(t, 1.0, r3.Norm(vec), 1e-9)
	}
}

func TestUniformHemisphere_NonNegativeZ(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		vec, _, _ := distributions.UniformHemisphere{}.Sample(distributions.RegionDomain{}, nil, rng)
		assert.GreaterOrEqual(t, vec.Z, 0.0)
		assert.InDelta(t, 1.0, r3.Norm(vec), 1e-9)
	}
}

func TestDefaultSet_WiresAllFiveSamplers(t *testing.T) {
	s := distributions.Default()
	assert.NotNil(t, s.SSLength)
	assert.NotNil(t, s.DSLength)
	assert.NotNil(t, s.Tether)
	assert.NotNil(t, s.SSAngle)
	assert.NotNil(t, s.DSDSAngle)
}
