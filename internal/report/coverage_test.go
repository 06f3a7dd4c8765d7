package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecom-insights/listing-attributes/constants"
	"github.com/ecom-insights/listing-attributes/internal/extract"
)

func strp(s string) *string { return &s }

func TestComputeCoverage(t *testing.T) {
	results := map[int]extract.AttributeSet{
		2: {Color: strp("black"), Power: strp("1200W")},
		3: {Color: strp("blue")},
		4: {},
	}

	coverage := Compute(results, len(results))
	require.Len(t, coverage, 10)

	byAttr := make(map[constants.Attribute]AttributeCoverage)
	for _, c := range coverage {
		byAttr[c.Attribute] = c
	}

	assert.Equal(t, 2, byAttr[constants.AttrColor].Extracted)
	assert.Equal(t, 3, byAttr[constants.AttrColor].Total)
	assert.InDelta(t, 2.0/3.0, byAttr[constants.AttrColor].Fraction(), 0.001)

	assert.Equal(t, 1, byAttr[constants.AttrPower].Extracted)
	assert.Zero(t, byAttr[constants.AttrMotorClass].Extracted)
}

func TestComputeCoverageKeepsSubmittedTotal(t *testing.T) {
	// Two of five records produced results; the denominator stays five.
	results := map[int]extract.AttributeSet{
		2: {Color: strp("black")},
		3: {Color: strp("blue")},
	}

	coverage := Compute(results, 5)
	byAttr := make(map[constants.Attribute]AttributeCoverage)
	for _, c := range coverage {
		byAttr[c.Attribute] = c
	}

	assert.Equal(t, 5, byAttr[constants.AttrColor].Total)
	assert.InDelta(t, 0.4, byAttr[constants.AttrColor].Fraction(), 0.001)
	assert.Equal(t, 5, byAttr[constants.AttrPower].Total)
}

func TestCoverageFractionEmpty(t *testing.T) {
	assert.Zero(t, AttributeCoverage{}.Fraction())
	for _, c := range Compute(nil, 0) {
		assert.Zero(t, c.Total)
		assert.Zero(t, c.Fraction())
	}
}
