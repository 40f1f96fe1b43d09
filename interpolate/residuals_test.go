package interpolate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagrange/interpolate"
	"github.com/katalvlaran/lagrange/polynomial"
)

// TestResiduals_AbsoluteErrors verifies residuals are absolute errors in
// sample order, over the overlapping prefix.
func TestResiduals_AbsoluteErrors(t *testing.T) {
	p := polynomial.New(0, 1) // identity

	res, err := interpolate.Residuals(p, []float64{1, 2, 3}, []float64{1, 2.5, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, res)

	res, err = interpolate.Residuals(p, []float64{1, 2, 3}, []float64{1})
	require.NoError(t, err)
	assert.Len(t, res, 1, "mismatched lengths use the overlapping prefix")
}

// TestResiduals_NoSamples verifies the empty-overlap guard.
func TestResiduals_NoSamples(t *testing.T) {
	_, err := interpolate.Residuals(polynomial.Zero(), nil, nil)
	assert.ErrorIs(t, err, interpolate.ErrNoSamples)
}

// TestPrecision_ExactInterpolant verifies an exact interpolant reports
// residuals at rounding-noise level across all statistics.
func TestPrecision_ExactInterpolant(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{1, 2, 3, 4, 98756}

	p, err := interpolate.Interpolate(xs, ys)
	require.NoError(t, err)

	st, err := interpolate.Precision(p, xs, ys)
	require.NoError(t, err)
	assert.LessOrEqual(t, st.Max, 1e-6, "exact interpolant must reproduce its samples")
	assert.LessOrEqual(t, st.Mean, st.Max, "mean cannot exceed max")
	assert.LessOrEqual(t, st.Median, st.Max)
	assert.GreaterOrEqual(t, st.StdDev, 0.0)
}

// TestPrecision_QuantifiesMisfit verifies the statistics on a
// hand-computed misfit: the identity line against samples offset by a
// known pattern.
func TestPrecision_QuantifiesMisfit(t *testing.T) {
	p := polynomial.New(0, 1)
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 2, 2, 3} // residuals 0, 1, 0, 0

	st, err := interpolate.Precision(p, xs, ys)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, st.Max, 1e-12)
	assert.InDelta(t, 0.25, st.Mean, 1e-12)
	assert.InDelta(t, 0.0, st.Median, 1e-12)
	assert.InDelta(t, 0.4330127018922193, st.StdDev, 1e-12, "population stddev of {0,1,0,0}")
}
