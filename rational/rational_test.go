package rational_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagrange/rational"
)

// TestApproximate_ExactIntegers verifies integers short-circuit to
// denominator 1 and render without a slash.
func TestApproximate_ExactIntegers(t *testing.T) {
	for _, x := range []float64{0, 3, -4, 1e6} {
		r, err := rational.Approximate(x, 1000)
		require.NoError(t, err)
		assert.Equal(t, int64(1), r.Den, "integer input must have denominator 1")
		assert.Equal(t, int64(x), r.Num)
	}

	assert.Equal(t, "3", rational.Rationalise(3.0), "integers never carry a /1 suffix")
}

// TestApproximate_DirectReduction verifies values whose reduced scaled
// fraction already fits the bound are returned without the convergent
// search: 0.625 is exactly 5/8.
func TestApproximate_DirectReduction(t *testing.T) {
	r, err := rational.Approximate(0.625, 8)
	require.NoError(t, err)
	assert.Equal(t, rational.Rational{Num: 5, Den: 8}, r)
}

// TestApproximate_KnownFractions checks the concrete display scenarios:
// 0.5 → 1/2 and 0.333333 → 1/3 under a bound of 1000.
func TestApproximate_KnownFractions(t *testing.T) {
	half, err := rational.Approximate(0.5, 1000)
	require.NoError(t, err)
	assert.Equal(t, "1/2", half.String())

	third, err := rational.Approximate(0.333333, 1000)
	require.NoError(t, err)
	assert.Equal(t, "1/3", third.String(), "convergent selection must prefer 1/3 over 333/1000")
}

// TestApproximate_Pi reproduces the classical convergents of π under
// shrinking denominator bounds.
func TestApproximate_Pi(t *testing.T) {
	cases := []struct {
		bound int64
		want  string
	}{
		{100000, "312689/99532"},
		{1000, "355/113"},
		{10, "22/7"},
		{1, "3"},
	}
	for _, tc := range cases {
		r, err := rational.Approximate(math.Pi, tc.bound)
		require.NoError(t, err, "bound %d", tc.bound)
		assert.Equal(t, tc.want, r.String(), "bound %d", tc.bound)
	}
}

// TestApproximate_E verifies the best rational approximation of e with
// denominator at most 100, a case where the last convergent beats every
// admissible semiconvergent.
func TestApproximate_E(t *testing.T) {
	r, err := rational.Approximate(math.E, 100)
	require.NoError(t, err)
	assert.Equal(t, "193/71", r.String())
}

// TestApproximate_BoundOne degenerates to nearest-integer selection; on an
// exact .5 tie the smaller-denominator candidate (the last convergent)
// wins, matching the classical limit-denominator behavior.
func TestApproximate_BoundOne(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{0.5, "0"},
		{0.6, "1"},
		{1.5, "1"},
		{-0.6, "-1"},
	}
	for _, tc := range cases {
		r, err := rational.Approximate(tc.x, 1)
		require.NoError(t, err, "x=%v", tc.x)
		assert.Equal(t, tc.want, r.String(), "x=%v", tc.x)
	}
}

// TestApproximate_NegativeSignOnNumerator verifies the sign is carried on
// the numerator with the magnitude approximated symmetrically.
func TestApproximate_NegativeSignOnNumerator(t *testing.T) {
	r, err := rational.Approximate(-2.5, 10)
	require.NoError(t, err)
	assert.Equal(t, rational.Rational{Num: -5, Den: 2}, r)
	assert.Equal(t, "-5/2", r.String())
}

// TestApproximate_InvariantsOverBounds sweeps irrational inputs across
// bounds and asserts the structural invariants: the recurrence never
// divides by zero (no panic), the denominator respects the bound, and the
// result is fully reduced.
func TestApproximate_InvariantsOverBounds(t *testing.T) {
	inputs := []float64{math.Pi, math.E, math.Sqrt2, 1 / math.Phi, -math.Ln2}
	for _, x := range inputs {
		for bound := int64(1); bound <= 50; bound++ {
			r, err := rational.Approximate(x, bound)
			require.NoError(t, err, "x=%v bound=%d", x, bound)
			assert.GreaterOrEqual(t, r.Den, int64(1), "normalized denominator")
			assert.LessOrEqual(t, r.Den, bound, "denominator bound violated for x=%v bound=%d", x, bound)
			assert.Equal(t, int64(1), gcd64(abs64(r.Num), r.Den), "fraction not reduced: %v", r)
			assert.InDelta(t, x, r.Value(), 1.0/float64(bound), "a bound-b approximation is within 1/b")
		}
	}
}

// TestApproximate_InputValidation verifies the explicit guards on the
// bound and on non-finite or oversized values.
func TestApproximate_InputValidation(t *testing.T) {
	_, err := rational.Approximate(0.5, 0)
	assert.ErrorIs(t, err, rational.ErrInvalidBound)

	_, err = rational.Approximate(math.NaN(), 10)
	assert.ErrorIs(t, err, rational.ErrNotFinite)

	_, err = rational.Approximate(math.Inf(1), 10)
	assert.ErrorIs(t, err, rational.ErrNotFinite)

	_, err = rational.Approximate(1e19, 10)
	assert.ErrorIs(t, err, rational.ErrOutOfRange)
}

// TestRationalise_DefaultBound verifies the display wrapper and its
// decimal fallback for values the approximation rejects.
func TestRationalise_DefaultBound(t *testing.T) {
	assert.Equal(t, "1/2", rational.Rationalise(0.5))
	assert.Equal(t, "3", rational.Rationalise(3.0))
	assert.Equal(t, "1/3", rational.Rationalise(1.0/3))
	assert.Equal(t, "-22/7", rational.Rationalise(-22.0/7))
	assert.Equal(t, "NaN", rational.Rationalise(math.NaN()), "non-finite values fall back to decimal notation")
}

// TestNew_Normalization verifies explicit fractions are reduced with the
// sign moved to the numerator, and that a zero denominator is rejected.
func TestNew_Normalization(t *testing.T) {
	cases := []struct {
		num, den int64
		want     rational.Rational
	}{
		{6, 8, rational.Rational{Num: 3, Den: 4}},
		{-6, 8, rational.Rational{Num: -3, Den: 4}},
		{6, -8, rational.Rational{Num: -3, Den: 4}},
		{-6, -8, rational.Rational{Num: 3, Den: 4}},
		{0, 5, rational.Rational{Num: 0, Den: 1}},
	}
	for _, tc := range cases {
		r, err := rational.New(tc.num, tc.den)
		require.NoError(t, err, "%d/%d", tc.num, tc.den)
		assert.Equal(t, tc.want, r, "%d/%d", tc.num, tc.den)
	}

	_, err := rational.New(1, 0)
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)
}

// gcd64 is a test-local Euclidean GCD for the reduction invariant.
func gcd64(m, n int64) int64 {
	for n != 0 {
		m, n = n, m%n
	}

	return m
}

// abs64 is a test-local absolute value for int64.
func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
