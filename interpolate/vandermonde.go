package interpolate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lagrange/polynomial"
)

// fitName is the display name given to least-squares fit results.
const fitName = "fit"

// Fit computes the degree-d least-squares polynomial through the points
// (xs[i], ys[i]) by solving the n×(d+1) Vandermonde system V·c = y with a
// QR decomposition. With degree == n−1 and distinct x-values the system is
// square and Fit reproduces the interpolating polynomial (up to
// conditioning); with degree < n−1 it is the least-squares best fit, which
// is the right tool for noisy samples where exact interpolation would
// chase the noise.
//
// Length-mismatched inputs use the overlapping prefix, like Interpolate.
// Degree must satisfy 0 ≤ degree ≤ n−1 (ErrBadDegree otherwise); the
// sample set must hold at least two points (ErrInsufficientPoints) with
// finite coordinates (ErrNonFiniteSample). A rank-deficient system
// (repeated x-values make Vandermonde columns collinear) surfaces as a
// wrapped solve error.
//
// Complexity: O(n·d²) time, O(n·d) memory.
func Fit(xs, ys []float64, degree int) (polynomial.Polynomial, error) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 2 {
		return polynomial.Zero(), ErrInsufficientPoints
	}
	if degree < 0 || degree >= n {
		return polynomial.Zero(), fmt.Errorf("%w: degree %d with %d points", ErrBadDegree, degree, n)
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) {
			return polynomial.Zero(), fmt.Errorf("%w: x[%d] = %v", ErrNonFiniteSample, i, xs[i])
		}
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return polynomial.Zero(), fmt.Errorf("%w: y[%d] = %v", ErrNonFiniteSample, i, ys[i])
		}
	}

	a := vandermonde(xs[:n], degree)
	b := mat.NewDense(n, 1, append([]float64(nil), ys[:n]...))
	c := mat.NewDense(degree+1, 1, nil)

	var qr mat.QR
	qr.Factorize(a)
	if err := qr.SolveTo(c, false, b); err != nil {
		return polynomial.Zero(), fmt.Errorf("interpolate: vandermonde solve: %w", err)
	}

	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = c.At(i, 0)
	}

	return polynomial.NewNamed(fitName, coeffs), nil
}

// vandermonde builds the n×(degree+1) matrix with rows [1, xᵢ, xᵢ², …].
// Powers are accumulated multiplicatively, one product per cell.
func vandermonde(xs []float64, degree int) *mat.Dense {
	v := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*x {
			v.Set(i, j, p)
		}
	}

	return v
}
