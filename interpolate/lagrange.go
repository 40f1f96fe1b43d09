package interpolate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lagrange/polynomial"
)

// resultName is the display name given to interpolation results.
const resultName = "ip"

// Interpolate builds the unique polynomial of degree ≤ n−1 passing through
// the n points (xs[i], ys[i]).
//
// When xs and ys differ in length, only the overlapping prefix
// (min(len(xs), len(ys)) points) is used — extra coordinates are ignored
// on purpose, so a caller holding one spare x (say, the evaluation target
// read from the same stream) need not slice it away.
//
// Stage 1 (Validate): at least two usable points, all coordinates finite,
// x-values pairwise distinct under exact equality. Violations return
// ErrInsufficientPoints, ErrNonFiniteSample, or ErrDuplicateAbscissa
// (wrapped with the offending value) before any arithmetic runs, so no
// zero divisor can appear mid-construction.
//
// Stage 2 (Construct): for each point i, the Lagrange basis polynomial
// Lᵢ(x) = Πⱼ≠ᵢ (x − xⱼ)/(xᵢ − xⱼ) is grown by repeated multiplication of a
// running polynomial (seeded to the constant yᵢ) by the degree-1 factor
// (x − xⱼ) and scalar division by (xᵢ − xⱼ); the yᵢ·Lᵢ are accumulated
// into the result.
//
// Stage 3 (Finalize): the accumulated sum is already canonical; it is
// returned under the display name "ip".
//
// Complexity: O(n²) polynomial multiplications each O(n), so O(n³)
// arithmetic and O(n²) transient allocations — fine for tens of points.
func Interpolate(xs, ys []float64) (polynomial.Polynomial, error) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 2 {
		return polynomial.Zero(), ErrInsufficientPoints
	}
	if err := validatePoints(xs[:n], ys[:n]); err != nil {
		return polynomial.Zero(), err
	}

	result := polynomial.Zero()
	for i := 0; i < n; i++ {
		// Seed with the constant yᵢ, then fold in one (x − xⱼ)/(xᵢ − xⱼ)
		// factor per other point.
		basis := polynomial.New(ys[i])
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			var err error
			basis, err = basis.Mul(polynomial.New(-xs[j], 1)).DivScalar(xs[i] - xs[j])
			if err != nil {
				// Unreachable after validation; surfaced for completeness.
				return polynomial.Zero(), fmt.Errorf("interpolate: basis %d: %w", i, err)
			}
		}
		result = result.Add(basis)
	}

	return result.WithName(resultName), nil
}

// validatePoints rejects non-finite coordinates and duplicate x-values.
// Duplicates are detected structurally (exact ==, via map lookup), never by
// tolerance: two x-values a rounding error apart are still distinct points.
// Complexity: O(n) time and memory.
func validatePoints(xs, ys []float64) error {
	seen := make(map[float64]struct{}, len(xs))
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: x[%d] = %v", ErrNonFiniteSample, i, x)
		}
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return fmt.Errorf("%w: y[%d] = %v", ErrNonFiniteSample, i, ys[i])
		}
		if _, dup := seen[x]; dup {
			return fmt.Errorf("%w: x = %v", ErrDuplicateAbscissa, x)
		}
		seen[x] = struct{}{}
	}

	return nil
}
