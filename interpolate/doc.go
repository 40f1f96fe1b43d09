// Package interpolate constructs polynomials through sample points:
// exact Lagrange interpolation, least-squares Vandermonde fits, and
// residual diagnostics for judging fit quality.
//
// 🚀 What is interpolate?
//
//	Given n points with pairwise-distinct x-coordinates, there is exactly
//	one polynomial of degree ≤ n−1 passing through all of them. This
//	package builds it in the Lagrange form
//
//	    P(x) = Σᵢ yᵢ · Lᵢ(x),   Lᵢ(x) = Πⱼ≠ᵢ (x − xⱼ)/(xᵢ − xⱼ)
//
//	which mirrors the mathematical formula term by term. It is widely
//	used for:
//	  • Reconstructing a sequence's generating polynomial
//	  • Secret sharing & error-correcting code building blocks
//	  • Verifying numerically fitted models against exact solutions
//
// ✨ Key features:
//   - strict validation: at least two points, exactly-distinct x values —
//     violations fail with sentinel errors before any arithmetic runs
//   - length-mismatched inputs use the overlapping prefix (deliberate
//     permissiveness, documented on Interpolate)
//   - Fit: least-squares polynomial fitting via a Vandermonde system and
//     gonum's QR decomposition, for noisy or over-determined data
//   - Residuals / Precision: absolute-error diagnostics over the samples
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lagrange/interpolate"
//
//	xs := []float64{1, 2, 3, 4, 5}
//	ys := []float64{1, 2, 3, 4, 98756}
//
//	ip, err := interpolate.Interpolate(xs, ys)
//	if err != nil {
//	  // handle ErrInsufficientPoints / ErrDuplicateAbscissa / ErrNonFiniteSample
//	}
//	fmt.Println(ip.Evaluate(5)) // 98756
//
// Performance:
//
//   - Interpolate: O(n³) arithmetic over O(n²) transient polynomials —
//     built for tens of points, not thousands; no divided-difference or
//     barycentric shortcuts, the Lagrange form is the contract
//   - Fit:         O(n·d²) via QR on the n×(d+1) Vandermonde matrix
//   - Residuals:   O(n·d)
//
// See examples in example_test.go.
package interpolate
