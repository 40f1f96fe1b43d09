// Package polynomial provides an immutable dense-coefficient polynomial
// value type with exact, canonical arithmetic.
//
// 🚀 What is polynomial?
//
//	A Polynomial stores its real coefficients in increasing order of the
//	power they belong to, so the polynomial
//	    12.8x⁵ − 1.62x² + 33x − 7.31
//	is held as the sequence
//	    [-7.31, 33, -1.62, 0, 0, 12.8]
//	and the power of a coefficient is simply its index.  It is widely
//	useful for:
//	  • Curve fitting & interpolation building blocks
//	  • Signal processing (convolution is polynomial multiplication)
//	  • Teaching & verifying numerical algorithms
//
// ✨ Key features:
//   - canonical form: near-zero (≤1e-10) coefficients flattened, trailing
//     zeros trimmed — the zero polynomial is the empty sequence, degree −1
//   - value semantics: every operation returns a new canonical Polynomial;
//     inputs are never aliased or mutated
//   - Horner evaluation: O(degree) time, no allocations
//   - pointwise Add/Sub, convolution Mul, scalar Scale/DivScalar
//   - cosmetic display names composed through operations ("(p + q)")
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lagrange/polynomial"
//
//	p := polynomial.New(-7.31, 33, -1.62, 0, 0, 12.8)
//	q := polynomial.New(1, 1) // 1 + x
//
//	sum := p.Add(q)
//	val := sum.Evaluate(2.5)
//
//	half, err := p.DivScalar(2) // ErrDivisionByZero when the scalar is 0
//
// Numeric model:
//
//	All coefficients and evaluation use float64.  The near-zero threshold
//	(1e-10) is an absolute tolerance, not a relative one: polynomials whose
//	coefficients legitimately span a very large dynamic range may see small
//	genuine coefficients flattened to zero.  Division by a non-constant
//	polynomial is not supported.
//
// Performance:
//
//   - Evaluate: O(d) time, O(1) memory
//   - Add/Sub:  O(max(d₁,d₂)) time & memory
//   - Mul:      O(d₁·d₂) time, O(d₁+d₂) memory
//
// See examples in example_test.go.
package polynomial
