// Package rational approximates real numbers by fractions with bounded
// denominators, using continued-fraction convergents.
//
// 🚀 What is rational?
//
//	Given a float64 and a maximum denominator, the package finds the best
//	rational approximation whose denominator does not exceed the bound —
//	the same classical construction behind Python's
//	fractions.Fraction.limit_denominator. It is handy for:
//	  • Human-readable display of computed coefficients (0.333333… → 1/3)
//	  • Recovering exact fractions lost to floating-point arithmetic
//	  • Classic approximations: π → 355/113 at bound 1000
//
// ✨ Key features:
//   - exact integers short-circuit immediately (3.0 → "3", no "/1" noise)
//   - Stern–Brocot convergent/semiconvergent selection — provably the best
//     approximation for the given bound, smaller denominator on ties
//   - normalized results: denominator ≥ 1, sign on the numerator, reduced
//     to lowest terms
//   - well-defined down to maxDenominator == 1 (nearest integer)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lagrange/rational"
//
//	r, err := rational.Approximate(math.Pi, 1000)
//	// r = 355/113
//
//	s := rational.Rationalise(0.5) // "1/2", default bound 1,000,000
//
// Algorithm outline:
//  1. If the value truncates to itself, return it as an integer over 1.
//  2. Split off the sign; work on the magnitude.
//  3. Scale by 10¹², round, reduce by GCD — if the reduced denominator
//     already fits the bound, done.
//  4. Otherwise run the continued-fraction recurrence
//     pₖ = pₖ₋₂ + a·pₖ₋₁, qₖ = qₖ₋₂ + a·qₖ₋₁ (seeds 0/1 and 1/0),
//     stopping before the denominator would exceed the bound.
//  5. Compare the last convergent against the best semiconvergent
//     q₀ + k·q₁ ≤ bound; return whichever is closer (smaller denominator
//     on an exact tie).
//
// Complexity: O(log bound) iterations, O(1) memory.
//
// See examples in example_test.go.
package rational
