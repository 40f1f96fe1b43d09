package polynomial

import "errors"

// ErrDivisionByZero is returned when a polynomial is divided by the scalar 0.
var ErrDivisionByZero = errors.New("polynomial: division by zero")

// eps is the absolute tolerance below which a coefficient is treated as zero
// during canonicalization. Absolute, not relative: see the package notes on
// large dynamic ranges.
const eps = 1e-10

// defaultName is the display name given to polynomials built without one.
const defaultName = "p"

// Polynomial is an immutable dense polynomial over float64.
// coeffs[i] is the coefficient of xⁱ; the slice is always canonical
// (no trailing zeros after near-zero flattening) and never shared with
// callers. The empty slice is the zero polynomial.
//
// The name is cosmetic only: it never affects coefficients, evaluation or
// equality. Arithmetic composes names so printed results read like the
// expression that produced them.
type Polynomial struct {
	coeffs []float64
	name   string
}

// New builds a canonical Polynomial from the given coefficients, constant
// term first. Any list of reals (including none at all) is valid input.
// Complexity: O(len(coeffs)).
func New(coeffs ...float64) Polynomial {
	return Polynomial{coeffs: canonicalize(coeffs), name: defaultName}
}

// NewNamed builds a canonical Polynomial with an explicit display name.
// Complexity: O(len(coeffs)).
func NewNamed(name string, coeffs []float64) Polynomial {
	return Polynomial{coeffs: canonicalize(coeffs), name: name}
}

// Zero returns the zero polynomial (empty coefficient sequence, degree −1).
func Zero() Polynomial {
	return Polynomial{coeffs: nil, name: defaultName}
}

// canonicalize copies cs, flattens near-zero values and trims trailing
// zeros, so the last element of the result is nonzero or the result is
// empty. It is idempotent and never aliases its input.
// Complexity: O(len(cs)).
func canonicalize(cs []float64) []float64 {
	out := make([]float64, len(cs))
	copy(out, cs)

	// Flatten coefficients that should have been zero but are not, due to
	// floating-point rounding.
	for i, c := range out {
		if c <= eps && c >= -eps {
			out[i] = 0
		}
	}

	// Trim trailing zeros; representing coefficients above the highest
	// power would inflate the degree.
	n := len(out)
	for n > 0 && out[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}

	return out[:n]
}

// Degree returns the degree of the polynomial: one less than the length of
// the coefficient sequence, so the zero polynomial has degree −1 (a
// sentinel, not an error). Complexity: O(1).
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coeffs returns a copy of the coefficient sequence, constant term first.
// The returned slice is owned by the caller. Complexity: O(degree).
func (p Polynomial) Coeffs() []float64 {
	if len(p.coeffs) == 0 {
		return nil
	}
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Coeff returns the coefficient of xⁱ, or 0 when i is outside the stored
// range (negative or above the degree). Complexity: O(1).
func (p Polynomial) Coeff(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}

	return p.coeffs[i]
}

// Name returns the cosmetic display name of the polynomial.
func (p Polynomial) Name() string {
	return p.name
}

// WithName returns a copy of p carrying the given display name.
// Coefficients are untouched; the original is not modified.
func (p Polynomial) WithName(name string) Polynomial {
	p.name = name

	return p
}

// Evaluate computes p(x) by Horner's method, folding the coefficients from
// the highest power down:
//
//	12.8x⁵ − 1.62x² + 33x − 7.31  →  ((((12.8x + 0)x + 0)x − 1.62)x + 33)x − 7.31
//
// The zero polynomial evaluates to 0 for every x.
// Complexity: O(degree) time, O(1) memory.
func (p Polynomial) Evaluate(x float64) float64 {
	result := 0.0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result*x + p.coeffs[i]
	}

	return result
}

// Equal reports whether p and q have identical canonical coefficient
// sequences. Display names are ignored. Complexity: O(degree).
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}

	return true
}

// EqualWithin reports whether every coefficient of p is within tol of the
// corresponding coefficient of q (missing coefficients compare as 0).
// Display names are ignored. Complexity: O(max degree).
func (p Polynomial) EqualWithin(q Polynomial, tol float64) bool {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	for i := 0; i < n; i++ {
		d := p.Coeff(i) - q.Coeff(i)
		if d > tol || d < -tol {
			return false
		}
	}

	return true
}
