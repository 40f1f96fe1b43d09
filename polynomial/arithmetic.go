package polynomial

import "strconv"

// Every operation in this file is pure: operands are never mutated, the
// result is a fresh canonical Polynomial, and its display name is composed
// from the operand names so printed output reads like the expression that
// produced it. Canonical form is re-established after every operation, so
// cancellation (p − p) collapses to the zero polynomial rather than a run
// of explicit zeros.

// fmtScalar renders a scalar for name composition, e.g. "(p + 2.5)".
func fmtScalar(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}

// compose builds the "(left op right)" display name of an operation result.
func compose(left, op, right string) string {
	return "(" + left + " " + op + " " + right + ")"
}

// Add returns p + q: the pointwise sum of the coefficient sequences up to
// the shorter length, with the longer tail carried over unchanged. The
// degree of the sum is max(deg p, deg q) before canonicalization and may
// shrink after it when leading terms cancel.
// Complexity: O(max(deg p, deg q)).
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = p.Coeff(i) + q.Coeff(i)
	}

	return NewNamed(compose(p.name, "+", q.name), coeffs)
}

// Sub returns p − q, the mirror of Add with the tail of q negated.
// Complexity: O(max(deg p, deg q)).
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = p.Coeff(i) - q.Coeff(i)
	}

	return NewNamed(compose(p.name, "-", q.name), coeffs)
}

// AddScalar returns p + c. The constant lands on the coefficient of x⁰: a
// degree-0 polynomial is created first when p is the zero polynomial, so
// the constant is never lost to an empty sequence.
// Complexity: O(deg p).
func (p Polynomial) AddScalar(c float64) Polynomial {
	coeffs := p.Coeffs()
	if len(coeffs) == 0 {
		coeffs = []float64{0}
	}
	coeffs[0] += c

	return NewNamed(compose(p.name, "+", fmtScalar(c)), coeffs)
}

// SubScalar returns p − c; same constant-term handling as AddScalar.
// Complexity: O(deg p).
func (p Polynomial) SubScalar(c float64) Polynomial {
	coeffs := p.Coeffs()
	if len(coeffs) == 0 {
		coeffs = []float64{0}
	}
	coeffs[0] -= c

	return NewNamed(compose(p.name, "-", fmtScalar(c)), coeffs)
}

// ScalarSub returns c − p: every existing coefficient is negated first,
// then the constant is added to the coefficient of x⁰.
// Complexity: O(deg p).
func (p Polynomial) ScalarSub(c float64) Polynomial {
	coeffs := p.Coeffs()
	for i := range coeffs {
		coeffs[i] = -coeffs[i]
	}
	if len(coeffs) == 0 {
		coeffs = []float64{0}
	}
	coeffs[0] += c

	return NewNamed(compose(fmtScalar(c), "-", p.name), coeffs)
}

// Mul returns p · q as the discrete linear convolution of the two
// coefficient sequences: for each output power n, the sum of
// p[k]·q[n−k] over every k where both indices are in range. The result has
// length deg p + deg q + 1; multiplying by the zero polynomial yields the
// zero polynomial, not a run of zeros of nontrivial length.
// Complexity: O(deg p · deg q) time, O(deg p + deg q) memory.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	name := compose(p.name, "*", q.name)
	if p.IsZero() || q.IsZero() {
		return NewNamed(name, nil)
	}

	coeffs := make([]float64, len(p.coeffs)+len(q.coeffs)-1)
	for n := range coeffs {
		lo := n - len(q.coeffs) + 1
		if lo < 0 {
			lo = 0
		}
		hi := n
		if hi > len(p.coeffs)-1 {
			hi = len(p.coeffs) - 1
		}
		for k := lo; k <= hi; k++ {
			coeffs[n] += p.coeffs[k] * q.coeffs[n-k]
		}
	}

	return NewNamed(name, coeffs)
}

// Scale returns p · c with every coefficient scaled by the constant.
// Complexity: O(deg p).
func (p Polynomial) Scale(c float64) Polynomial {
	coeffs := p.Coeffs()
	for i := range coeffs {
		coeffs[i] *= c
	}

	return NewNamed(compose(p.name, "*", fmtScalar(c)), coeffs)
}

// DivScalar returns p / c with every coefficient divided by the constant.
// Division by zero is rejected with ErrDivisionByZero instead of silently
// producing infinities. Division by a non-constant polynomial is not
// supported anywhere in this package.
// Complexity: O(deg p).
func (p Polynomial) DivScalar(c float64) (Polynomial, error) {
	if c == 0 {
		return Zero(), ErrDivisionByZero
	}

	coeffs := p.Coeffs()
	for i := range coeffs {
		coeffs[i] /= c
	}

	return NewNamed(compose(p.name, "/", fmtScalar(c)), coeffs), nil
}
