package rational

import (
	"errors"
	"math"
	"strconv"
)

var (
	// ErrInvalidBound indicates a maximum denominator below 1.
	ErrInvalidBound = errors.New("rational: max denominator must be at least 1")

	// ErrNotFinite indicates a NaN or infinite input value.
	ErrNotFinite = errors.New("rational: value is not finite")

	// ErrOutOfRange indicates a value whose integer part does not fit in int64.
	ErrOutOfRange = errors.New("rational: value exceeds the integer range")

	// ErrZeroDenominator indicates an explicit fraction with denominator 0.
	ErrZeroDenominator = errors.New("rational: zero denominator")
)

// DefaultMaxDenominator is the denominator bound used by Rationalise.
const DefaultMaxDenominator int64 = 1_000_000

// scaleDenominator is the large fixed denominator used to seed the
// continued-fraction search with a high-precision first approximation.
const scaleDenominator int64 = 1_000_000_000_000 // 10¹²

// maxMagnitude is the smallest float64 magnitude whose truncation no longer
// fits in int64.
const maxMagnitude = float64(1 << 63)

// Rational is a normalized fraction: Den ≥ 1, sign carried on Num, reduced
// to lowest terms. The zero value is not normalized; build values with New
// or Approximate.
type Rational struct {
	Num int64
	Den int64
}

// New builds a normalized Rational from an explicit numerator and
// denominator. A zero denominator is rejected with ErrZeroDenominator.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	neg := (num < 0) != (den < 0)
	if num < 0 {
		num = -num
	}
	if den < 0 {
		den = -den
	}

	return normalized(neg, num, den), nil
}

// Value returns the fraction as a float64.
func (r Rational) Value() float64 {
	return float64(r.Num) / float64(r.Den)
}

// String renders the fraction as "N/D", or just "N" when the denominator
// is 1 — integers never carry a "/1" suffix.
func (r Rational) String() string {
	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10)
	}

	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
}

// Approximate finds the best rational approximation of x whose denominator
// does not exceed maxDenominator, as a reduced fraction. The construction
// follows the classical limit-denominator algorithm over continued-fraction
// convergents; see the package documentation for the outline.
//
// maxDenominator == 1 degenerates to the nearest integer. Non-finite
// values and values whose integer part overflows int64 are rejected
// explicitly rather than corrupting the integer recurrence.
//
// Complexity: O(log maxDenominator) iterations, O(1) memory.
func Approximate(x float64, maxDenominator int64) (Rational, error) {
	if maxDenominator < 1 {
		return Rational{}, ErrInvalidBound
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Rational{}, ErrNotFinite
	}
	if x >= maxMagnitude || x <= -maxMagnitude {
		return Rational{}, ErrOutOfRange
	}

	// Exact integers (including zero) need no search at all.
	if t := math.Trunc(x); t == x {
		return Rational{Num: int64(t), Den: 1}, nil
	}

	// Separate the sign from the magnitude so the recurrence only ever
	// sees positive values; the sign is reattached on the numerator at
	// the end.
	neg := x < 0
	v := math.Abs(x)

	// High-precision first approximation: scale by 10¹², round, reduce.
	// The scale backs off for very large magnitudes so the numerator
	// cannot overflow int64.
	d := scaleDenominator
	for d > 1 && v > float64(math.MaxInt64)/float64(d) {
		d /= 10
	}
	n := int64(math.Round(v * float64(d)))
	if g := gcd(n, d); g > 1 {
		n, d = n/g, d/g
	}
	if d <= maxDenominator {
		return normalized(neg, n, d), nil
	}

	// Continued-fraction recurrence over the reduced fraction n/d. Seeds
	// are the classical pair 0/1, 1/0; d starts positive (it is the
	// reduced scale denominator, above maxDenominator ≥ 1), and the first
	// candidate denominator q₂ is always 1 ≤ maxDenominator, so the loop
	// runs at least once and q1 ≥ 1 holds after it. The remainder can
	// only reach 0 on a step whose denominator exceeds the bound, so the
	// quotient n/d never divides by zero.
	p0, q0, p1, q1 := int64(0), int64(1), int64(1), int64(0)
	for {
		a := n / d
		q2 := q0 + a*q1
		if q2 > maxDenominator {
			break
		}
		p0, p1 = p1, p0+a*p1
		q0, q1 = q1, q2
		n, d = d, n-a*d
	}

	// Two candidates remain: the last convergent p1/q1, and the largest
	// semiconvergent (p0+k·p1)/(q0+k·q1) still within the bound. Keep the
	// closer one; an exact tie keeps the convergent, which has the
	// smaller denominator.
	k := (maxDenominator - q0) / q1
	semiN, semiD := p0+k*p1, q0+k*q1
	convErr := math.Abs(float64(p1)/float64(q1) - v)
	semiErr := math.Abs(float64(semiN)/float64(semiD) - v)
	if convErr <= semiErr {
		return normalized(neg, p1, q1), nil
	}

	return normalized(neg, semiN, semiD), nil
}

// Rationalise renders x as its best rational approximation with the
// default denominator bound of 1,000,000. It is shaped as a pure
// coefficient-formatting hook: pass it to polynomial.Render to display
// coefficients as exact fractions. Values the approximation cannot handle
// (non-finite, out of integer range) fall back to plain decimal notation.
func Rationalise(x float64) string {
	r, err := Approximate(x, DefaultMaxDenominator)
	if err != nil {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	return r.String()
}

// normalized reduces n/d by their GCD and reattaches the sign to the
// numerator. Expects n ≥ 0 and d ≥ 1.
func normalized(neg bool, n, d int64) Rational {
	if g := gcd(n, d); g > 1 {
		n, d = n/g, d/g
	}
	if neg {
		n = -n
	}

	return Rational{Num: n, Den: d}
}

// gcd computes the greatest common divisor of two non-negative integers by
// the Euclidean algorithm; gcd(0, n) == n.
func gcd(m, n int64) int64 {
	for n != 0 {
		m, n = n, m%n
	}

	return m
}
