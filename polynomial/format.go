package polynomial

import (
	"strconv"
	"strings"
)

// String renders the polynomial as its name followed by the coefficient
// sequence, constant term first:
//
//	p ≡ [-7.31, 33, -1.62, 0, 0, 12.8]
//
// Coefficients are printed with up to 12 significant digits. The zero
// polynomial renders as an empty sequence.
func (p Polynomial) String() string {
	return p.Render(func(c float64) string {
		return strconv.FormatFloat(c, 'g', 12, 64)
	})
}

// Render renders the polynomial like String but delegates each coefficient
// to the given formatting hook, called once per coefficient in increasing
// power order. The hook must be a pure function; Render itself carries no
// display state. Pass rational.Rationalise to show coefficients as exact
// fractions.
func (p Polynomial) Render(format func(float64) string) string {
	var sb strings.Builder
	sb.WriteString(p.name)
	sb.WriteString(" ≡ [")
	for i, c := range p.coeffs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(format(c))
	}
	sb.WriteString("]")

	return sb.String()
}
