package interpolate

import "errors"

var (
	// ErrInsufficientPoints indicates fewer than two usable sample points.
	ErrInsufficientPoints = errors.New("interpolate: at least two points are required")

	// ErrDuplicateAbscissa indicates two sample points sharing an
	// x-coordinate; the offending value is attached by the caller-facing
	// wrapper. Distinctness is checked by exact equality, not tolerance.
	ErrDuplicateAbscissa = errors.New("interpolate: duplicate x-coordinate")

	// ErrNonFiniteSample indicates a NaN or infinite sample coordinate.
	ErrNonFiniteSample = errors.New("interpolate: non-finite sample coordinate")

	// ErrBadDegree indicates a negative fit degree, or one that the number
	// of sample points cannot determine.
	ErrBadDegree = errors.New("interpolate: invalid fit degree")

	// ErrNoSamples indicates an empty sample set where at least one point
	// is needed (residual diagnostics).
	ErrNoSamples = errors.New("interpolate: no sample points")
)

// PrecisionStats summarizes the absolute residuals |P(xᵢ) − yᵢ| of a
// polynomial over a sample set. All fields are in the y units.
type PrecisionStats struct {
	// Max is the worst absolute residual.
	Max float64

	// Mean is the arithmetic mean of the absolute residuals.
	Mean float64

	// Median is the middle absolute residual.
	Median float64

	// StdDev is the population standard deviation of the absolute residuals.
	StdDev float64
}
