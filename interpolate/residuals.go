package interpolate

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/lagrange/polynomial"
)

// Residuals evaluates p at every sample x and returns the absolute errors
// |p(xs[i]) − ys[i]|, in sample order. Length-mismatched inputs use the
// overlapping prefix; an empty overlap returns ErrNoSamples.
// Complexity: O(n·deg p).
func Residuals(p polynomial.Polynomial, xs, ys []float64) ([]float64, error) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 0 {
		return nil, ErrNoSamples
	}

	res := make([]float64, n)
	for i := 0; i < n; i++ {
		d := p.Evaluate(xs[i]) - ys[i]
		if d < 0 {
			d = -d
		}
		res[i] = d
	}

	return res, nil
}

// Precision summarizes how well p reproduces the samples: the maximum,
// mean, median and standard deviation of the absolute residuals. An exact
// interpolant reports a Max within rounding noise of zero; a least-squares
// Fit over noisy data reports the spread it accepted.
// Complexity: O(n·deg p + n log n).
func Precision(p polynomial.Polynomial, xs, ys []float64) (PrecisionStats, error) {
	res, err := Residuals(p, xs, ys)
	if err != nil {
		return PrecisionStats{}, err
	}

	var ps PrecisionStats
	data := stats.Float64Data(res)
	if ps.Max, err = stats.Max(data); err != nil {
		return PrecisionStats{}, fmt.Errorf("interpolate: residual stats: %w", err)
	}
	if ps.Mean, err = stats.Mean(data); err != nil {
		return PrecisionStats{}, fmt.Errorf("interpolate: residual stats: %w", err)
	}
	if ps.Median, err = stats.Median(data); err != nil {
		return PrecisionStats{}, fmt.Errorf("interpolate: residual stats: %w", err)
	}
	if ps.StdDev, err = stats.StdDevP(data); err != nil {
		return PrecisionStats{}, fmt.Errorf("interpolate: residual stats: %w", err)
	}

	return ps, nil
}
