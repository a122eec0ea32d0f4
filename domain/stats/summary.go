package stats

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"

	"goeda/internal/errors"
)

// Summary holds the five-number summary plus count, mean and spread for a
// numeric column, mirroring a describe() table row.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe computes summary statistics over the given values. Missing cells
// are expected to be dropped by the caller.
func Describe(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, errors.EmptyData("no values to describe")
	}

	mean, err := mstats.Mean(values)
	if err != nil {
		return Summary{}, err
	}

	// Sample standard deviation (N-1 denominator), matching describe tables.
	stdDev := 0.0
	if len(values) > 1 {
		stdDev, err = mstats.StandardDeviationSample(values)
		if err != nil {
			return Summary{}, err
		}
	}

	min, err := mstats.Min(values)
	if err != nil {
		return Summary{}, err
	}
	max, err := mstats.Max(values)
	if err != nil {
		return Summary{}, err
	}
	median, err := mstats.Median(values)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Count:  len(values),
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Q1:     Quantile(values, 0.25),
		Median: median,
		Q3:     Quantile(values, 0.75),
		Max:    max,
	}, nil
}

// Quantile computes the q-th quantile (0 <= q <= 1) using linear
// interpolation between order statistics. The outlier-bound and binning
// contracts require the interpolating estimator, which is not what the
// nearest-rank percentile in the stats library computes.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
