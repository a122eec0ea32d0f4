package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
)

// Skewness computes sample skewness using the adjusted Fisher-Pearson
// coefficient (third standardized moment with small-sample bias correction).
func Skewness(values []float64) float64 {
	if len(values) < 3 {
		return 0
	}

	mean, err := mstats.Mean(values)
	if err != nil {
		return 0
	}
	stdDev, err := mstats.StandardDeviation(values)
	if err != nil || stdDev == 0 {
		return 0
	}

	n := float64(len(values))
	sumCubed := 0.0
	for _, x := range values {
		d := (x - mean) / stdDev
		sumCubed += d * d * d
	}

	skew := sumCubed / n

	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skew * correction
}

// Round3 rounds to three decimal places, the precision used when annotating
// skewness bars.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
