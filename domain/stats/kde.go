package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// DensityPoint is one sample of an estimated probability density curve.
type DensityPoint struct {
	X     float64
	Value float64
}

// KDE estimates the probability density of values with a Gaussian kernel,
// sampled at the given number of evenly spaced points across the data range.
// Bandwidth follows Scott's rule, sigma * n^(-1/5).
func KDE(values []float64, points int) []DensityPoint {
	if len(values) < 2 || points < 2 {
		return nil
	}

	stdDev, err := mstats.StandardDeviation(values)
	if err != nil || stdDev == 0 {
		return nil
	}

	n := float64(len(values))
	bandwidth := stdDev * math.Pow(n, -0.2)

	minV, _ := mstats.Min(values)
	maxV, _ := mstats.Max(values)
	step := (maxV - minV) / float64(points-1)

	curve := make([]DensityPoint, points)
	for i := 0; i < points; i++ {
		x := minV + float64(i)*step
		sum := 0.0
		for _, v := range values {
			sum += distuv.UnitNormal.Prob((x - v) / bandwidth)
		}
		curve[i] = DensityPoint{X: x, Value: sum / (n * bandwidth)}
	}

	return curve
}
