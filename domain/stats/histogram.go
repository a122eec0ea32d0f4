package stats

import (
	"math"

	"goeda/internal/errors"
)

// HistogramBin is one equal-width bin of a frequency histogram.
type HistogramBin struct {
	From  float64
	To    float64
	Count int
}

// Histogram bins values into the given number of equal-width bins spanning
// [min, max]. The last bin is closed on both sides so the maximum lands in it.
func Histogram(values []float64, bins int) ([]HistogramBin, error) {
	if len(values) == 0 {
		return nil, errors.EmptyData("no values for histogram")
	}
	if bins < 1 {
		return nil, errors.BadInput("histogram bin count must be positive")
	}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV == minV {
		maxV = minV + 1e-9
	}

	width := (maxV - minV) / float64(bins)
	result := make([]HistogramBin, bins)
	for i := range result {
		result[i] = HistogramBin{
			From: minV + float64(i)*width,
			To:   minV + float64(i+1)*width,
		}
	}

	for _, v := range values {
		idx := int(math.Floor((v - minV) / width))
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		result[idx].Count++
	}

	return result, nil
}
