package stats

import (
	"goeda/internal/errors"
)

// Bounds are the IQR fences for outlier detection:
// lower = Q1 - 1.5*IQR, upper = Q3 + 1.5*IQR.
type Bounds struct {
	Lower float64
	Upper float64
}

// OutlierBounds computes the IQR fences for the given values.
func OutlierBounds(values []float64) (Bounds, error) {
	if len(values) == 0 {
		return Bounds{}, errors.EmptyData("no values for outlier bounds")
	}

	q1 := Quantile(values, 0.25)
	q3 := Quantile(values, 0.75)
	iqr := q3 - q1

	return Bounds{
		Lower: q1 - 1.5*iqr,
		Upper: q3 + 1.5*iqr,
	}, nil
}

// Contains reports whether v lies inside the fences. A value is an outlier
// when it falls strictly outside [Lower, Upper].
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// CountOutliers counts values strictly outside the IQR fences.
func CountOutliers(values []float64) (int, error) {
	bounds, err := OutlierBounds(values)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, v := range values {
		if !bounds.Contains(v) {
			count++
		}
	}
	return count, nil
}
