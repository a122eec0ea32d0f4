package stats

import (
	"fmt"
	"sort"

	"goeda/internal/errors"
)

// Bin is one quantile bin: a half-open value range with a display label and
// the number of values that fell into it.
type Bin struct {
	Lower float64
	Upper float64
	Label string
	Count int
}

// QuantileBins partitions values into up to n quantile-based bins (equal
// population by rank). Duplicate edges produced by ties are collapsed, so
// fewer than n bins may come back. Labels show the integer-truncated edge
// range with the given currency unit appended.
func QuantileBins(values []float64, n int, unit string) ([]Bin, error) {
	if len(values) == 0 {
		return nil, errors.EmptyData("no values to bin")
	}
	if n < 1 {
		return nil, errors.BadInput("bin count must be positive")
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	// Quantile edges at i/n for i = 0..n, with consecutive duplicates dropped.
	edges := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		edge := Quantile(sorted, float64(i)/float64(n))
		if len(edges) == 0 || edge > edges[len(edges)-1] {
			edges = append(edges, edge)
		}
	}
	if len(edges) < 2 {
		return nil, errors.BadInput("all values identical, cannot form bins")
	}

	bins := make([]Bin, len(edges)-1)
	for i := range bins {
		bins[i] = Bin{
			Lower: edges[i],
			Upper: edges[i+1],
			Label: fmt.Sprintf("%d %s - %d %s", int64(edges[i]), unit, int64(edges[i+1]), unit),
		}
	}

	// Intervals are right-closed; the first interval also includes its lower
	// edge so the minimum value is not dropped.
	for _, v := range sorted {
		for i := range bins {
			if v <= bins[i].Upper && (i == 0 || v > bins[i].Lower) {
				bins[i].Count++
				break
			}
		}
	}

	return bins, nil
}
