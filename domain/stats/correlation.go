package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"goeda/internal/errors"
)

// CorrelationMatrix computes the pairwise Pearson correlation matrix over the
// given columns. Each pair is computed over the rows where both columns are
// present (pairwise-complete observations), so columns carrying NaN cells do
// not poison the whole matrix.
func CorrelationMatrix(columns [][]float64) ([][]float64, error) {
	if len(columns) == 0 {
		return nil, errors.EmptyData("no columns for correlation")
	}

	m := len(columns)
	matrix := make([][]float64, m)
	for i := range matrix {
		matrix[i] = make([]float64, m)
		matrix[i][i] = 1
	}

	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			r := pairwiseCorrelation(columns[i], columns[j])
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}

	return matrix, nil
}

func pairwiseCorrelation(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}

	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for k := 0; k < n; k++ {
		if math.IsNaN(x[k]) || math.IsNaN(y[k]) {
			continue
		}
		xs = append(xs, x[k])
		ys = append(ys, y[k])
	}
	if len(xs) < 2 {
		return math.NaN()
	}

	return stat.Correlation(xs, ys, nil)
}
