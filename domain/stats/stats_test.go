package stats

import (
	"math"
	"testing"
)

func TestQuantile_LinearInterpolation(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	// Positions fall between order statistics and must interpolate.
	if got := Quantile(values, 0.25); got != 1.75 {
		t.Errorf("Q1 = %v, want 1.75", got)
	}
	if got := Quantile(values, 0.5); got != 2.5 {
		t.Errorf("median = %v, want 2.5", got)
	}
	if got := Quantile(values, 0.75); got != 3.25 {
		t.Errorf("Q3 = %v, want 3.25", got)
	}
	if got := Quantile(values, 0); got != 1 {
		t.Errorf("q=0 should be min, got %v", got)
	}
	if got := Quantile(values, 1); got != 4 {
		t.Errorf("q=1 should be max, got %v", got)
	}
}

func TestDescribe_FiveNumberSummary(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	summary, err := Describe(values)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}

	if summary.Count != 8 {
		t.Errorf("Count = %d, want 8", summary.Count)
	}
	if summary.Mean != 5 {
		t.Errorf("Mean = %v, want 5", summary.Mean)
	}
	if summary.Min != 2 || summary.Max != 9 {
		t.Errorf("Min/Max = %v/%v, want 2/9", summary.Min, summary.Max)
	}
	if summary.Median != 4.5 {
		t.Errorf("Median = %v, want 4.5", summary.Median)
	}
	// Sample standard deviation with N-1 denominator.
	if math.Abs(summary.StdDev-2.138089935299395) > 1e-9 {
		t.Errorf("StdDev = %v, want ~2.138", summary.StdDev)
	}
}

func TestDescribe_Empty(t *testing.T) {
	if _, err := Describe(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestOutlierBounds_IQRFences(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	bounds, err := OutlierBounds(values)
	if err != nil {
		t.Fatalf("OutlierBounds failed: %v", err)
	}

	// Q1 = 3.25, Q3 = 7.75, IQR = 4.5
	if math.Abs(bounds.Lower-(-3.5)) > 1e-9 {
		t.Errorf("Lower = %v, want -3.5", bounds.Lower)
	}
	if math.Abs(bounds.Upper-14.5) > 1e-9 {
		t.Errorf("Upper = %v, want 14.5", bounds.Upper)
	}
}

func TestCountOutliers_StrictlyOutsideFences(t *testing.T) {
	// A value sitting exactly on a fence is not an outlier.
	bounds := Bounds{Lower: -1, Upper: 1}
	if !bounds.Contains(-1) || !bounds.Contains(1) {
		t.Error("fence values should be inside the bounds")
	}
	if bounds.Contains(1.0000001) {
		t.Error("value above upper fence should be outside")
	}
}

func TestCountOutliers_InjectedExtremes(t *testing.T) {
	// 100 values spread uniformly over [0, 100) plus two injected extremes.
	values := make([]float64, 0, 102)
	for i := 0; i < 100; i++ {
		values = append(values, float64(i))
	}
	values = append(values, -1000, 1000)

	count, err := CountOutliers(values)
	if err != nil {
		t.Fatalf("CountOutliers failed: %v", err)
	}
	if count != 2 {
		t.Errorf("outlier count = %d, want exactly 2", count)
	}
}

func TestQuantileBins_FraudScenario(t *testing.T) {
	amounts := []float64{10, 20, 30, 40, 50}

	bins, err := QuantileBins(amounts, 10, "UGX")
	if err != nil {
		t.Fatalf("QuantileBins failed: %v", err)
	}

	total := 0
	for i, bin := range bins {
		total += bin.Count
		if bin.Lower > bin.Upper {
			t.Errorf("bin %d has lower %v > upper %v", i, bin.Lower, bin.Upper)
		}
		if i > 0 && bin.Lower < bins[i-1].Upper {
			t.Errorf("bin %d edges are not non-decreasing", i)
		}
		if bin.Label == "" {
			t.Errorf("bin %d has empty label", i)
		}
	}
	if total != len(amounts) {
		t.Errorf("bin counts sum to %d, want %d", total, len(amounts))
	}
}

func TestQuantileBins_DuplicateEdgesCollapsed(t *testing.T) {
	// Heavy ties force duplicate quantile edges, which must collapse.
	values := []float64{5, 5, 5, 5, 5, 5, 5, 5, 100, 200}

	bins, err := QuantileBins(values, 10, "UGX")
	if err != nil {
		t.Fatalf("QuantileBins failed: %v", err)
	}
	if len(bins) >= 10 {
		t.Errorf("expected fewer than 10 bins after collapsing ties, got %d", len(bins))
	}

	total := 0
	for _, bin := range bins {
		total += bin.Count
	}
	if total != len(values) {
		t.Errorf("bin counts sum to %d, want %d", total, len(values))
	}
}

func TestQuantileBins_AllIdentical(t *testing.T) {
	if _, err := QuantileBins([]float64{3, 3, 3}, 10, "UGX"); err == nil {
		t.Fatal("expected error when all values are identical")
	}
}

func TestSkewness_SymmetricIsZero(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	if got := Skewness(values); math.Abs(got) > 1e-12 {
		t.Errorf("skewness of symmetric data = %v, want 0", got)
	}
}

func TestSkewness_RightTailIsPositive(t *testing.T) {
	values := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 50}
	if got := Skewness(values); got <= 0 {
		t.Errorf("skewness of right-tailed data = %v, want > 0", got)
	}
}

func TestRound3_Deterministic(t *testing.T) {
	cases := map[float64]float64{
		1.23456:  1.235,
		-0.00049: -0.0,
		2.9995:   3.0,
	}
	for in, want := range cases {
		if got := Round3(in); got != want {
			t.Errorf("Round3(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestHistogram_CountsAndEdges(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	bins, err := Histogram(values, 5)
	if err != nil {
		t.Fatalf("Histogram failed: %v", err)
	}
	if len(bins) != 5 {
		t.Fatalf("expected 5 bins, got %d", len(bins))
	}

	total := 0
	for _, bin := range bins {
		total += bin.Count
	}
	if total != len(values) {
		t.Errorf("bin counts sum to %d, want %d", total, len(values))
	}

	// Maximum lands in the last bin rather than falling off the edge.
	if bins[4].Count == 0 {
		t.Error("last bin should contain the maximum value")
	}
}

func TestKDE_IntegratesToOne(t *testing.T) {
	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 6, 7, 8}

	curve := KDE(values, 200)
	if len(curve) != 200 {
		t.Fatalf("expected 200 density points, got %d", len(curve))
	}

	// Trapezoidal integral over the data range should be close to 1 (mass
	// beyond the range is lost to the kernel tails).
	integral := 0.0
	for i := 1; i < len(curve); i++ {
		dx := curve[i].X - curve[i-1].X
		integral += dx * (curve[i].Value + curve[i-1].Value) / 2
	}
	if integral < 0.7 || integral > 1.05 {
		t.Errorf("density integral = %v, want close to 1", integral)
	}
}

func TestCorrelationMatrix_PerfectAndInverse(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}
	z := []float64{5, 4, 3, 2, 1}

	matrix, err := CorrelationMatrix([][]float64{x, y, z})
	if err != nil {
		t.Fatalf("CorrelationMatrix failed: %v", err)
	}

	if math.Abs(matrix[0][1]-1) > 1e-9 {
		t.Errorf("corr(x, y) = %v, want 1", matrix[0][1])
	}
	if math.Abs(matrix[0][2]+1) > 1e-9 {
		t.Errorf("corr(x, z) = %v, want -1", matrix[0][2])
	}
	for i := range matrix {
		if matrix[i][i] != 1 {
			t.Errorf("diagonal[%d] = %v, want 1", i, matrix[i][i])
		}
		for j := range matrix {
			if matrix[i][j] != matrix[j][i] {
				t.Errorf("matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}
}

func TestCorrelationMatrix_PairwiseSkipsMissing(t *testing.T) {
	x := []float64{1, 2, math.NaN(), 4, 5}
	y := []float64{2, 4, 100, 8, 10}

	matrix, err := CorrelationMatrix([][]float64{x, y})
	if err != nil {
		t.Fatalf("CorrelationMatrix failed: %v", err)
	}
	if math.Abs(matrix[0][1]-1) > 1e-9 {
		t.Errorf("corr with NaN row skipped = %v, want 1", matrix[0][1])
	}
}
