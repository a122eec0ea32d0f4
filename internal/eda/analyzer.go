// Package eda provides exploratory descriptive statistics and figure
// rendering for a tabular dataset of financial transactions. The Analyzer
// holds one dataset reference and exposes independent one-shot operations;
// nothing is cached between calls and the dataset is never mutated.
package eda

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"text/tabwriter"

	"goeda/domain/dataset"
	"goeda/domain/stats"
	"goeda/internal/errors"
	"goeda/internal/plot"
)

// Columns referenced by name in the transaction schema.
const (
	AmountColumn = "Amount"
	FraudColumn  = "FraudResult"
)

// fraudSentinel marks a transaction as fraudulent in FraudResult.
const fraudSentinel = 1

// fraudBinCount is the number of quantile bins for fraud amounts.
const fraudBinCount = 10

// currencyUnit suffixes the fraud bin range labels.
const currencyUnit = "UGX"

// CategoricalColumnsOfInterest are the categorical columns whose value
// distributions are worth plotting. Identifier-like columns are excluded
// since their distributions carry no signal.
var CategoricalColumnsOfInterest = []string{
	"CurrencyCode",
	"ProviderId",
	"ProductCategory",
	"ChannelId",
}

const (
	subplotWidth  = 640
	subplotHeight = 440
)

// Analyzer computes descriptive statistics and renders figures for one
// transaction dataset.
type Analyzer struct {
	data *dataset.Dataset
}

// New creates an analyzer over the given dataset
func New(data *dataset.Dataset) *Analyzer {
	return &Analyzer{data: data}
}

// BasicOverview writes the dataset shape and per-column type information.
func (a *Analyzer) BasicOverview(w io.Writer) error {
	columns := a.data.Columns()
	fmt.Fprintf(w, "The data has a shape of: (%d, %d)\n\n", a.data.Rows(), len(columns))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tColumn\tNon-Null Count\tDtype")
	for i, col := range columns {
		nonNull := col.Len() - col.MissingCount()
		fmt.Fprintf(tw, "%d\t%s\t%d non-null\t%s\n", i, col.Name, nonNull, col.Type)
	}
	return tw.Flush()
}

// SummaryStatistics writes a describe-style table for every numeric column:
// count, mean, standard deviation, min, quartiles and max.
func (a *Analyzer) SummaryStatistics(w io.Writer) error {
	numeric := a.data.NumericColumns()
	if len(numeric) == 0 {
		return errors.EmptyData("dataset has no numeric columns")
	}

	summaries := make([]stats.Summary, len(numeric))
	for i, col := range numeric {
		summary, err := stats.Describe(col.NonMissing())
		if err != nil {
			return errors.Wrapf(err, "failed to describe column %s", col.Name)
		}
		summaries[i] = summary
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, col := range numeric {
		fmt.Fprintf(tw, "%s\t", col.Name)
	}
	fmt.Fprintln(tw)

	rows := []struct {
		name  string
		value func(stats.Summary) string
	}{
		{"count", func(s stats.Summary) string { return strconv.Itoa(s.Count) }},
		{"mean", func(s stats.Summary) string { return formatStat(s.Mean) }},
		{"std", func(s stats.Summary) string { return formatStat(s.StdDev) }},
		{"min", func(s stats.Summary) string { return formatStat(s.Min) }},
		{"25%", func(s stats.Summary) string { return formatStat(s.Q1) }},
		{"50%", func(s stats.Summary) string { return formatStat(s.Median) }},
		{"75%", func(s stats.Summary) string { return formatStat(s.Q3) }},
		{"max", func(s stats.Summary) string { return formatStat(s.Max) }},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t", row.name)
		for _, summary := range summaries {
			fmt.Fprintf(tw, "%s\t", row.value(summary))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// MissingValues writes the percentage of missing cells for every column that
// has at least one, in column order.
func (a *Analyzer) MissingValues(w io.Writer) error {
	fmt.Fprintln(w, "These are columns with missing values greater than 0%:")

	found := false
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, col := range a.data.Columns() {
		missing := col.MissingCount()
		if missing == 0 {
			continue
		}
		found = true
		pct := float64(missing) / float64(a.data.Rows()) * 100
		fmt.Fprintf(tw, "%s\t%.6f%%\n", col.Name, pct)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(w, "(none)")
	}
	return nil
}

// NumericalDistribution renders a histogram with a smoothed density curve and
// mean/median markers for every numeric column, composited into a
// near-square subplot grid, as a PNG written to w.
func (a *Analyzer) NumericalDistribution(w io.Writer) error {
	numeric := a.data.NumericColumns()
	if len(numeric) == 0 {
		return errors.EmptyData("dataset has no numeric columns")
	}

	cells := make([][]byte, 0, len(numeric))
	for _, col := range numeric {
		values := col.NonMissing()
		summary, err := stats.Describe(values)
		if err != nil {
			return errors.Wrapf(err, "failed to describe column %s", col.Name)
		}

		var buf bytes.Buffer
		err = plot.RenderDistribution(&buf, plot.DistributionConfig{
			Name:   col.Name,
			Values: values,
			Mean:   summary.Mean,
			Median: summary.Median,
			Width:  subplotWidth,
			Height: subplotHeight,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to plot distribution of %s", col.Name)
		}
		cells = append(cells, buf.Bytes())
	}

	return plot.ComposeGrid(w, cells)
}

// DescribeSkewness renders per-column skewness, sorted ascending, as a bar
// chart annotated with values rounded to three decimals.
func (a *Analyzer) DescribeSkewness(w io.Writer) error {
	numeric := a.data.NumericColumns()
	if len(numeric) == 0 {
		return errors.EmptyData("dataset has no numeric columns")
	}

	return plot.RenderAnnotatedBars(w, plot.BarConfig{
		Title:    "Plot of Skewness values of Numerical Columns",
		XLabel:   "Numerical Columns",
		YLabel:   "Skewness",
		Bars:     skewnessBars(numeric),
		Annotate: func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
	})
}

// CategoricalDistribution renders one annotated bar chart of value counts for
// each of the categorical columns of interest, composited into a near-square
// subplot grid.
func (a *Analyzer) CategoricalDistribution(w io.Writer) error {
	cells := make([][]byte, 0, len(CategoricalColumnsOfInterest))
	for _, name := range CategoricalColumnsOfInterest {
		col, ok := a.data.Column(name)
		if !ok {
			return errors.MissingColumn(name)
		}

		bars := categoryCounts(col)
		if len(bars) == 0 {
			return errors.EmptyData("column " + name + " has no values")
		}

		var buf bytes.Buffer
		err := plot.RenderAnnotatedBars(&buf, plot.BarConfig{
			Title:    fmt.Sprintf("Distribution of %s", name),
			XLabel:   name,
			YLabel:   "Count",
			Bars:     bars,
			Width:    subplotWidth,
			Height:   subplotHeight,
			Annotate: formatCount,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to plot distribution of %s", name)
		}
		cells = append(cells, buf.Bytes())
	}

	return plot.ComposeGrid(w, cells)
}

// CorrelationAnalysis renders the pairwise Pearson correlation matrix over
// numeric columns as an annotated heatmap.
func (a *Analyzer) CorrelationAnalysis(w io.Writer) error {
	numeric := a.data.NumericColumns()
	if len(numeric) == 0 {
		return errors.EmptyData("dataset has no numeric columns")
	}

	names := make([]string, len(numeric))
	columns := make([][]float64, len(numeric))
	for i, col := range numeric {
		names[i] = col.Name
		columns[i] = col.Floats
	}

	matrix, err := stats.CorrelationMatrix(columns)
	if err != nil {
		return err
	}

	return plot.RenderHeatmap(w, plot.HeatmapConfig{
		Title:  "Correlation Matrix Heatmap",
		Labels: names,
		Matrix: matrix,
	})
}

// OutlierBoxPlot renders a box-and-whisker plot per numeric column on shared
// axes.
func (a *Analyzer) OutlierBoxPlot(w io.Writer) error {
	numeric := a.data.NumericColumns()
	if len(numeric) == 0 {
		return errors.EmptyData("dataset has no numeric columns")
	}

	columns := make([]plot.NamedValues, len(numeric))
	for i, col := range numeric {
		columns[i] = plot.NamedValues{Name: col.Name, Values: col.NonMissing()}
	}

	return plot.RenderBoxPlot(w, plot.BoxPlotConfig{
		Title:   "Box-plot of Numerical Columns",
		Columns: columns,
	})
}

// CountOutliers renders the number of IQR-rule outliers per numeric column,
// sorted ascending, as an annotated bar chart.
func (a *Analyzer) CountOutliers(w io.Writer) error {
	numeric := a.data.NumericColumns()
	if len(numeric) == 0 {
		return errors.EmptyData("dataset has no numeric columns")
	}

	bars, err := outlierBars(numeric)
	if err != nil {
		return err
	}

	return plot.RenderAnnotatedBars(w, plot.BarConfig{
		Title:    "Number of Outliers per Numerical Column",
		XLabel:   "Numerical Columns",
		YLabel:   "Num. of Outliers",
		Bars:     bars,
		Annotate: formatCount,
	})
}

// FraudAnalysis bins the amounts of fraudulent transactions into quantile
// bins and renders the per-bin counts as an annotated bar chart.
func (a *Analyzer) FraudAnalysis(w io.Writer) error {
	fraudCol, ok := a.data.Column(FraudColumn)
	if !ok {
		return errors.MissingColumn(FraudColumn)
	}
	amountCol, ok := a.data.Column(AmountColumn)
	if !ok {
		return errors.MissingColumn(AmountColumn)
	}
	if !fraudCol.IsNumeric() || !amountCol.IsNumeric() {
		return errors.BadInput("fraud analysis needs numeric FraudResult and Amount columns")
	}

	amounts := fraudAmounts(fraudCol, amountCol)
	if len(amounts) == 0 {
		return errors.EmptyData("dataset contains no fraudulent transactions")
	}
	sort.Float64s(amounts)

	bins, err := stats.QuantileBins(amounts, fraudBinCount, currencyUnit)
	if err != nil {
		return errors.Wrap(err, "failed to bin fraud amounts")
	}

	bars := make([]plot.Bar, len(bins))
	for i, bin := range bins {
		bars[i] = plot.Bar{Label: bin.Label, Value: float64(bin.Count)}
	}

	return plot.RenderAnnotatedBars(w, plot.BarConfig{
		Title:    "Fraudulent Transactions by Amount Range",
		XLabel:   "Transaction Amount Ranges",
		YLabel:   "Num. Frauds",
		Bars:     bars,
		Annotate: formatCount,
	})
}

// skewnessBars computes rounded skewness per column, sorted ascending.
func skewnessBars(numeric []dataset.Column) []plot.Bar {
	bars := make([]plot.Bar, len(numeric))
	for i, col := range numeric {
		bars[i] = plot.Bar{
			Label: col.Name,
			Value: stats.Round3(stats.Skewness(col.NonMissing())),
		}
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Value < bars[j].Value })
	return bars
}

// outlierBars computes the IQR-rule outlier count per column, sorted ascending.
func outlierBars(numeric []dataset.Column) ([]plot.Bar, error) {
	bars := make([]plot.Bar, len(numeric))
	for i, col := range numeric {
		count, err := stats.CountOutliers(col.NonMissing())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to count outliers in %s", col.Name)
		}
		bars[i] = plot.Bar{Label: col.Name, Value: float64(count)}
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Value < bars[j].Value })
	return bars, nil
}

// categoryCounts tallies the occurrences of each category value and returns
// bars sorted ascending by count, ties broken by label for determinism.
func categoryCounts(col dataset.Column) []plot.Bar {
	counts := make(map[string]int)
	for _, label := range col.Labels {
		if label == "" {
			continue
		}
		counts[label]++
	}

	bars := make([]plot.Bar, 0, len(counts))
	for label, count := range counts {
		bars = append(bars, plot.Bar{Label: label, Value: float64(count)})
	}
	sort.Slice(bars, func(i, j int) bool {
		if bars[i].Value != bars[j].Value {
			return bars[i].Value < bars[j].Value
		}
		return bars[i].Label < bars[j].Label
	})
	return bars
}

// fraudAmounts collects the amounts of rows flagged with the fraud sentinel
func fraudAmounts(fraudCol, amountCol dataset.Column) []float64 {
	var amounts []float64
	for i, flag := range fraudCol.Floats {
		if flag != fraudSentinel || i >= len(amountCol.Floats) {
			continue
		}
		if v := amountCol.Floats[i]; !math.IsNaN(v) {
			amounts = append(amounts, v)
		}
	}
	return amounts
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func formatCount(v float64) string {
	return strconv.Itoa(int(v))
}
