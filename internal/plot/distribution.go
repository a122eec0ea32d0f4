package plot

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"goeda/domain/stats"
	"goeda/internal/errors"
)

// HistogramBinCount is the fixed number of bins used on distribution plots.
const HistogramBinCount = 15

const densitySamples = 200

// DistributionConfig describes a single histogram + density subplot.
type DistributionConfig struct {
	Name   string
	Values []float64
	Mean   float64
	Median float64
	Width  int
	Height int
}

// RenderDistribution draws a binned frequency histogram of the values with a
// smoothed density curve overlaid, plus vertical markers at the mean (black)
// and the median (red). The PNG is written to w.
func RenderDistribution(w io.Writer, cfg DistributionConfig) error {
	if len(cfg.Values) == 0 {
		return errors.EmptyData("no values for distribution plot")
	}
	if cfg.Width == 0 {
		cfg.Width = 640
	}
	if cfg.Height == 0 {
		cfg.Height = 440
	}

	bins, err := stats.Histogram(cfg.Values, HistogramBinCount)
	if err != nil {
		return err
	}

	centers := make([]float64, len(bins))
	counts := make([]float64, len(bins))
	maxCount := 0.0
	for i, bin := range bins {
		centers[i] = (bin.From + bin.To) / 2
		counts[i] = float64(bin.Count)
		if counts[i] > maxCount {
			maxCount = counts[i]
		}
	}

	histogram := chart.HistogramSeries{
		Name: cfg.Name,
		Style: chart.Style{
			FillColor:   barPalette[0].WithAlpha(180),
			StrokeColor: barPalette[0],
		},
		InnerSeries: chart.ContinuousSeries{
			XValues: centers,
			YValues: counts,
		},
	}

	series := []chart.Series{histogram}

	// Density curve scaled from probability to bin-frequency units.
	if curve := stats.KDE(cfg.Values, densitySamples); len(curve) > 0 {
		binWidth := bins[0].To - bins[0].From
		scale := float64(len(cfg.Values)) * binWidth

		xs := make([]float64, len(curve))
		ys := make([]float64, len(curve))
		for i, p := range curve {
			xs[i] = p.X
			ys[i] = p.Value * scale
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "Density",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: drawing.Color{R: 46, G: 94, B: 130, A: 255},
				StrokeWidth: 2,
			},
		})
	}

	top := maxCount * 1.1
	if top == 0 {
		top = 1
	}
	series = append(series,
		chart.ContinuousSeries{
			Name:    "Mean",
			XValues: []float64{cfg.Mean, cfg.Mean},
			YValues: []float64{0, top},
			Style:   chart.Style{StrokeColor: drawing.ColorBlack, StrokeWidth: 1},
		},
		chart.ContinuousSeries{
			Name:    "Median",
			XValues: []float64{cfg.Median, cfg.Median},
			YValues: []float64{0, top},
			Style:   chart.Style{StrokeColor: drawing.ColorRed, StrokeWidth: 1},
		},
	)

	ch := chart.Chart{
		Title:      fmt.Sprintf("Distribution plot of %s", cfg.Name),
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: chart.Style{Padding: chart.Box{Top: 36, Left: 12, Right: 12, Bottom: 12}},
		XAxis:      chart.XAxis{Name: cfg.Name},
		YAxis: chart.YAxis{
			Name:  "Frequency",
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return errors.RenderError("distribution", err)
	}
	return nil
}
