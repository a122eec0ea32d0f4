package plot

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"goeda/internal/errors"
)

// Bar is one labeled bar with the value annotated above it.
type Bar struct {
	Label string
	Value float64
}

// One color per bar, rotating through the palette.
var barPalette = []drawing.Color{
	{R: 79, G: 70, B: 229, A: 255},
	{R: 16, G: 185, B: 129, A: 255},
	{R: 245, G: 158, B: 11, A: 255},
	{R: 239, G: 68, B: 68, A: 255},
	{R: 139, G: 92, B: 246, A: 255},
	{R: 6, G: 182, B: 212, A: 255},
	{R: 236, G: 72, B: 153, A: 255},
	{R: 132, G: 204, B: 22, A: 255},
	{R: 249, G: 115, B: 22, A: 255},
	{R: 99, G: 102, B: 241, A: 255},
}

// BarConfig describes an annotated bar chart.
type BarConfig struct {
	Title    string
	XLabel   string
	YLabel   string
	Bars     []Bar
	Width    int
	Height   int
	Annotate func(float64) string
}

// RenderAnnotatedBars draws a vertical bar chart with each bar annotated by
// its formatted value and writes the PNG to w. Bars keep their given order;
// callers sort beforehand.
func RenderAnnotatedBars(w io.Writer, cfg BarConfig) error {
	if len(cfg.Bars) == 0 {
		return errors.EmptyData("no bars to render")
	}
	if cfg.Width == 0 {
		cfg.Width = 900
	}
	if cfg.Height == 0 {
		cfg.Height = 520
	}
	if cfg.Annotate == nil {
		cfg.Annotate = func(v float64) string { return fmt.Sprintf("%g", v) }
	}

	n := len(cfg.Bars)
	minV, maxV := 0.0, 0.0
	for _, b := range cfg.Bars {
		if b.Value < minV {
			minV = b.Value
		}
		if b.Value > maxV {
			maxV = b.Value
		}
	}
	span := maxV - minV
	if span == 0 {
		span = 1
	}

	series := make([]chart.Series, 0, n+1)
	ticks := make([]chart.Tick, 0, n+2)
	annotations := make([]chart.Value2, 0, n)

	ticks = append(ticks, chart.Tick{Value: -0.6, Label: ""})
	for i, b := range cfg.Bars {
		c := barPalette[i%len(barPalette)]
		series = append(series, chart.HistogramSeries{
			Name: b.Label,
			Style: chart.Style{
				FillColor:   c,
				StrokeColor: c,
			},
			InnerSeries: chart.ContinuousSeries{
				XValues: []float64{float64(i)},
				YValues: []float64{b.Value},
			},
		})
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: b.Label})
		annotations = append(annotations, chart.Value2{
			XValue: float64(i),
			YValue: b.Value,
			Label:  cfg.Annotate(b.Value),
		})
	}
	ticks = append(ticks, chart.Tick{Value: float64(n) - 0.4, Label: ""})

	series = append(series, chart.AnnotationSeries{
		Annotations: annotations,
		Style: chart.Style{
			StrokeColor: chart.ColorAlternateGray,
			FillColor:   drawing.ColorWhite,
		},
	})

	ch := chart.Chart{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 32}},
		XAxis: chart.XAxis{
			Name:      cfg.XLabel,
			Ticks:     ticks,
			Range:     &chart.ContinuousRange{Min: -0.6, Max: float64(n) - 0.4},
			TickStyle: chart.Style{TextRotationDegrees: 45},
		},
		YAxis: chart.YAxis{
			Name: cfg.YLabel,
			Range: &chart.ContinuousRange{
				Min: minV - 0.1*span,
				Max: maxV + 0.2*span,
			},
		},
		Series: series,
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return errors.RenderError("bar chart", err)
	}
	return nil
}
