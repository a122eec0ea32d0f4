package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"goeda/domain/stats"
	"goeda/internal/errors"
)

// NamedValues is one column of values to draw as a box on the shared axes.
type NamedValues struct {
	Name   string
	Values []float64
}

// BoxPlotConfig describes a box-and-whisker figure.
type BoxPlotConfig struct {
	Title   string
	Columns []NamedValues
	Width   int
	Height  int
}

// RenderBoxPlot draws one box-and-whisker glyph per column on shared axes:
// the box spans Q1..Q3 with a line at the median, whiskers reach the
// furthest values within 1.5 IQR of the box, and values beyond the whiskers
// are drawn as individual flier points. The PNG is written to w.
func RenderBoxPlot(w io.Writer, cfg BoxPlotConfig) error {
	if len(cfg.Columns) == 0 {
		return errors.EmptyData("no columns for box plot")
	}
	if cfg.Width == 0 {
		cfg.Width = 180 + len(cfg.Columns)*110
	}
	if cfg.Height == 0 {
		cfg.Height = 560
	}

	const (
		marginLeft   = 90
		marginTop    = 50
		marginBottom = 70
		marginRight  = 20
	)

	globalMin, globalMax := math.Inf(1), math.Inf(-1)
	for _, col := range cfg.Columns {
		for _, v := range col.Values {
			if v < globalMin {
				globalMin = v
			}
			if v > globalMax {
				globalMax = v
			}
		}
	}
	if math.IsInf(globalMin, 1) {
		return errors.EmptyData("box plot columns contain no values")
	}
	if globalMax == globalMin {
		globalMax = globalMin + 1
	}

	plotH := cfg.Height - marginTop - marginBottom
	plotW := cfg.Width - marginLeft - marginRight
	slotW := plotW / len(cfg.Columns)

	toY := func(v float64) int {
		frac := (v - globalMin) / (globalMax - globalMin)
		return marginTop + plotH - int(frac*float64(plotH))
	}

	img := newCanvas(cfg.Width, cfg.Height)
	drawStringCentered(img, cfg.Width/2, marginTop-25, cfg.Title, inkBlack)

	// Horizontal grid with value labels.
	for i := 0; i <= 5; i++ {
		v := globalMin + float64(i)*(globalMax-globalMin)/5
		y := toY(v)
		drawHLine(img, marginLeft, marginLeft+plotW, y, gridGray)
		label := fmt.Sprintf("%.4g", v)
		drawString(img, marginLeft-8-stringWidth(label), y+4, label, axisGray)
	}

	for i, col := range cfg.Columns {
		values := col.Values
		if len(values) == 0 {
			continue
		}

		summary, err := stats.Describe(values)
		if err != nil {
			return err
		}
		bounds, err := stats.OutlierBounds(values)
		if err != nil {
			return err
		}

		// Whiskers run to the furthest values still inside the fences.
		whiskerLow, whiskerHigh := summary.Max, summary.Min
		for _, v := range values {
			if bounds.Contains(v) {
				if v < whiskerLow {
					whiskerLow = v
				}
				if v > whiskerHigh {
					whiskerHigh = v
				}
			}
		}

		cx := marginLeft + i*slotW + slotW/2
		boxW := slotW * 3 / 5
		x0, x1 := cx-boxW/2, cx+boxW/2
		fill := barPalette[i%len(barPalette)]
		boxColor := color.RGBA{R: fill.R, G: fill.G, B: fill.B, A: 255}

		// Whisker stem, caps, box, median.
		drawVLine(img, cx, toY(whiskerHigh), toY(summary.Q3), axisGray)
		drawVLine(img, cx, toY(summary.Q1), toY(whiskerLow), axisGray)
		drawHLine(img, cx-boxW/4, cx+boxW/4, toY(whiskerHigh), axisGray)
		drawHLine(img, cx-boxW/4, cx+boxW/4, toY(whiskerLow), axisGray)
		fillRect(img, x0, toY(summary.Q3), x1, toY(summary.Q1), boxColor)
		strokeRect(img, x0, toY(summary.Q3), x1, toY(summary.Q1), axisGray)
		drawHLine(img, x0, x1, toY(summary.Median), inkBlack)

		// Fliers.
		for _, v := range values {
			if !bounds.Contains(v) {
				y := toY(v)
				fillRect(img, cx-2, y-2, cx+2, y+2, boxColor)
			}
		}

		drawStringCentered(img, cx, marginTop+plotH+20, truncateLabel(col.Name, slotW/7), axisGray)
	}

	// Axis frame.
	drawVLine(img, marginLeft, marginTop, marginTop+plotH, axisGray)
	drawHLine(img, marginLeft, marginLeft+plotW, marginTop+plotH, axisGray)

	return encodePNG(w, img)
}
