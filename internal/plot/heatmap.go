package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"goeda/internal/errors"
)

// Diverging ramp for correlation values: dark blue at -1 through white at 0
// to deep teal-green at +1.
var (
	heatLow  = color.RGBA{R: 37, G: 52, B: 148, A: 255}
	heatMid  = color.RGBA{R: 247, G: 247, B: 247, A: 255}
	heatHigh = color.RGBA{R: 0, G: 109, B: 91, A: 255}
)

// HeatmapConfig describes an annotated correlation heatmap.
type HeatmapConfig struct {
	Title  string
	Labels []string
	Matrix [][]float64
	Width  int
	Height int
}

// RenderHeatmap draws the matrix as a colored grid annotated with each cell
// value, labeled on both axes, and writes the PNG to w.
func RenderHeatmap(w io.Writer, cfg HeatmapConfig) error {
	n := len(cfg.Matrix)
	if n == 0 || len(cfg.Labels) != n {
		return errors.BadInput("heatmap needs a square matrix with matching labels")
	}
	if cfg.Width == 0 {
		cfg.Width = 180 + n*90
	}
	if cfg.Height == 0 {
		cfg.Height = 120 + n*60
	}

	const (
		marginLeft   = 150
		marginTop    = 50
		marginBottom = 60
		marginRight  = 20
	)

	plotW := cfg.Width - marginLeft - marginRight
	plotH := cfg.Height - marginTop - marginBottom
	cellW := plotW / n
	cellH := plotH / n

	img := newCanvas(cfg.Width, cfg.Height)
	drawStringCentered(img, cfg.Width/2, marginTop-25, cfg.Title, inkBlack)

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			v := cfg.Matrix[row][col]
			x0 := marginLeft + col*cellW
			y0 := marginTop + row*cellH
			fillRect(img, x0, y0, x0+cellW, y0+cellH, heatColor(v))

			label := "n/a"
			if !math.IsNaN(v) {
				label = fmt.Sprintf("%.2f", v)
			}
			drawStringCentered(img, x0+cellW/2, y0+cellH/2+4, label, annotationInk(v))
		}
	}

	// Cell borders and axis labels.
	for i := 0; i <= n; i++ {
		drawHLine(img, marginLeft, marginLeft+n*cellW, marginTop+i*cellH, gridGray)
		drawVLine(img, marginLeft+i*cellW, marginTop, marginTop+n*cellH, gridGray)
	}
	for i, label := range cfg.Labels {
		text := truncateLabel(label, (marginLeft-10)/7)
		drawString(img, marginLeft-10-stringWidth(text), marginTop+i*cellH+cellH/2+4, text, axisGray)
		drawStringCentered(img, marginLeft+i*cellW+cellW/2, marginTop+n*cellH+18, truncateLabel(label, cellW/7), axisGray)
	}

	return encodePNG(w, img)
}

// heatColor maps a correlation in [-1, 1] onto the diverging ramp
func heatColor(v float64) color.RGBA {
	if math.IsNaN(v) {
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	if v < 0 {
		return lerpColor(heatMid, heatLow, -v)
	}
	return lerpColor(heatMid, heatHigh, v)
}

// annotationInk picks black or white text depending on cell darkness
func annotationInk(v float64) color.RGBA {
	if math.Abs(v) > 0.6 && !math.IsNaN(v) {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return inkBlack
}

func lerpColor(from, to color.RGBA, t float64) color.RGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + t*(float64(b)-float64(a)))
	}
	return color.RGBA{R: lerp(from.R, to.R), G: lerp(from.G, to.G), B: lerp(from.B, to.B), A: 255}
}

func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if max < 5 || len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
