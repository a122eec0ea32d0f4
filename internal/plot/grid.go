package plot

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"goeda/internal/errors"
)

// GridColumns returns the number of columns of the near-square subplot grid
// for n subplots: ceil(sqrt(n)).
func GridColumns(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// GridRows returns the number of rows for n subplots laid out over cols
// columns: ceil(n / cols).
func GridRows(n, cols int) int {
	if n <= 0 || cols <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n) / float64(cols)))
}

// ComposeGrid tiles the PNG-encoded subplots left to right, top to bottom
// into a single figure with GridColumns(n) columns. Unused trailing grid
// cells are left blank. The composite PNG is written to w.
func ComposeGrid(w io.Writer, cells [][]byte) error {
	if len(cells) == 0 {
		return errors.EmptyData("no subplots to compose")
	}

	images := make([]image.Image, len(cells))
	cellW, cellH := 0, 0
	for i, cell := range cells {
		img, err := png.Decode(bytes.NewReader(cell))
		if err != nil {
			return errors.Wrap(err, "failed to decode subplot")
		}
		images[i] = img
		if b := img.Bounds(); b.Dx() > cellW {
			cellW = b.Dx()
		}
		if b := img.Bounds(); b.Dy() > cellH {
			cellH = b.Dy()
		}
	}

	cols := GridColumns(len(cells))
	rows := GridRows(len(cells), cols)

	canvas := newCanvas(cols*cellW, rows*cellH)
	for i, img := range images {
		x := (i % cols) * cellW
		y := (i / cols) * cellH
		target := image.Rect(x, y, x+img.Bounds().Dx(), y+img.Bounds().Dy())
		draw.Draw(canvas, target, img, img.Bounds().Min, draw.Src)
	}

	return encodePNG(w, canvas)
}
