package plot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	canvasWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	axisGray    = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	gridGray    = color.RGBA{R: 221, G: 221, B: 221, A: 255}
	inkBlack    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// newCanvas allocates a white RGBA image
func newCanvas(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(canvasWhite), image.Point{}, draw.Src)
	return img
}

// fillRect fills the rectangle [x0,x1) x [y0,y1)
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Src)
}

func drawHLine(img *image.RGBA, x0, x1, y int, c color.Color) {
	fillRect(img, x0, y, x1, y+1, c)
}

func drawVLine(img *image.RGBA, x, y0, y1 int, c color.Color) {
	fillRect(img, x, y0, x+1, y1, c)
}

// strokeRect draws a one pixel rectangle outline
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	drawHLine(img, x0, x1, y0, c)
	drawHLine(img, x0, x1, y1-1, c)
	drawVLine(img, x0, y0, y1, c)
	drawVLine(img, x1-1, y0, y1, c)
}

// drawString renders s with its baseline at (x, y)
func drawString(img *image.RGBA, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawStringCentered renders s horizontally centered on x with baseline y
func drawStringCentered(img *image.RGBA, x, y int, s string, c color.Color) {
	drawString(img, x-stringWidth(s)/2, y, s, c)
}

// stringWidth returns the pixel width of s in the fixed 7x13 face
func stringWidth(s string) int {
	return len(s) * basicfont.Face7x13.Advance
}

func encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
