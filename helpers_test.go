package overlay

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/test"
)

var testResolution = canvas.DPI(100.0)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	opts := DefaultOptions
	opts.Resolution = testResolution
	opts.Stdout = nil
	r, err := NewRenderer(&opts)
	test.Error(t, err)
	return r
}

func renderPNG(t *testing.T, r *Renderer, text string, style Style) image.Image {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "overlay.png")
	test.Error(t, r.Render(Request{Text: text, Style: style, Filename: filename}))

	f, err := os.Open(filename)
	test.Error(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.Error(t, err)
	return img
}

// pixelAt returns the pixel at a page position in millimeters, with the origin in the bottom-left corner.
func pixelAt(img image.Image, x, y float64) color.NRGBA {
	dpmm := testResolution.DPMM()
	b := img.Bounds()
	px := b.Min.X + int(math.Floor(x*dpmm))
	py := b.Max.Y - 1 - int(math.Floor(y*dpmm))
	return color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)
}

func isAccent(c color.NRGBA) bool {
	return 200 < c.A && c.R < 60 && 180 < c.G && 200 < c.B
}

func eachPixel(img image.Image, f func(c color.NRGBA) bool) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !f(color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)) {
				return false
			}
		}
	}
	return true
}

// layoutOf returns the painter a renderer would use for req, to look up positions of drawn primitives.
func layoutOf(r *Renderer, text string, style Style) *painter {
	return r.newPainter(canvas.New(r.opts.Width, r.opts.Height), Request{Text: text, Style: style})
}
