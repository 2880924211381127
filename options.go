package overlay

import (
	"image/color"
	"io"
	"os"

	"github.com/tdewolff/canvas"
)

const mmPerPt = 25.4 / 72.0
const mmPerInch = 25.4

// Options are the rendering parameters shared by all styles. Sizes of strokes and text are in points, the page size in millimeters.
type Options struct {
	AccentColor color.RGBA // strokes, arrow heads, label boxes and markers
	TextColor   color.RGBA // label text on the accent box
	FontFamily  string
	FontSize    float64
	LineWidth   float64

	Width, Height float64
	Resolution    canvas.Resolution

	MinifySVG bool
	Stdout    io.Writer // receives the confirmation line, nil discards it
}

// DefaultOptions renders an 8x4 inch page at 300 DPI in cyan with IBM Plex Mono.
var DefaultOptions = Options{
	AccentColor: canvas.Hex("#00E5FF"),
	TextColor:   canvas.Hex("#1A222D"),
	FontFamily:  "IBM Plex Mono",
	FontSize:    40.0,
	LineWidth:   2.5,
	Width:       8.0 * mmPerInch,
	Height:      4.0 * mmPerInch,
	Resolution:  canvas.DPI(300.0),
	Stdout:      os.Stdout,
}
