// Package overlay renders CAD-style dimension arrows and callouts on transparent images, for use as annotations on photos and screenshots.
package overlay

import (
	"fmt"

	"github.com/tdewolff/canvas"
)

// Request describes a single overlay to render.
type Request struct {
	Text     string
	Style    Style
	Filename string
}

// DefaultRequest is a horizontal 12.5 mm measurement written to overlay.png.
var DefaultRequest = Request{
	Text:     "12.5 mm",
	Style:    Horizontal,
	Filename: "overlay.png",
}

// Renderer draws overlays with a fixed set of options and a loaded font. It is not safe for concurrent use.
type Renderer struct {
	opts        Options
	family      *canvas.FontFamily
	substituted bool
}

// NewRenderer loads the font of opts and returns a renderer. Passing nil uses DefaultOptions.
func NewRenderer(opts *Options) (*Renderer, error) {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	family, substituted, err := LoadFontFamily(opts.FontFamily)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		opts:        *opts,
		family:      family,
		substituted: substituted,
	}, nil
}

// Options returns the options of the renderer.
func (r *Renderer) Options() Options {
	return r.opts
}

// FontSubstituted is true when the requested font family was unavailable and the fallback font is used instead.
func (r *Renderer) FontSubstituted() bool {
	return r.substituted
}

// Draw returns the overlay for req on a new transparent canvas. The data space is scaled so that the whole overlay, labels included, stays inside the page. The filename of req is ignored.
func (r *Renderer) Draw(req Request) *canvas.Canvas {
	c := canvas.New(r.opts.Width, r.opts.Height)
	draw(r.newPainter(c, req), req)
	return c
}

func draw(p *painter, req Request) {
	switch req.Style {
	case Horizontal:
		drawHorizontal(p, req.Text)
	case Vertical:
		drawVertical(p, req.Text)
	case Callout:
		drawCallout(p, req.Text)
	case UnknownStyle:
		// nothing is drawn, the empty page is still written
	}
}

// newPainter measures the overlay of req and returns a painter on c whose frame fits it within the page.
func (r *Renderer) newPainter(c *canvas.Canvas, req Request) *painter {
	p := &painter{
		opts: r.opts,
		face: r.family.Face(r.opts.FontSize, r.opts.TextColor, canvas.FontBold, canvas.FontNormal),
	}
	draw(p, req)

	p.frame = fitFrame(r.opts.Width, r.opts.Height, req.Style, p.extents, layoutPad*mmPerPt)
	p.ctx = canvas.NewContext(c)
	p.extents = nil
	return p
}

// Render draws the overlay for req, writes it to req.Filename and prints a confirmation line.
func (r *Renderer) Render(req Request) error {
	c := r.Draw(req)
	if err := Write(req.Filename, c, r.opts); err != nil {
		return err
	}
	if r.opts.Stdout != nil {
		fmt.Fprintf(r.opts.Stdout, "Generated: %s\n", req.Filename)
	}
	return nil
}

// Render writes an overlay with the given text and style name to filename using DefaultOptions. Unrecognized style names produce an empty transparent image.
func Render(text, style, filename string) error {
	r, err := NewRenderer(nil)
	if err != nil {
		return err
	}
	return r.Render(Request{
		Text:     text,
		Style:    ParseStyle(style),
		Filename: filename,
	})
}
