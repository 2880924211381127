package overlay

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/svg"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
)

// Write writes the canvas to filename in the format given by its extension (png, jpg, gif, tif, svg, svgz, pdf, tex). Raster formats use the resolution of opts. The directory of filename must exist.
func Write(filename string, c *canvas.Canvas, opts Options) error {
	if opts.MinifySVG && strings.ToLower(filepath.Ext(filename)) == ".svg" {
		return c.WriteFile(filename, MinifiedSVGWriter)
	}
	return renderers.Write(filename, c, opts.Resolution)
}

// MinifiedSVGWriter writes the canvas as a minified SVG.
func MinifiedSVGWriter(w io.Writer, c *canvas.Canvas) error {
	buf := &bytes.Buffer{}
	r := svg.New(buf, c.W, c.H, nil)
	c.RenderTo(r)
	if err := r.Close(); err != nil {
		return err
	}

	m := minify.New()
	m.AddFunc("image/svg+xml", minifySVG.Minify)
	if err := m.Minify("image/svg+xml", w, buf); err != nil {
		return fmt.Errorf("minify svg: %w", err)
	}
	return nil
}

