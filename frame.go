package overlay

import (
	"math"

	"github.com/tdewolff/canvas"
)

// layoutPad is the margin in points kept between the drawing and the page edge, 1.08 times a 10 pt font.
const layoutPad = 1.08 * 10.0

// frame maps data coordinates onto the page in millimeters.
type frame struct {
	sx, sy float64
	ox, oy float64
}

func (f frame) Point(x, y float64) canvas.Point {
	return canvas.Point{X: f.ox + x*f.sx, Y: f.oy + y*f.sy}
}

// extent is a box in millimeters anchored to a point in data coordinates. The box keeps its size when the frame scales.
type extent struct {
	x, y float64
	box  canvas.Rect
}

func pointExtent(x, y, r float64) extent {
	return extent{x, y, canvas.Rect{X0: -r, Y0: -r, X1: r, Y1: r}}
}

// span is an extent along one axis.
type span struct {
	d, lo, hi float64
}

// fitFrame returns the frame that places the data space of style and all extents inside a page of the given size, keeping pad millimeters from every edge. The data space itself always counts as drawn.
func fitFrame(width, height float64, style Style, extents []extent, pad float64) frame {
	xmax, ymax := style.Extent()
	xs := []span{{0.0, 0.0, 0.0}, {xmax, 0.0, 0.0}}
	ys := []span{{0.0, 0.0, 0.0}, {ymax, 0.0, 0.0}}
	for _, e := range extents {
		xs = append(xs, span{e.x, e.box.X0, e.box.X1})
		ys = append(ys, span{e.y, e.box.Y0, e.box.Y1})
	}

	f := frame{}
	f.sx, f.ox = fitAxis(width, xmax, pad, xs)
	f.sy, f.oy = fitAxis(height, ymax, pad, ys)
	return f
}

// fitAxis returns the largest scale and its offset such that every span fits within [pad, size-pad].
func fitAxis(size, dmax, pad float64, spans []span) (float64, float64) {
	lower, upper := pad, size-pad
	scale := (upper - lower) / dmax
	for _, a := range spans {
		for _, b := range spans {
			if a.d < b.d {
				scale = math.Min(scale, (upper-lower-b.hi+a.lo)/(b.d-a.d))
			}
		}
	}
	scale = math.Max(scale, 0.0)

	// the range of offsets that keep all spans on the page, centered when it is not empty
	omin, omax := math.Inf(-1), math.Inf(1)
	for _, a := range spans {
		omin = math.Max(omin, lower-scale*a.d-a.lo)
		omax = math.Min(omax, upper-scale*a.d-a.hi)
	}
	if omax < omin {
		return scale, omin
	}
	return scale, (omin + omax) / 2.0
}
