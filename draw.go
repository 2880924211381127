package overlay

import (
	"math"
	"strings"

	"github.com/tdewolff/canvas"
)

// arrowShrink is the gap in points left between an arrow end and the point it is drawn to.
const arrowShrink = 2.0

// head proportions relative to the head scale
const (
	headLength = 0.4
	headWidth  = 0.2
)

// painter draws the overlay primitives in data coordinates. Stroke widths and head scales are in points. Without a context it only collects the extents of the primitives.
type painter struct {
	ctx     *canvas.Context
	frame   frame
	opts    Options
	face    *canvas.FontFace
	extents []extent
}

func (p *painter) measuring() bool {
	return p.ctx == nil
}

func (p *painter) extend(e extent) {
	p.extents = append(p.extents, e)
}

func (p *painter) stroke(path *canvas.Path, width float64) {
	p.ctx.Push()
	p.ctx.SetFillColor(canvas.Transparent)
	p.ctx.SetStrokeColor(p.opts.AccentColor)
	p.ctx.SetStrokeWidth(width * mmPerPt)
	p.ctx.SetStrokeCapper(canvas.ButtCap)
	p.ctx.SetStrokeJoiner(canvas.MiterJoin)
	p.ctx.DrawPath(0.0, 0.0, path)
	p.ctx.Pop()
}

func (p *painter) fill(path *canvas.Path, width float64) {
	p.ctx.Push()
	p.ctx.SetFillColor(p.opts.AccentColor)
	if 0.0 < width {
		p.ctx.SetStrokeColor(p.opts.AccentColor)
		p.ctx.SetStrokeWidth(width * mmPerPt)
		p.ctx.SetStrokeJoiner(canvas.MiterJoin)
	} else {
		p.ctx.SetStrokeColor(canvas.Transparent)
	}
	p.ctx.DrawPath(0.0, 0.0, path)
	p.ctx.Pop()
}

// Cap draws an end cap, a plain segment between two data points.
func (p *painter) Cap(x0, y0, x1, y1, width float64) {
	if p.measuring() {
		half := width * mmPerPt / 2.0
		p.extend(pointExtent(x0, y0, half))
		p.extend(pointExtent(x1, y1, half))
		return
	}

	a, b := p.frame.Point(x0, y0), p.frame.Point(x1, y1)
	path := &canvas.Path{}
	path.MoveTo(a.X, a.Y)
	path.LineTo(b.X, b.Y)
	p.stroke(path, width)
}

// DoubleArrow draws a measurement arrow between two data points with a filled triangular head at either end.
func (p *painter) DoubleArrow(x0, y0, x1, y1, width, scale float64) {
	length := headLength * scale * mmPerPt
	half := headWidth * scale * mmPerPt
	if p.measuring() {
		r := math.Max(half, width*mmPerPt/2.0)
		p.extend(pointExtent(x0, y0, r))
		p.extend(pointExtent(x1, y1, r))
		return
	}

	a, b := p.frame.Point(x0, y0), p.frame.Point(x1, y1)
	d := b.Sub(a)
	if d.IsZero() {
		return
	}
	d = d.Norm(1.0)

	shrink := arrowShrink * mmPerPt
	a = a.Add(d.Mul(shrink))
	b = b.Sub(d.Mul(shrink))

	shaftA, shaftB := a.Add(d.Mul(length)), b.Sub(d.Mul(length))
	if 0.0 < shaftB.Sub(shaftA).Dot(d) {
		shaft := &canvas.Path{}
		shaft.MoveTo(shaftA.X, shaftA.Y)
		shaft.LineTo(shaftB.X, shaftB.Y)
		p.stroke(shaft, width)
	}
	p.fill(filledHead(a, d, length, half), width)
	p.fill(filledHead(b, d.Neg(), length, half), width)
}

// filledHead returns a closed triangle with its tip at tip, pointing against dir.
func filledHead(tip, dir canvas.Point, length, half float64) *canvas.Path {
	base := tip.Add(dir.Mul(length))
	n := dir.Rot90CCW().Mul(half)
	l, r := base.Add(n), base.Sub(n)
	path := &canvas.Path{}
	path.MoveTo(tip.X, tip.Y)
	path.LineTo(l.X, l.Y)
	path.LineTo(r.X, r.Y)
	path.Close()
	return path
}

// Marker draws a filled circle of radius r in data units. It is an ellipse on the page when the axes scale differently.
func (p *painter) Marker(x, y, r float64) {
	if p.measuring() {
		p.extend(pointExtent(x-r, y-r, 0.0))
		p.extend(pointExtent(x+r, y+r, 0.0))
		return
	}

	c := p.frame.Point(x, y)
	p.fill(canvas.Ellipse(r*p.frame.sx, r*p.frame.sy).Translate(c.X, c.Y), 0.0)
}

// labelAnchor positions a label relative to its reference point.
type labelAnchor int

const (
	anchorCenter   labelAnchor = iota // centered horizontally and vertically
	anchorBaseline                    // left side of the text on the baseline of the first line
)

// label is the layout of a text label relative to its reference point, in millimeters.
type label struct {
	box    canvas.Rect // filled box
	x, y   float64     // origin of the text, on the baseline of the first line
	halign canvas.TextAlign
}

// layoutLabel sizes the box of a label from its lines. Lines are separated by newlines and spaced by the line height of the face. Padding pad is a fraction of the font size.
func (p *painter) layoutLabel(text string, anchor labelAnchor, pad float64) label {
	metrics := p.face.Metrics()
	lines := strings.Split(text, "\n")
	width := 0.0
	for _, line := range lines {
		width = math.Max(width, p.face.TextWidth(line))
	}
	depth := metrics.Descent + float64(len(lines)-1)*metrics.LineHeight // below the first baseline

	l := label{halign: canvas.Left}
	left := 0.0
	if anchor == anchorCenter {
		l.halign = canvas.Center
		l.y = (metrics.Ascent+depth)/2.0 - metrics.Ascent
		left = -width / 2.0
	}

	padding := pad * p.opts.FontSize * mmPerPt
	l.box = canvas.Rect{
		X0: left - padding,
		Y0: l.y - depth - padding,
		X1: left + width + padding,
		Y1: l.y + metrics.Ascent + padding,
	}
	return l
}

// labelBox returns the filled box of a label placed at a data point, in millimeters on the page.
func (p *painter) labelBox(x, y float64, text string, anchor labelAnchor, pad float64) canvas.Rect {
	ref := p.frame.Point(x, y)
	box := p.layoutLabel(text, anchor, pad).box
	return canvas.Rect{X0: ref.X + box.X0, Y0: ref.Y + box.Y0, X1: ref.X + box.X1, Y1: ref.Y + box.Y1}
}

// Label draws text on a filled accent box and returns the box. An empty text still draws the padded box.
func (p *painter) Label(x, y float64, text string, anchor labelAnchor, pad float64) canvas.Rect {
	l := p.layoutLabel(text, anchor, pad)
	if p.measuring() {
		p.extend(extent{x, y, l.box})
		return canvas.Rect{}
	}

	box := p.labelBox(x, y, text, anchor, pad)
	p.fill(box.ToPath(), 0.0)
	if text != "" {
		ref := p.frame.Point(x, y)
		p.ctx.DrawText(ref.X+l.x, ref.Y+l.y, canvas.NewTextLine(p.face, text, l.halign))
	}
	return box
}

// Connector draws an open-headed arrow from the label box to the target data point. It leaves the box horizontally from its center and turns at a right angle to reach the target vertically.
func (p *painter) Connector(box canvas.Rect, x, y, width, scale float64) {
	length := headLength * scale * mmPerPt
	half := headWidth * scale * mmPerPt
	if p.measuring() {
		// the path lies between the label box and the target
		p.extend(pointExtent(x, y, math.Max(half, width*mmPerPt/2.0)))
		return
	}

	target := p.frame.Point(x, y)
	cy := (box.Y0 + box.Y1) / 2.0

	shrink := arrowShrink * mmPerPt
	start := canvas.Point{X: box.X0 - shrink, Y: cy}
	if target.X > box.X1 {
		start.X = box.X1 + shrink
	} else if box.X0 <= target.X {
		// target below or above the box
		start.X = target.X
		if target.Y < box.Y0 {
			cy = box.Y0 - shrink
		} else {
			cy = box.Y1 + shrink
		}
		start.Y = cy
	}
	corner := canvas.Point{X: target.X, Y: cy}

	dir := target.Sub(corner)
	if dir.IsZero() {
		dir = target.Sub(start)
	}
	if dir.IsZero() {
		return
	}
	dir = dir.Norm(1.0)
	tip := target.Sub(dir.Mul(shrink))

	path := &canvas.Path{}
	path.MoveTo(start.X, start.Y)
	if !corner.Equals(start) && !corner.Equals(target) {
		path.LineTo(corner.X, corner.Y)
	}
	path.LineTo(tip.X, tip.Y)
	p.stroke(path, width)

	base := tip.Sub(dir.Mul(length))
	n := dir.Rot90CCW().Mul(half)
	l, r := base.Add(n), base.Sub(n)
	head := &canvas.Path{}
	head.MoveTo(l.X, l.Y)
	head.LineTo(tip.X, tip.Y)
	head.LineTo(r.X, r.Y)
	p.stroke(head, width)
}
