package overlay

import (
	"testing"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/test"
)

func TestFrame(t *testing.T) {
	f := fitFrame(200.0, 100.0, Horizontal, nil, 0.0)
	test.T(t, f.Point(5.0, 2.5), canvas.Point{X: 100.0, Y: 50.0})

	f = fitFrame(200.0, 100.0, Vertical, nil, 0.0)
	test.T(t, f.Point(5.0, 10.0), canvas.Point{X: 200.0, Y: 100.0})
	test.T(t, f.Point(2.5, 0.5), canvas.Point{X: 100.0, Y: 5.0})

	f = fitFrame(200.0, 100.0, Horizontal, nil, 5.0)
	test.T(t, f.Point(0.0, 0.0), canvas.Point{X: 5.0, Y: 5.0})
	test.T(t, f.Point(10.0, 5.0), canvas.Point{X: 195.0, Y: 95.0})
}

func TestFitAxis(t *testing.T) {
	var tts = []struct {
		name          string
		spans         []span
		scale, offset float64
	}{
		{"data only", []span{{0.0, 0.0, 0.0}, {10.0, 0.0, 0.0}}, 9.0, 5.0},
		{"overflow right", []span{{0.0, 0.0, 0.0}, {10.0, 0.0, 0.0}, {10.0, 0.0, 20.0}}, 7.0, 5.0},
		{"overflow left", []span{{0.0, 0.0, 0.0}, {10.0, 0.0, 0.0}, {0.0, -20.0, 0.0}}, 7.0, 25.0},
		{"centered", []span{{0.0, 0.0, 0.0}, {10.0, 0.0, 0.0}, {5.0, -10.0, 10.0}}, 9.0, 5.0},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			scale, offset := fitAxis(100.0, 10.0, 5.0, tt.spans)
			test.Float(t, scale, tt.scale)
			test.Float(t, offset, tt.offset)
		})
	}
}

func TestFitFrameLabel(t *testing.T) {
	// a label box anchored on the right edge of the data space pulls the frame inwards
	extents := []extent{{10.0, 5.0, canvas.Rect{X0: -5.0, Y0: -5.0, X1: 20.0, Y1: 10.0}}}
	f := fitFrame(200.0, 100.0, Horizontal, extents, 5.0)
	corner := f.Point(10.0, 5.0)
	test.Float(t, corner.X+20.0, 195.0)
	test.Float(t, corner.Y+10.0, 95.0)
	test.T(t, f.Point(0.0, 0.0), canvas.Point{X: 5.0, Y: 5.0})
}

func TestFilledHead(t *testing.T) {
	head := filledHead(canvas.Point{X: 0.0, Y: 0.0}, canvas.Point{X: 1.0, Y: 0.0}, 4.0, 1.0)
	bounds := head.Bounds()
	test.Float(t, bounds.X0, 0.0)
	test.Float(t, bounds.X1, 4.0)
	test.Float(t, bounds.Y0, -1.0)
	test.Float(t, bounds.Y1, 1.0)
	test.That(t, head.Closed(), "head must be closed")
}

func TestLabelBox(t *testing.T) {
	r := newTestRenderer(t)
	p := layoutOf(r, "1234567890", Horizontal)
	metrics := p.face.Metrics()

	short := p.labelBox(6.0, 2.0, "1", anchorCenter, 0.2)
	long := p.labelBox(6.0, 2.0, "1234567890", anchorCenter, 0.2)
	center := p.frame.Point(6.0, 2.0)
	test.Float(t, (short.X0+short.X1)/2.0, center.X)
	test.Float(t, (long.X0+long.X1)/2.0, center.X)
	test.Float(t, (long.Y0+long.Y1)/2.0, center.Y)
	test.That(t, long.X1-long.X0 > short.X1-short.X0, "box grows with the text")

	pad := 0.2 * r.opts.FontSize * mmPerPt
	test.Float(t, long.Y1-long.Y0, metrics.Ascent+metrics.Descent+2.0*pad)

	box := p.labelBox(6.0, 4.0, "1800K CORE", anchorBaseline, 0.6)
	anchor := p.frame.Point(6.0, 4.0)
	test.Float(t, box.X0, anchor.X-0.6*r.opts.FontSize*mmPerPt)
	test.Float(t, box.Y1, anchor.Y+metrics.Ascent+0.6*r.opts.FontSize*mmPerPt)
}

func TestLabelLines(t *testing.T) {
	r := newTestRenderer(t)
	p := layoutOf(r, "", Horizontal)
	metrics := p.face.Metrics()
	pad := 0.2 * r.opts.FontSize * mmPerPt

	one := p.layoutLabel("1800K", anchorCenter, 0.2)
	two := p.layoutLabel("1800K\nCORE", anchorCenter, 0.2)
	test.Float(t, two.box.Y1-two.box.Y0, metrics.Ascent+metrics.Descent+metrics.LineHeight+2.0*pad)
	test.Float(t, two.box.X1-two.box.X0, one.box.X1-one.box.X0)
	test.Float(t, (two.box.Y0+two.box.Y1)/2.0, 0.0)
	test.T(t, two.halign, canvas.Center)

	// the first baseline stays on the anchor, further lines grow downwards
	two = p.layoutLabel("1800K\nCORE", anchorBaseline, 0.6)
	test.Float(t, two.x, 0.0)
	test.Float(t, two.y, 0.0)
	test.Float(t, two.box.Y0, -metrics.Descent-metrics.LineHeight-0.6*r.opts.FontSize*mmPerPt)
	test.T(t, two.halign, canvas.Left)
}
