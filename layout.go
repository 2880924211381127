package overlay

// Fixed arrangements of each style in data coordinates. The label positions do not depend on the text, but the whole arrangement is scaled to fit the page.

func drawHorizontal(p *painter, text string) {
	lw := p.opts.LineWidth
	p.DoubleArrow(1.6, 2.5, 2.6, 2.5, lw-0.5, 25.0)
	p.Cap(1.6, 2.2, 1.6, 2.8, lw)
	p.Cap(2.6, 2.2, 2.6, 2.8, lw)
	p.Label(6.0, 2.0, text, anchorCenter, 0.2)
}

// drawVertical draws the measure without a label, the text is not used.
func drawVertical(p *painter, _ string) {
	lw := p.opts.LineWidth
	p.DoubleArrow(2.5, 0.5, 2.5, 9.5, lw, 50.0)
	p.Cap(2.2, 0.5, 2.8, 0.5, lw)
	p.Cap(2.2, 9.5, 2.8, 9.5, lw)
}

func drawCallout(p *painter, text string) {
	lw := p.opts.LineWidth
	box := p.Label(6.0, 4.0, text, anchorBaseline, 0.6)
	p.Connector(box, 1.0, 1.0, lw, p.opts.FontSize)
	p.Marker(1.0, 1.0, 0.1)
}
