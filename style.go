package overlay

// Style selects one of the fixed overlay arrangements.
type Style int

// see Style
const (
	UnknownStyle Style = iota
	Horizontal
	Vertical
	Callout
)

// ParseStyle returns the style for its lowercase name. Any other name returns UnknownStyle, which renders an empty transparent canvas.
func ParseStyle(s string) Style {
	switch s {
	case "horizontal":
		return Horizontal
	case "vertical":
		return Vertical
	case "callout":
		return Callout
	}
	return UnknownStyle
}

func (style Style) String() string {
	switch style {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Callout:
		return "callout"
	}
	return "unknown"
}

// Extent returns the width and height of the data coordinate space of the style. Every style is stretched over the same page.
func (style Style) Extent() (float64, float64) {
	if style == Vertical {
		return 5.0, 10.0
	}
	return 10.0, 5.0
}
