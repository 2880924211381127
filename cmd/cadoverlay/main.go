package main

import (
	"github.com/tdewolff/overlay"
)

// standard templates for an annotation library
var templates = []overlay.Request{
	// width: battery size, glue gap
	{Text: "1.39V ↘ 1.27V", Style: overlay.Horizontal, Filename: "CAD_Overlay_Horizontal.png"},
	// height: flame height, stack size
	{Text: "TEMP: 45C", Style: overlay.Vertical, Filename: "CAD_Overlay_Vertical.png"},
	// pointer: LED filament, crack
	{Text: "1800K CORE", Style: overlay.Callout, Filename: "CAD_Overlay_Callout.png"},
}

func main() {
	r, err := overlay.NewRenderer(nil)
	if err != nil {
		panic(err)
	}
	for _, req := range templates {
		if err := r.Render(req); err != nil {
			panic(err)
		}
	}
}
