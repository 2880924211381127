package overlay

import (
	"fmt"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/gomonobold"
)

// FallbackFontName is the font used when the requested family is not installed.
const FallbackFontName = "Go Mono Bold"

// LoadFontFamily loads the bold face of the named system font. When it cannot be found, Go Mono Bold is substituted and substituted is true. Only a failure of the substitute is returned as an error.
func LoadFontFamily(name string) (family *canvas.FontFamily, substituted bool, err error) {
	if name != "" {
		family = canvas.NewFontFamily(name)
		if err := family.LoadSystemFont(name, canvas.FontBold); err == nil {
			return family, false, nil
		}
	}

	family = canvas.NewFontFamily(FallbackFontName)
	if err := family.LoadFont(gomonobold.TTF, 0, canvas.FontBold); err != nil {
		return nil, true, fmt.Errorf("load fallback font: %w", err)
	}
	return family, true, nil
}
