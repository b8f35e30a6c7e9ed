// Package color decodes USS color values into RGBA for presentation
// consumers (color swatches, hover previews).
package color

import (
	"strings"

	"github.com/mazznoer/csscolorparser"

	"ussls.dev/ussls/internal/uss/definitions"
	"ussls.dev/ussls/internal/uss/value"
)

// Decode converts a color-bearing value into its RGBA representation.
// Hex literals, color function calls, and named color identifiers decode;
// every other value reports false.
func Decode(v value.Value, defs *definitions.Definitions) (csscolorparser.Color, bool) {
	switch c := v.(type) {
	case value.Color:
		parsed, err := csscolorparser.Parse(c.Text)
		if err != nil {
			return csscolorparser.Color{}, false
		}
		return parsed, true

	case value.Identifier:
		if !defs.NamedColors.Has(strings.ToLower(c.Name)) {
			return csscolorparser.Color{}, false
		}
		parsed, err := csscolorparser.Parse(c.Name)
		if err != nil {
			return csscolorparser.Color{}, false
		}
		return parsed, true
	}

	return csscolorparser.Color{}, false
}

// Hex renders a decoded color back to hex notation, including the alpha
// channel when it is not fully opaque.
func Hex(c csscolorparser.Color) string {
	return c.HexString()
}
