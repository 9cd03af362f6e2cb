// Package colorutil provides shared color utilities for the gallery wall application.
package colorutil

import (
	"image/color"
	"strconv"
	"strings"
)

// Common colors used throughout the application.
var (
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Transparent = color.RGBA{}
)

// ParseHex converts a hex color string ("#RRGGBB" or "#RRGGBBAA", leading '#'
// optional) to an RGBA color. Unparseable or wrong-length strings fall back
// to opaque white so a bad value in a saved project never aborts a render.
func ParseHex(hex string) color.RGBA {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(s) {
	case 6, 8:
	default:
		return White
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return White
	}

	if len(s) == 8 {
		return color.RGBA{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: uint8(v),
		}
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}

// FormatHex converts a color to a "#RRGGBB" string, appending the alpha byte
// only when it is not fully opaque.
func FormatHex(c color.RGBA) string {
	if c.A != 255 {
		return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B) + hexByte(c.A)
	}
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
}

func hexByte(b uint8) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0x0F]})
}

// WithAlpha returns the color with its alpha replaced.
func WithAlpha(c color.RGBA, alpha uint8) color.RGBA {
	c.A = alpha
	return c
}
