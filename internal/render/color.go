package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultColor is the accent used when a color string cannot be parsed.
const DefaultColor = "#6366f1"

var (
	accentTint     = color.NRGBA{R: 99, G: 102, B: 241, A: 26}
	accentEdge     = color.NRGBA{R: 99, G: 102, B: 241, A: 77}
	pointHighlight = color.NRGBA{R: 255, G: 255, B: 255, A: 77}
	pointBorder    = color.NRGBA{R: 255, G: 255, B: 255, A: 128}
)

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("parse color %q: want 3 or 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustColor parses s, falling back to DefaultColor.
func MustColor(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		c, _ = ParseHex(DefaultColor)
	}
	return c
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(float64(c.A) * min(max(alpha, 0), 1))
	return c
}
