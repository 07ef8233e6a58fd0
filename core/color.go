package core

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Color is an unmultiplied RGBA value in linear space, channels in [0, 1]
type Color struct {
	R, G, B, A float32
}

// Black is the zero Person color: opaque black
var Black = Color{A: 1}

// Array returns the editable 4-float representation used by the picker
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// ColorFromArray is the inverse of Color.Array; the round trip is bit-exact
func ColorFromArray(a [4]float32) Color {
	return Color{R: a[0], G: a[1], B: a[2], A: a[3]}
}

// SRGB returns the gamma-encoded 8-bit color for display
func (c Color) SRGB() RGB {
	r, g, b := colorful.LinearRgb(float64(c.R), float64(c.G), float64(c.B)).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// String formats the color the way the form displays it
func (c Color) String() string {
	return fmt.Sprintf("LinearRgba(%.3f, %.3f, %.3f, %.3f)", c.R, c.G, c.B, c.A)
}

// HexReadout formats channels as #RRGGBB using floor(channel*255), alpha omitted
func HexReadout(a [4]float32) string {
	return fmt.Sprintf("#%02X%02X%02X", channelByte(a[0]), channelByte(a[1]), channelByte(a[2]))
}

func channelByte(v float32) uint8 {
	if v != v || v <= 0 { // NaN or negative
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Floor(float64(v) * 255))
}

// ParseHex reads #RRGGBB or #RGB as linear channels, the inverse of HexReadout
// Alpha is preserved from the given base color
func ParseHex(s string, base Color) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return base, errors.Wrapf(err, "parse hex color %q", s)
	}
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: base.A}, nil
}
