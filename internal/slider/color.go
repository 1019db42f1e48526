package slider

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a background colour in HSL form. Hue is in degrees.
type Color struct {
	Hue        float64 `json:"hue" yaml:"hue"`
	Saturation float64 `json:"saturation" yaml:"saturation"`
	Lightness  float64 `json:"lightness" yaml:"lightness"`
}

// HSL returns the colour with hue h degrees, wrapped into [0, 360).
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return Color{Hue: h, Saturation: s, Lightness: l}
}

// RGB converts to a colorful.Color.
func (c Color) RGB() colorful.Color {
	return colorful.Hsl(c.Hue, c.Saturation, c.Lightness).Clamped()
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return c.RGB().Hex()
}

// Dark reports whether light text reads better on this colour.
func (c Color) Dark() bool {
	_, _, l := c.RGB().Hcl()
	return l < 0.5
}

func (c Color) String() string {
	return fmt.Sprintf("hsl(%.2f, %.0f%%, %.0f%%)", c.Hue, c.Saturation*100, c.Lightness*100)
}
