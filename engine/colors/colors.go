package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hubastard/groveray/engine/native"
)

type Color = native.Color

var (
	LightGray  = Color{R: 200, G: 200, B: 200, A: 255}
	Gray       = Color{R: 130, G: 130, B: 130, A: 255}
	DarkGray   = Color{R: 80, G: 80, B: 80, A: 255}
	Yellow     = Color{R: 253, G: 249, B: 0, A: 255}
	Gold       = Color{R: 255, G: 203, B: 0, A: 255}
	Orange     = Color{R: 255, G: 161, B: 0, A: 255}
	Pink       = Color{R: 255, G: 109, B: 194, A: 255}
	Red        = Color{R: 230, G: 41, B: 55, A: 255}
	Maroon     = Color{R: 190, G: 33, B: 55, A: 255}
	Green      = Color{R: 0, G: 228, B: 48, A: 255}
	Lime       = Color{R: 0, G: 158, B: 47, A: 255}
	DarkGreen  = Color{R: 0, G: 117, B: 44, A: 255}
	SkyBlue    = Color{R: 102, G: 191, B: 255, A: 255}
	Blue       = Color{R: 0, G: 121, B: 241, A: 255}
	DarkBlue   = Color{R: 0, G: 82, B: 172, A: 255}
	Purple     = Color{R: 200, G: 122, B: 255, A: 255}
	Violet     = Color{R: 135, G: 60, B: 190, A: 255}
	DarkPurple = Color{R: 112, G: 31, B: 126, A: 255}
	Beige      = Color{R: 211, G: 176, B: 131, A: 255}
	Brown      = Color{R: 127, G: 106, B: 79, A: 255}
	DarkBrown  = Color{R: 76, G: 63, B: 47, A: 255}
	White      = Color{R: 255, G: 255, B: 255, A: 255}
	Black      = Color{R: 0, G: 0, B: 0, A: 255}
	Blank      = Color{}
	Magenta    = Color{R: 255, G: 0, B: 255, A: 255}
	Cyan       = Color{R: 0, G: 255, B: 255, A: 255}
	RayWhite   = Color{R: 245, G: 245, B: 245, A: 255}
)

// WithAlpha returns c with alpha a in [0, 1].
func WithAlpha(c Color, a float32) Color {
	c.A = uint8(clamp01(a)*255 + 0.5)
	return c
}

// Floats returns c as normalized RGBA, the form GL clear and uniform calls take.
func Floats(c Color) [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// FromFloats is the inverse of Floats.
func FromFloats(f [4]float32) Color {
	return Color{
		R: uint8(clamp01(f[0])*255 + 0.5),
		G: uint8(clamp01(f[1])*255 + 0.5),
		B: uint8(clamp01(f[2])*255 + 0.5),
		A: uint8(clamp01(f[3])*255 + 0.5),
	}
}

// Hex formats c as #rrggbbaa.
func Hex(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex accepts #rgb, #rrggbb and #rrggbbaa.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("colors: bad hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors: bad hex color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
