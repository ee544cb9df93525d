package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is linear RGBA in [0..1]. Layout matches a vec4 vertex attribute.
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Transparent = Color{0, 0, 0, 0}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Vec4 returns the color as a shader uniform value.
func (c Color) Vec4() mgl32.Vec4 { return mgl32.Vec4(c) }

// RGBA8 converts 8-bit channels to a Color.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// FromHex parses "#rrggbb" or "#rrggbbaa" (leading '#' optional).
func FromHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("colors: invalid hex color %q", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors: invalid hex color %q: %w", s, err)
	}
	return RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// UnmarshalText lets a Color be written as a hex string in config files.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := FromHex(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
