package palette

import (
	"fmt"
	"math"
	"strings"
)

// Color is an sRGB color with channels in [0, 1]. The zero value is
// black. Colors are plain values; all operations return new colors.
type Color struct {
	R, G, B float64
}

// Black and White are the fixed anchors of every palette: body text is
// always black, and button text is chosen between the two.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// ParseHex parses "#rgb" or "#rrggbb" (case-insensitive, leading '#'
// optional) into a Color.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("palette: invalid hex color %q", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(h), "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("palette: invalid hex color %q: %w", s, err)
	}

	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255}, nil
}

// Hex formats the color as lowercase "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

func channelByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// FromHSL builds a color from hue in degrees and saturation/lightness
// in [0, 1]. Hue wraps modulo 360.
func FromHSL(h, s, l float64) Color {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	s = clamp01(s)
	l = clamp01(l)

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{r + m, g + m, b + m}
}

// HSL returns hue in degrees [0, 360) and saturation/lightness in [0, 1].
func (c Color) HSL() (h, s, l float64) {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	l = (max + min) / 2

	d := max - min
	if d == 0 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case c.R:
		h = math.Mod((c.G-c.B)/d, 6)
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	return h, s, l
}

// linearize converts one sRGB channel to linear light.
func linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// delinearize converts one linear-light channel back to sRGB.
func delinearize(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// Luminance returns the WCAG relative luminance of the color.
func (c Color) Luminance() float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// Contrast returns the WCAG contrast ratio between two colors, in
// [1, 21]. Order of arguments does not matter.
func Contrast(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Mix linearly interpolates from a to b in sRGB space. t=0 yields a,
// t=1 yields b.
func Mix(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// Lighten raises HSL lightness by d (clamped to [0, 1]).
func (c Color) Lighten(d float64) Color {
	h, s, l := c.HSL()
	return FromHSL(h, s, clamp01(l+d))
}

// Darken lowers HSL lightness by d (clamped to [0, 1]).
func (c Color) Darken(d float64) Color {
	h, s, l := c.HSL()
	return FromHSL(h, s, clamp01(l-d))
}

// Saturate raises HSL saturation by d (clamped to [0, 1]).
func (c Color) Saturate(d float64) Color {
	h, s, l := c.HSL()
	return FromHSL(h, clamp01(s+d), l)
}
