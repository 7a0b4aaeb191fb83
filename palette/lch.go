package palette

import "math"

// D65 reference white.
const (
	refX = 0.95047
	refY = 1.00000
	refZ = 1.08883
)

// lch is a CIE LCH(ab) value: lightness, chroma, hue in degrees.
// Gradients interpolate here rather than in sRGB so that the midpoints
// stay perceptually even instead of collapsing toward muddy gray.
type lch struct {
	l, c, h float64
}

func (c Color) toLCH() lch {
	// sRGB -> XYZ
	r, g, b := linearize(c.R), linearize(c.G), linearize(c.B)
	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	// XYZ -> Lab
	fx, fy, fz := labF(x/refX), labF(y/refY), labF(z/refZ)
	l := 116*fy - 16
	a := 500 * (fx - fy)
	bb := 200 * (fy - fz)

	// Lab -> LCH
	h := math.Atan2(bb, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return lch{l: l, c: math.Hypot(a, bb), h: h}
}

func (v lch) toColor() Color {
	// LCH -> Lab
	hr := v.h * math.Pi / 180
	a := v.c * math.Cos(hr)
	b := v.c * math.Sin(hr)

	// Lab -> XYZ
	fy := (v.l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	x := refX * labFInv(fx)
	y := refY * labFInv(fy)
	z := refZ * labFInv(fz)

	// XYZ -> sRGB, clamped into gamut
	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	bl := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return Color{
		R: clamp01(delinearize(r)),
		G: clamp01(delinearize(g)),
		B: clamp01(delinearize(bl)),
	}
}

const labEps = 6.0 / 29.0

func labF(t float64) float64 {
	if t > labEps*labEps*labEps {
		return math.Cbrt(t)
	}
	return t/(3*labEps*labEps) + 4.0/29.0
}

func labFInv(t float64) float64 {
	if t > labEps {
		return t * t * t
	}
	return 3 * labEps * labEps * (t - 4.0/29.0)
}

// Gradient returns steps colors fading from a to b through LCH space,
// endpoints included. Hue travels the shorter arc; an achromatic
// endpoint (chroma near zero, such as black or white) adopts the other
// endpoint's hue so the fade does not spin through unrelated hues.
func Gradient(a, b Color, steps int) []Color {
	if steps < 2 {
		return []Color{a}
	}

	la, lb := a.toLCH(), b.toLCH()

	const achromatic = 1e-4
	if la.c < achromatic {
		la.h = lb.h
	}
	if lb.c < achromatic {
		lb.h = la.h
	}

	dh := math.Mod(lb.h-la.h+540, 360) - 180

	out := make([]Color, steps)
	out[0] = a
	out[steps-1] = b
	for i := 1; i < steps-1; i++ {
		t := float64(i) / float64(steps-1)
		out[i] = lch{
			l: la.l + (lb.l-la.l)*t,
			c: la.c + (lb.c-la.c)*t,
			h: math.Mod(la.h+dh*t+360, 360),
		}.toColor()
	}
	return out
}
