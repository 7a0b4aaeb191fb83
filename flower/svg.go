package flower

import (
	"fmt"
	"math"
	"strings"

	"github.com/tripledoublev/spores.garden-sub000/palette"
	"github.com/tripledoublev/spores.garden-sub000/seed"
)

// goldenAngle spaces spiral center dots like seeds in a sunflower head.
const goldenAngle = 137.50776405003785

// RenderSVG draws params as standalone square SVG markup. src must be the
// stream that produced params: rendering keeps drawing from it, back to
// front, in this order: stem bend, leaf placement, per-petal jitter for
// each layer outermost first, then center placement.
func RenderSVG(p Params, size int, src *seed.Source) string {
	s := float64(size)
	cx := s / 2
	cy := s / 2
	headR := s * 0.42
	if p.HasStem {
		cy = s * 0.36
		headR = s * 0.30
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		size, size, size, size)
	if p.HasStem {
		writeStem(&b, p, src, s, cx, cy)
	}
	for layer := 0; layer < p.LayerCount; layer++ {
		writeLayer(&b, p, src, layer, cx, cy, headR)
	}
	writeCenter(&b, p, src, cx, cy, headR)
	b.WriteString("</svg>")
	return b.String()
}

// writeLayer draws one concentric ring of petals. The angular step is
// clamped to a minimum three-petal spread; the petal loop bound is not,
// so a layer left with fewer petals covers only part of the circle.
func writeLayer(b *strings.Builder, p Params, src *seed.Source, layer int, cx, cy, headR float64) {
	count := p.PetalCount - layer
	step := 360 / float64(max(count, 3))
	scale := math.Pow(p.LayerSizeDecay, float64(layer))
	base := p.Rotation + p.LayerRotationOffset*float64(layer)
	fill := layerFill(p.Colors.Petal, layer)
	for i := 0; i < count; i++ {
		sizeJ := 1 + (src.Float()*2-1)*p.SizeJitter
		angleJ := (src.Float()*2 - 1) * p.AngleJitter
		curveJ := (src.Float()*2 - 1) * p.CurveJitter
		length := headR * p.PetalSize * scale * sizeJ
		angle := base + step*float64(i) + angleJ
		writePetal(b, p.Shape, cx, cy, angle, length, curveJ, fill)
	}
}

// layerFill lightens inner layers so stacked petals stay distinguishable.
func layerFill(hex string, layer int) string {
	if layer == 0 {
		return hex
	}
	c, err := palette.ParseHex(hex)
	if err != nil {
		return hex
	}
	return c.Lighten(0.07 * float64(layer)).Hex()
}

func writePetal(b *strings.Builder, shape Shape, cx, cy, angle, length, curveJ float64, fill string) {
	var d string
	switch shape {
	case ShapePointed:
		d = pointedPath(cx, cy, length, curveJ)
	case ShapeWavy:
		d = wavyPath(cx, cy, length, curveJ)
	case ShapeHeart:
		d = heartPath(cx, cy, length, curveJ)
	case ShapeTulip:
		d = tulipPath(cx, cy, length, curveJ)
	default:
		d = roundPath(cx, cy, length, curveJ)
	}
	fmt.Fprintf(b, `<path d="%s" fill="%s" transform="rotate(%.2f %.2f %.2f)"/>`,
		d, fill, angle, cx, cy)
}

// Petal outlines start and end at the flower center and point straight up;
// writePetal rotates them into place. curveJ swells or flattens the bezier
// control points so petals within one flower are not carbon copies.

func roundPath(cx, cy, l, cj float64) string {
	w := l * 0.45 * (1 + cj)
	return fmt.Sprintf("M %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f Z",
		cx, cy,
		cx-w, cy-l*0.33, cx-w, cy-l*0.66, cx, cy-l,
		cx+w, cy-l*0.66, cx+w, cy-l*0.33, cx, cy)
}

func pointedPath(cx, cy, l, cj float64) string {
	w := l * 0.32 * (1 + cj)
	return fmt.Sprintf("M %.2f %.2f Q %.2f %.2f %.2f %.2f Q %.2f %.2f %.2f %.2f Z",
		cx, cy,
		cx-w, cy-l*0.5, cx, cy-l,
		cx+w, cy-l*0.5, cx, cy)
}

func wavyPath(cx, cy, l, cj float64) string {
	w := l * 0.48
	in := w * (0.3 + cj)
	return fmt.Sprintf("M %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f Z",
		cx, cy,
		cx-w, cy-l*0.15, cx-in, cy-l*0.35, cx-w, cy-l*0.55,
		cx-in, cy-l*0.75, cx-w*0.6, cy-l*0.95, cx, cy-l,
		cx+w*0.6, cy-l*0.95, cx+in, cy-l*0.75, cx+w, cy-l*0.55,
		cx+in, cy-l*0.35, cx+w, cy-l*0.15, cx, cy)
}

func heartPath(cx, cy, l, cj float64) string {
	w := l * 0.5 * (1 + cj*0.5)
	return fmt.Sprintf("M %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f Z",
		cx, cy,
		cx-w*0.9, cy-l*0.45, cx-w*0.75, cy-l, cx, cy-l*0.82,
		cx+w*0.75, cy-l, cx+w*0.9, cy-l*0.45, cx, cy)
}

func tulipPath(cx, cy, l, cj float64) string {
	w := l * 0.42 * (1 + cj*0.5)
	return fmt.Sprintf("M %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f Q %.2f %.2f %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f Z",
		cx, cy,
		cx-w*0.9, cy-l*0.3, cx-w*0.8, cy-l*0.75, cx-w*0.45, cy-l,
		cx, cy-l*0.88, cx+w*0.45, cy-l,
		cx+w*0.8, cy-l*0.75, cx+w*0.9, cy-l*0.3, cx, cy)
}

// writeStem draws a gently bent stalk from the flower head to the bottom
// edge, then any leaves. One draw sets the bend; each leaf takes two more,
// for its position along the stem and its length.
func writeStem(b *strings.Builder, p Params, src *seed.Source, s, cx, cy float64) {
	bend := (src.Float()*2 - 1) * s * 0.06
	midX := cx + bend
	endX := cx + bend*0.6
	endY := s * 0.96
	midY := (cy + endY) / 2
	width := math.Max(2, s*0.015)
	fmt.Fprintf(b, `<path d="M %.2f %.2f Q %.2f %.2f %.2f %.2f" fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round"/>`,
		cx, cy, midX, midY, endX, endY, p.Colors.Stem, width)
	if !p.HasLeaves {
		return
	}
	n := src.IntRange(1, 2)
	for i := 0; i < n; i++ {
		t := src.Range(0.35, 0.75)
		length := src.Range(0.10, 0.16) * s
		u := 1 - t
		ox := u*u*cx + 2*u*t*midX + t*t*endX
		oy := u*u*cy + 2*u*t*midY + t*t*endY
		angle := -25.0
		if i%2 == 1 {
			angle = 205
		}
		writeLeaf(b, p.LeafStyle, ox, oy, length, angle, p.Colors.Leaf)
	}
}

// writeLeaf draws a single leaf pointing rightward from its attachment
// point, rotated outward from the stem.
func writeLeaf(b *strings.Builder, style LeafStyle, ox, oy, l, angle float64, fill string) {
	switch style {
	case LeafPointed:
		d := fmt.Sprintf("M %.2f %.2f Q %.2f %.2f %.2f %.2f Q %.2f %.2f %.2f %.2f Z",
			ox, oy,
			ox+l*0.5, oy-l*0.3, ox+l, oy,
			ox+l*0.5, oy+l*0.3, ox, oy)
		fmt.Fprintf(b, `<path d="%s" fill="%s" transform="rotate(%.2f %.2f %.2f)"/>`, d, fill, angle, ox, oy)
	case LeafSerrated:
		d := fmt.Sprintf("M %.2f %.2f L %.2f %.2f L %.2f %.2f L %.2f %.2f L %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f Z",
			ox, oy,
			ox+l*0.2, oy-l*0.25,
			ox+l*0.35, oy-l*0.1,
			ox+l*0.55, oy-l*0.28,
			ox+l*0.7, oy-l*0.12,
			ox+l, oy,
			ox+l*0.5, oy+l*0.3, ox, oy)
		fmt.Fprintf(b, `<path d="%s" fill="%s" transform="rotate(%.2f %.2f %.2f)"/>`, d, fill, angle, ox, oy)
	default:
		fmt.Fprintf(b, `<ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill="%s" transform="rotate(%.2f %.2f %.2f)"/>`,
			ox+l/2, oy, l/2, l*0.22, fill, angle, ox, oy)
	}
}

// writeCenter draws the flower center on top of the petals. Styles that
// scatter elements keep drawing from src; the plain disc takes no draws.
func writeCenter(b *strings.Builder, p Params, src *seed.Source, cx, cy, headR float64) {
	r := headR * p.CenterSize * 1.2
	fill := p.Colors.Center
	switch p.CenterStyle {
	case CenterStamen:
		fmt.Fprintf(b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`, cx, cy, r*0.5, fill)
		strokeW := math.Max(1, r*0.08)
		stepA := 360 / float64(p.StamenCount)
		for i := 0; i < p.StamenCount; i++ {
			a := stepA*float64(i) + (src.Float()*2-1)*8
			reach := r * (1.6 + src.Float()*0.6)
			rad := a * math.Pi / 180
			x := cx + math.Sin(rad)*reach
			y := cy - math.Cos(rad)*reach
			fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`,
				cx, cy, x, y, fill, strokeW)
			fmt.Fprintf(b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`, x, y, r*0.14, fill)
		}
	case CenterSpiral:
		offset := src.Float() * 360
		const dots = 24
		for i := 0; i < dots; i++ {
			rr := r * 1.4 * math.Sqrt(float64(i+1)/dots)
			a := (offset + goldenAngle*float64(i)) * math.Pi / 180
			fmt.Fprintf(b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`,
				cx+math.Sin(a)*rr, cy-math.Cos(a)*rr, r*0.11, fill)
		}
	case CenterDots:
		fmt.Fprintf(b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`, cx, cy, r*0.45, fill)
		n := src.IntRange(8, 14)
		for i := 0; i < n; i++ {
			a := src.Float() * 2 * math.Pi
			rr := r * 1.5 * math.Sqrt(src.Float())
			fmt.Fprintf(b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`,
				cx+math.Sin(a)*rr, cy-math.Cos(a)*rr, r*0.12, fill)
		}
	case CenterRing:
		rings := src.IntRange(2, 4)
		strokeW := math.Max(1, r*0.1)
		fmt.Fprintf(b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`, cx, cy, r*0.3, fill)
		for j := 0; j < rings; j++ {
			fmt.Fprintf(b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%.2f"/>`,
				cx, cy, r*(0.5+0.45*float64(j)), fill, strokeW)
		}
	default:
		fmt.Fprintf(b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`, cx, cy, r, fill)
	}
}
