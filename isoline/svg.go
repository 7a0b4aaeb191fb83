package isoline

import (
	"fmt"
	"strings"

	"github.com/tripledoublev/spores.garden-sub000/palette"
	"github.com/tripledoublev/spores.garden-sub000/seed"
)

// gridResolution is the marching grid's cell count per side: one cell
// per ten output pixels, clamped into [80,160].
func gridResolution(width, height int) int {
	return min(max(max(width, height)/10, 80), 160)
}

// RenderSVG draws the contour field as standalone SVG markup. noiseSeed
// selects the noise field; callers pass the identifier hash so the
// artwork stays stable per identity. Closed chains are filled first,
// with opacity scaled by their threshold, then every chain is stroked
// as a smoothed quadratic path.
func RenderSVG(cfg Config, width, height int, noiseSeed int32) string {
	res := gridResolution(width, height)
	field := noiseField(res, cfg, noiseSeed)
	cw := float64(width) / float64(res)
	ch := float64(height) / float64(res)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		width, height, width, height)
	for _, t := range cfg.thresholds() {
		chains := stitch(marchCells(field, t, cw, ch))
		for _, c := range chains {
			if !c.closed {
				continue
			}
			fmt.Fprintf(&b, `<path d="%s" fill="%s" fill-opacity="%.3f" stroke="none"/>`,
				smoothPath(c.pts, true), cfg.FillColor, 0.3*t)
		}
		for _, c := range chains {
			fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round" stroke-linejoin="round"/>`,
				smoothPath(c.pts, c.closed), cfg.StrokeColor, cfg.StrokeWidth)
		}
	}
	b.WriteString("</svg>")
	return b.String()
}

// Render produces the contour SVG for an identifier, with config and
// noise field both derived from it.
func Render(id string, pal palette.Palette, width, height int) string {
	return RenderSVG(NewConfig(id, pal), width, height, seed.Hash(id))
}

// smoothPath turns a polyline into a quadratic path, using each interior
// vertex as the control point toward the following midpoint.
func smoothPath(pts []point, closed bool) string {
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M %.2f %.2f", pts[0].x, pts[0].y)
	if len(pts) == 2 {
		fmt.Fprintf(&b, " L %.2f %.2f", pts[1].x, pts[1].y)
	} else if len(pts) > 2 {
		for i := 1; i < len(pts)-1; i++ {
			mx := (pts[i].x + pts[i+1].x) / 2
			my := (pts[i].y + pts[i+1].y) / 2
			fmt.Fprintf(&b, " Q %.2f %.2f %.2f %.2f", pts[i].x, pts[i].y, mx, my)
		}
		last := pts[len(pts)-1]
		fmt.Fprintf(&b, " L %.2f %.2f", last.x, last.y)
	}
	if closed {
		b.WriteString(" Z")
	}
	return b.String()
}
