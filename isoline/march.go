package isoline

import "math"

// closeEps is the endpoint distance, in output units, under which a
// stitched chain counts as closed.
const closeEps = 0.5

type point struct {
	x, y float64
}

type segment struct {
	a, b point
}

type chain struct {
	pts    []point
	closed bool
}

// cross returns the fraction along an edge where the contour level t
// crosses between corner values a and b.
func cross(a, b, t float64) float64 {
	if b == a {
		return 0.5
	}
	return (t - a) / (b - a)
}

// bendSegments replaces the straight cut from a to b with two segments
// meeting at the midpoint pushed perpendicular by off.
func bendSegments(a, b point, off float64) []segment {
	mx := (a.x + b.x) / 2
	my := (a.y + b.y) / 2
	dx := b.x - a.x
	dy := b.y - a.y
	n := math.Hypot(dx, dy)
	if n == 0 {
		m := point{mx, my}
		return []segment{{a, m}, {m, b}}
	}
	m := point{mx - dy/n*off, my + dx/n*off}
	return []segment{{a, m}, {m, b}}
}

// marchCells extracts contour segments for level t from a sample grid.
// Corner bits: top-left 8, top-right 4, bottom-right 2, bottom-left 1,
// set when the corner value is above t. The two saddle cases bend their
// cuts by 22% of the cell size instead of cutting straight.
func marchCells(field [][]float64, t, cw, ch float64) []segment {
	res := len(field) - 1
	bendOff := 0.22 * (cw + ch) / 2
	var segs []segment
	for y := 0; y < res; y++ {
		for x := 0; x < res; x++ {
			v0 := field[y][x]
			v1 := field[y][x+1]
			v2 := field[y+1][x+1]
			v3 := field[y+1][x]
			idx := 0
			if v0 > t {
				idx |= 8
			}
			if v1 > t {
				idx |= 4
			}
			if v2 > t {
				idx |= 2
			}
			if v3 > t {
				idx |= 1
			}
			if idx == 0 || idx == 15 {
				continue
			}

			x0 := float64(x) * cw
			y0 := float64(y) * ch
			top := point{x0 + cw*cross(v0, v1, t), y0}
			right := point{x0 + cw, y0 + ch*cross(v1, v2, t)}
			bottom := point{x0 + cw*cross(v3, v2, t), y0 + ch}
			left := point{x0, y0 + ch*cross(v0, v3, t)}

			switch idx {
			case 1, 14:
				segs = append(segs, segment{left, bottom})
			case 2, 13:
				segs = append(segs, segment{bottom, right})
			case 3, 12:
				segs = append(segs, segment{left, right})
			case 4, 11:
				segs = append(segs, segment{top, right})
			case 6, 9:
				segs = append(segs, segment{top, bottom})
			case 7, 8:
				segs = append(segs, segment{top, left})
			case 5:
				segs = append(segs, bendSegments(top, right, bendOff)...)
				segs = append(segs, bendSegments(left, bottom, bendOff)...)
			case 10:
				segs = append(segs, bendSegments(top, left, bendOff)...)
				segs = append(segs, bendSegments(bottom, right, bendOff)...)
			}
		}
	}
	return segs
}

// stitch joins segments sharing endpoints into chains and classifies
// each as open or closed by endpoint proximity.
func stitch(segs []segment) []chain {
	type key struct {
		x, y int64
	}
	quant := func(p point) key {
		return key{int64(math.Round(p.x * 1024)), int64(math.Round(p.y * 1024))}
	}

	adj := make(map[key][]int, len(segs)*2)
	for i, s := range segs {
		adj[quant(s.a)] = append(adj[quant(s.a)], i)
		adj[quant(s.b)] = append(adj[quant(s.b)], i)
	}
	used := make([]bool, len(segs))

	takeNext := func(p point) (point, bool) {
		k := quant(p)
		for _, i := range adj[k] {
			if used[i] {
				continue
			}
			used[i] = true
			if quant(segs[i].a) == k {
				return segs[i].b, true
			}
			return segs[i].a, true
		}
		return point{}, false
	}

	var chains []chain
	for i := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		pts := []point{segs[i].a, segs[i].b}
		for {
			next, ok := takeNext(pts[len(pts)-1])
			if !ok {
				break
			}
			pts = append(pts, next)
		}
		for {
			prev, ok := takeNext(pts[0])
			if !ok {
				break
			}
			pts = append([]point{prev}, pts...)
		}
		chains = append(chains, chain{pts: pts, closed: isClosed(pts)})
	}
	return chains
}

func isClosed(pts []point) bool {
	if len(pts) < 3 {
		return false
	}
	first := pts[0]
	last := pts[len(pts)-1]
	return math.Hypot(first.x-last.x, first.y-last.y) <= closeEps
}
