package flower

import (
	"github.com/tripledoublev/spores.garden-sub000/palette"
	"github.com/tripledoublev/spores.garden-sub000/seed"
)

// Shape selects the petal outline formula.
type Shape string

const (
	// ShapeRound is a full-bodied petal with symmetric cubic sides.
	ShapeRound Shape = "round"

	// ShapePointed is a narrow petal tapering to a sharp tip.
	ShapePointed Shape = "pointed"

	// ShapeWavy is a petal with undulating edges.
	ShapeWavy Shape = "wavy"

	// ShapeHeart is a petal with two outer lobes and a notched tip.
	ShapeHeart Shape = "heart"

	// ShapeTulip is a cupped petal with a flared, split rim.
	ShapeTulip Shape = "tulip"
)

// CenterStyle selects how the flower center is drawn.
type CenterStyle string

const (
	// CenterSimple is a plain filled disc.
	CenterSimple CenterStyle = "simple"

	// CenterStamen is a disc with radiating stamens tipped by anther dots.
	CenterStamen CenterStyle = "stamen"

	// CenterSpiral arranges dots along a golden-angle spiral.
	CenterSpiral CenterStyle = "spiral"

	// CenterDots scatters dots across the center area.
	CenterDots CenterStyle = "dots"

	// CenterRing draws concentric stroked rings around a small disc.
	CenterRing CenterStyle = "ring"
)

// LeafStyle selects the leaf outline used when the stem carries leaves.
type LeafStyle string

const (
	LeafEllipse  LeafStyle = "ellipse"
	LeafPointed  LeafStyle = "pointed"
	LeafSerrated LeafStyle = "serrated"
)

// Selection tables for the enum draws. Table order is part of the
// determinism contract.
var (
	shapes       = []Shape{ShapeRound, ShapePointed, ShapeWavy, ShapeHeart, ShapeTulip}
	centerStyles = []CenterStyle{CenterSimple, CenterStamen, CenterSpiral, CenterDots, CenterRing}
	leafStyles   = []LeafStyle{LeafEllipse, LeafPointed, LeafSerrated}
)

// Colors are the fills and strokes a flower is drawn with, assigned from
// the identity palette by DeriveColors.
type Colors struct {
	Petal  string `json:"petal"`
	Center string `json:"center"`
	Stem   string `json:"stem"`
	Leaf   string `json:"leaf"`
}

// DeriveColors maps an identity palette onto flower parts.
func DeriveColors(p palette.Palette) Colors {
	return Colors{
		Petal:  p.Primary,
		Center: p.Accent,
		Stem:   p.Muted,
		Leaf:   p.Border,
	}
}

// Params describes one flower.
type Params struct {
	PetalCount          int         `json:"petalCount"`
	Shape               Shape       `json:"petalShape"`
	PetalSize           float64     `json:"petalSize"`
	Rotation            float64     `json:"petalRotation"`
	LayerCount          int         `json:"layerCount"`
	LayerRotationOffset float64     `json:"layerRotationOffset"`
	LayerSizeDecay      float64     `json:"layerSizeDecay"`
	SizeJitter          float64     `json:"petalSizeJitter"`
	AngleJitter         float64     `json:"petalAngleJitter"`
	CurveJitter         float64     `json:"petalCurveJitter"`
	CenterStyle         CenterStyle `json:"centerStyle"`
	CenterSize          float64     `json:"centerSize"`
	StamenCount         int         `json:"stamenCount"`
	HasStem             bool        `json:"hasStem"`
	HasLeaves           bool        `json:"hasLeaves"`
	LeafStyle           LeafStyle   `json:"leafStyle"`
	Colors              Colors      `json:"colors"`
}

// NewParams draws flower parameters from src in the frozen field order
// below. HasLeaves consumes a draw only when HasStem came up true;
// LeafStyle is always drawn, stem or not.
func NewParams(src *seed.Source, colors Colors) Params {
	p := Params{Colors: colors}
	p.PetalCount = src.IntRange(4, 10)
	p.Shape = shapes[src.Pick(len(shapes))]
	p.PetalSize = src.Range(0.5, 0.9)
	p.Rotation = src.Range(0, 360)
	p.LayerCount = src.IntRange(1, 3)
	p.LayerRotationOffset = src.Range(15, 45)
	p.LayerSizeDecay = src.Range(0.6, 0.8)
	p.SizeJitter = src.Range(0.1, 0.25)
	p.AngleJitter = src.Range(3, 10)
	p.CurveJitter = src.Range(0.1, 0.3)
	p.CenterStyle = centerStyles[src.Pick(len(centerStyles))]
	p.CenterSize = src.Range(0.12, 0.24)
	p.StamenCount = src.IntRange(5, 12)
	p.HasStem = src.Bool(0.6)
	p.HasLeaves = p.HasStem && src.Bool(0.5)
	p.LeafStyle = leafStyles[src.Pick(len(leafStyles))]
	return p
}

// Generate derives the flower parameters for an identifier from a fresh
// stream seeded on it, with colors taken from the identity palette.
func Generate(id string, pal palette.Palette) Params {
	return NewParams(seed.New(id), DeriveColors(pal))
}

// Render produces the complete flower SVG for an identifier. Parameter
// draws and rendering draws come from one continuous stream, so the
// markup is fully determined by the identifier and palette.
func Render(id string, pal palette.Palette, size int) string {
	src := seed.New(id)
	p := NewParams(src, DeriveColors(pal))
	return RenderSVG(p, size, src)
}
