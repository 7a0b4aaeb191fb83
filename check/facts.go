package check

import (
	"reflect"

	"github.com/tripledoublev/spores.garden-sub000/palette"
	"github.com/tripledoublev/spores.garden-sub000/theme"
)

// Facts flattens a generated theme into the document rules evaluate
// against. Top-level variables:
//
//	did      string               the source identifier
//	stable   bool                 regenerating from did yields the same theme
//	palette  map[string]string    hex colors, camelCase field names
//	contrast map[string]double    WCAG ratios between palette pairs
//	flower   map[string]dyn       flower parameters
//	isoline  map[string]dyn       contour configuration
//
// Facts is total: it never fails, whatever the theme contains.
func Facts(t theme.Theme) map[string]any {
	again := theme.New(t.DID)

	bg := parseOr(t.Palette.Background, palette.Black)
	text := parseOr(t.Palette.Text, palette.Black)
	primary := parseOr(t.Palette.Primary, palette.Black)
	accent := parseOr(t.Palette.Accent, palette.Black)
	muted := parseOr(t.Palette.Muted, palette.Black)
	border := parseOr(t.Palette.Border, palette.Black)
	secondaryText := parseOr(t.Palette.ButtonSecondaryText, palette.Black)
	accentText := parseOr(t.Palette.ButtonAccentText, palette.Black)

	return map[string]any{
		"did":    t.DID,
		"stable": reflect.DeepEqual(t, again),
		"palette": map[string]string{
			"background":          t.Palette.Background,
			"text":                t.Palette.Text,
			"primary":             t.Palette.Primary,
			"accent":              t.Palette.Accent,
			"muted":               t.Palette.Muted,
			"border":              t.Palette.Border,
			"borderMuted":         t.Palette.BorderMuted,
			"buttonSecondaryText": t.Palette.ButtonSecondaryText,
			"buttonAccentText":    t.Palette.ButtonAccentText,
		},
		"contrast": map[string]float64{
			"textBackground":    palette.Contrast(bg, text),
			"primaryBackground": palette.Contrast(primary, bg),
			"accentBackground":  palette.Contrast(accent, bg),
			"mutedBackground":   palette.Contrast(muted, bg),
			"borderBackground":  palette.Contrast(border, bg),
			"primaryText":       palette.Contrast(primary, secondaryText),
			"accentText":        palette.Contrast(accent, accentText),
		},
		"flower": map[string]any{
			"petalCount":          t.Flower.PetalCount,
			"petalShape":          string(t.Flower.Shape),
			"petalSize":           t.Flower.PetalSize,
			"petalRotation":       t.Flower.Rotation,
			"layerCount":          t.Flower.LayerCount,
			"layerRotationOffset": t.Flower.LayerRotationOffset,
			"layerSizeDecay":      t.Flower.LayerSizeDecay,
			"petalSizeJitter":     t.Flower.SizeJitter,
			"petalAngleJitter":    t.Flower.AngleJitter,
			"petalCurveJitter":    t.Flower.CurveJitter,
			"centerStyle":         string(t.Flower.CenterStyle),
			"centerSize":          t.Flower.CenterSize,
			"stamenCount":         t.Flower.StamenCount,
			"hasStem":             t.Flower.HasStem,
			"hasLeaves":           t.Flower.HasLeaves,
			"leafStyle":           string(t.Flower.LeafStyle),
		},
		"isoline": map[string]any{
			"noiseScale":   t.Isoline.NoiseScale,
			"noiseOctaves": t.Isoline.NoiseOctaves,
			"contourCount": t.Isoline.ContourCount,
			"strokeWidth":  t.Isoline.StrokeWidth,
			"thresholdMin": t.Isoline.ThresholdMin,
			"thresholdMax": t.Isoline.ThresholdMax,
			"strokeColor":  t.Isoline.StrokeColor,
			"fillColor":    t.Isoline.FillColor,
		},
	}
}

// parseOr parses a palette hex string, falling back when it does not
// parse so fact derivation stays total.
func parseOr(hex string, fallback palette.Color) palette.Color {
	c, err := palette.ParseHex(hex)
	if err != nil {
		return fallback
	}
	return c
}
