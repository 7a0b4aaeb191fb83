package palette

import (
	"github.com/tripledoublev/spores.garden-sub000/seed"
)

// Palette is the full color scheme for one garden. All fields are
// lowercase "#rrggbb" strings, ready to drop into CSS custom
// properties. A palette is derived once per identifier and never
// mutated; callers cache it.
type Palette struct {
	Background          string `json:"background"`
	Text                string `json:"text"`
	Primary             string `json:"primary"`
	Accent              string `json:"accent"`
	Muted               string `json:"muted"`
	Border              string `json:"border"`
	BorderMuted         string `json:"border-muted"`
	ButtonSecondaryText string `json:"button-secondary-text"`
	ButtonAccentText    string `json:"button-accent-text"`
}

// quant rounds a color to its 8-bit hex representation. Every color
// that ends up in the palette passes through here before any contrast
// check, so the thresholds hold for the exact hex values callers see,
// not just for the pre-rounding floats.
func quant(c Color) Color {
	q, _ := ParseHex(c.Hex())
	return q
}

// Generate derives the palette for did. The derivation is pure: the
// identifier hash seeds the background HSL, and every other color is
// produced by bounded adjustment loops against the documented contrast
// floors. See the package comment for the guarantee list.
func Generate(did string) Palette {
	h := seed.Hash(did)
	u := uint32(int64(h))
	if h < 0 {
		u = uint32(-int64(h))
	}

	// Background from disjoint slices of the hash: low bits pick the
	// hue, the next byte the saturation, the next the lightness.
	hue := float64(u % 360)
	sat := 0.6 + float64((u>>8)%30)/100
	if sat > 1.0 {
		sat = 1.0
	}
	light := 0.55 + float64((u>>16)%25)/100
	if light > 0.95 {
		light = 0.95
	}

	bg := quant(FromHSL(hue, sat, light))

	// Lighten until black body text is readable. Terminates by
	// construction: near the 0.98 ceiling every hue is close to white.
	for Contrast(bg, Black) < 4.5 && light < 0.98 {
		light += 0.05
		bg = quant(FromHSL(hue, sat, light))
	}

	text := Black

	// Primary and accent come from a perceptual fade between the
	// background and black: steps 2 and 3 of 5, with a saturation
	// boost so they read as deliberate colors rather than gray.
	grad := Gradient(bg, text, 5)
	primary := quant(grad[1].Saturate(0.3))
	accent := quant(grad[2].Saturate(0.3))

	for i := 0; i < 20 && Contrast(primary, bg) < 3.0; i++ {
		primary = quant(primary.Darken(0.05))
	}
	for i := 0; i < 20 && Contrast(accent, bg) < 3.0; i++ {
		accent = quant(accent.Darken(0.05))
	}

	// Muted text: blend toward black until readable.
	mutedMix := 0.4
	muted := quant(Mix(bg, text, mutedMix))
	for Contrast(muted, bg) < 4.5 && mutedMix < 1.0 {
		mutedMix += 0.1
		muted = quant(Mix(bg, text, mutedMix))
	}

	// Borders only need to be distinguishable, not readable.
	borderMix := 0.3
	border := quant(Mix(bg, text, borderMix))
	for Contrast(border, bg) < 2.0 && borderMix < 1.0 {
		borderMix += 0.1
		border = quant(Mix(bg, text, borderMix))
	}
	borderMuted := quant(Mix(bg, border, 0.6))

	// Accent buttons carry their own text color. Pick the better of
	// white and black, then push the accent itself until the pair
	// meets the readability floor. Note this adjustment can pull the
	// accent back toward the background; the accent/background floor
	// is intentionally not re-checked afterwards.
	accentText := Black
	textIsWhite := false
	if Contrast(accent, White) > 4.5 {
		accentText = White
		textIsWhite = true
	}
	for i := 0; i < 20 && Contrast(accent, accentText) < 4.5; i++ {
		if textIsWhite {
			accent = quant(accent.Darken(0.05))
		} else {
			accent = quant(accent.Lighten(0.05))
		}
	}

	secondaryText := Black
	if Contrast(primary, White) > 4.5 {
		secondaryText = White
	}

	return Palette{
		Background:          bg.Hex(),
		Text:                text.Hex(),
		Primary:             primary.Hex(),
		Accent:              accent.Hex(),
		Muted:               muted.Hex(),
		Border:              border.Hex(),
		BorderMuted:         borderMuted.Hex(),
		ButtonSecondaryText: secondaryText.Hex(),
		ButtonAccentText:    accentText.Hex(),
	}
}
