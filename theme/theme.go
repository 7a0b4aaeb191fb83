package theme

import (
	"fmt"
	"strings"

	"github.com/tripledoublev/spores.garden-sub000/flower"
	"github.com/tripledoublev/spores.garden-sub000/isoline"
	"github.com/tripledoublev/spores.garden-sub000/palette"
)

// Theme bundles everything visually derived from one identifier.
type Theme struct {
	DID     string          `json:"did"`
	Palette palette.Palette `json:"palette"`
	Flower  flower.Params   `json:"flower"`
	Isoline isoline.Config  `json:"isoline"`
}

// New derives the theme for an identifier. Pure and deterministic; the
// palette feeds both the flower and contour derivations.
func New(did string) Theme {
	pal := palette.Generate(did)
	return Theme{
		DID:     did,
		Palette: pal,
		Flower:  flower.Generate(did, pal),
		Isoline: isoline.NewConfig(did, pal),
	}
}

// CSSVariables renders the palette as CSS custom properties on :root,
// one per palette field, in the palette's field order.
func (t Theme) CSSVariables() string {
	pairs := []struct {
		name, value string
	}{
		{"background", t.Palette.Background},
		{"text", t.Palette.Text},
		{"primary", t.Palette.Primary},
		{"accent", t.Palette.Accent},
		{"muted", t.Palette.Muted},
		{"border", t.Palette.Border},
		{"border-muted", t.Palette.BorderMuted},
		{"button-secondary-text", t.Palette.ButtonSecondaryText},
		{"button-accent-text", t.Palette.ButtonAccentText},
	}
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, p := range pairs {
		fmt.Fprintf(&b, "  --%s: %s;\n", p.name, p.value)
	}
	b.WriteString("}\n")
	return b.String()
}
