package isoline

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripledoublev/spores.garden-sub000/palette"
)

func TestRenderDeterminism(t *testing.T) {
	const id = "did:plc:abc123"
	pal := palette.Generate(id)

	a := Render(id, pal, 300, 200)
	b := Render(id, pal, 300, 200)
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "<svg "))
	assert.True(t, strings.HasSuffix(a, "</svg>"))
	assert.Contains(t, a, `viewBox="0 0 300 200"`)
	assert.Contains(t, a, "<path ")
	assert.Contains(t, a, fmt.Sprintf(`stroke="%s"`, pal.Border))
}

func TestRenderDistinctPerIdentifier(t *testing.T) {
	palA := palette.Generate("did:plc:abc123")
	palB := palette.Generate("did:web:example.com")
	a := Render("did:plc:abc123", palA, 300, 200)
	b := Render("did:web:example.com", palB, 300, 200)
	assert.NotEqual(t, a, b)
}

func TestRenderFillsClosedChains(t *testing.T) {
	// Across a handful of identifiers at this size, at least one render
	// carries a filled interior region.
	found := false
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("did:plc:fill%d", i)
		svg := Render(id, palette.Generate(id), 400, 300)
		if strings.Contains(svg, "fill-opacity=") {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestGridResolution(t *testing.T) {
	assert.Equal(t, 80, gridResolution(300, 200))
	assert.Equal(t, 80, gridResolution(100, 100))
	assert.Equal(t, 120, gridResolution(1200, 800))
	assert.Equal(t, 160, gridResolution(2000, 500))
	assert.Equal(t, 160, gridResolution(4000, 4000))
}

func TestSmoothPath(t *testing.T) {
	pts := []point{{0, 0}, {10, 0}, {10, 10}}
	open := smoothPath(pts, false)
	assert.Equal(t, "M 0.00 0.00 Q 10.00 0.00 10.00 5.00 L 10.00 10.00", open)
	assert.Equal(t, open+" Z", smoothPath(pts, true))
	assert.Equal(t, "M 1.00 2.00 L 3.00 4.00", smoothPath([]point{{1, 2}, {3, 4}}, false))
	assert.Empty(t, smoothPath(nil, false))
}
