package theme

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tripledoublev/spores.garden-sub000/flower"
	"github.com/tripledoublev/spores.garden-sub000/isoline"
	"github.com/tripledoublev/spores.garden-sub000/palette"
)

// RenderKind names a cacheable artwork variant.
type RenderKind string

const (
	KindFlower  RenderKind = "flower"
	KindIsoline RenderKind = "isoline"
)

// renderKey builds the cache key for one rendered artwork.
func renderKey(did string, w, h int, kind RenderKind) string {
	return fmt.Sprintf("garden:render:%s:%dx%d:%s", did, w, h, kind)
}

// clearPrefix is the key prefix shared by every render for an identifier.
func clearPrefix(did string) string {
	return fmt.Sprintf("garden:render:%s:", did)
}

// Generator derives themes and rendered artwork, optionally caching
// markup by identifier and geometry.
type Generator struct {
	cache  Cache
	logger *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithCache sets the markup cache.
// Without one every render recomputes from scratch.
func WithCache(c Cache) GeneratorOption {
	return func(g *Generator) {
		g.cache = c
	}
}

// WithLogger sets a custom logger for the generator.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Theme derives the full theme for an identifier. Pure computation; the
// cache is not consulted.
func (g *Generator) Theme(did string) Theme {
	return New(did)
}

// FlowerSVG returns the flower artwork for an identifier at the given
// square size, from cache when possible.
func (g *Generator) FlowerSVG(ctx context.Context, did string, size int) string {
	key := renderKey(did, size, size, KindFlower)
	if markup, ok := g.cached(ctx, key); ok {
		return markup
	}
	markup := flower.Render(did, palette.Generate(did), size)
	g.store(ctx, key, markup)
	return markup
}

// IsolineSVG returns the contour artwork for an identifier at the given
// dimensions, from cache when possible.
func (g *Generator) IsolineSVG(ctx context.Context, did string, width, height int) string {
	key := renderKey(did, width, height, KindIsoline)
	if markup, ok := g.cached(ctx, key); ok {
		return markup
	}
	markup := isoline.Render(did, palette.Generate(did), width, height)
	g.store(ctx, key, markup)
	return markup
}

// ClearCache drops all cached renders for an identifier.
func (g *Generator) ClearCache(ctx context.Context, did string) error {
	if g.cache == nil {
		return nil
	}
	return g.cache.Clear(ctx, did)
}

func (g *Generator) cached(ctx context.Context, key string) (string, bool) {
	if g.cache == nil {
		return "", false
	}
	markup, ok, err := g.cache.Get(ctx, key)
	if err != nil {
		g.logger.Warn("render cache read failed", "key", key, "error", err)
		return "", false
	}
	return markup, ok
}

func (g *Generator) store(ctx context.Context, key, markup string) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Put(ctx, key, markup); err != nil {
		g.logger.Warn("render cache write failed", "key", key, "error", err)
	}
}
