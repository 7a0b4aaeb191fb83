package garden

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/tripledoublev/spores.garden-sub000/atid"
	"github.com/tripledoublev/spores.garden-sub000/migrate"
	"github.com/tripledoublev/spores.garden-sub000/theme"
)

// Garden is the top-level entry point for hosts embedding the library.
// It bundles deterministic rendering with namespace migration behind
// one handle:
//
//   - Rendering: a visual identity (palette, flower, contour field)
//     derived from an account identifier, served from a cache.
//   - Migration: moving an account's records from the legacy lexicon
//     namespace to the current one, exactly once per account.
type Garden interface {
	// Rendering

	// Theme returns the visual identity derived from did. The same
	// identifier always yields the same theme.
	Theme(did string) theme.Theme

	// FlowerSVG returns the flower rendered as a size x size SVG
	// document. Repeat renders are served from the cache.
	FlowerSVG(ctx context.Context, did string, size int) string

	// IsolineSVG returns the contour-field background rendered as a
	// width x height SVG document. Repeat renders are served from the
	// cache.
	IsolineSVG(ctx context.Context, did string, width, height int) string

	// CSSVariables returns the palette as CSS custom properties on
	// :root, ready to embed in a page.
	CSSVariables(did string) string

	// Migration

	// Migrate moves owner's legacy records onto the current namespace
	// and reports what it did. An empty owner defaults to the
	// configured identity's account.
	//
	// The returned error reports construction-level problems only,
	// such as a garden built without a store. Failures inside a run
	// never propagate here; they are reported in Outcome.Err so a host
	// can fire migration from its main flow without guarding it.
	Migrate(ctx context.Context, owner string) (migrate.Outcome, error)

	// Lifecycle

	// ClearCache drops every cached render for did. The next render
	// recomputes from scratch.
	ClearCache(ctx context.Context, did string) error

	// Close releases backend connections held by the garden.
	// It is safe to call more than once.
	Close() error
}

// defaultGarden is the concrete implementation of Garden.
type defaultGarden struct {
	logger    *slog.Logger
	generator *theme.Generator
	cache     theme.Cache
	markers   migrate.MarkerStore
	migrator  *migrate.Migrator
	identity  atid.Identity
	closeOnce sync.Once
	closeErr  error
}

var _ Garden = (*defaultGarden)(nil)

// New creates a Garden with the provided options. Zero-value
// construction works: with no options the garden renders with an
// in-process cache and skips migration.
//
// Example:
//
//	g, err := garden.New(
//	    garden.WithLogger(logger),
//	    garden.WithConfigFile("/etc/spores/garden.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close()
func New(opts ...Option) (Garden, error) {
	cfg := &gardenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var fileCfg *Config
	if cfg.configFile != "" {
		loaded, err := LoadConfig(cfg.configFile)
		if err != nil {
			return nil, NewConfigurationError("New", err)
		}
		fileCfg = loaded
	}

	// Create default logger if not provided
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: fileCfg.GetLogLevel(),
		}))
	}

	cache := cfg.cache
	if cache == nil {
		built, err := buildCache(fileCfg)
		if err != nil {
			return nil, err
		}
		cache = built
	}

	markers := cfg.markers
	if markers == nil && fileCfg != nil && fileCfg.Markers != nil {
		built, err := buildMarkers(fileCfg.Markers)
		if err != nil {
			return nil, err
		}
		markers = built
	}

	identity := cfg.identity
	if identity == nil {
		owner := ""
		if fileCfg != nil {
			owner = fileCfg.Owner
		}
		identity = atid.NewStatic(owner)
	}

	g := &defaultGarden{
		logger:   cfg.logger,
		cache:    cache,
		markers:  markers,
		identity: identity,
		generator: theme.NewGenerator(
			theme.WithCache(cache),
			theme.WithLogger(cfg.logger),
		),
	}

	if cfg.store != nil {
		mOpts := []migrate.MigratorOption{
			migrate.WithLogger(cfg.logger),
		}
		if cfg.tracer != nil {
			mOpts = append(mOpts, migrate.WithTracer(cfg.tracer))
		}
		if cfg.meter != nil {
			mOpts = append(mOpts, migrate.WithMeter(cfg.meter))
		}
		if markers != nil {
			mOpts = append(mOpts, migrate.WithMarkerStore(markers))
		}
		g.migrator = migrate.NewMigrator(cfg.store, identity, mOpts...)
	}

	return g, nil
}

// buildCache constructs the render cache named by the configuration.
// No configuration means an in-process cache.
func buildCache(fileCfg *Config) (theme.Cache, error) {
	if fileCfg == nil || fileCfg.Cache == nil {
		return theme.NewMemoryCache(), nil
	}

	switch backend := fileCfg.Cache.GetBackend(); backend {
	case "memory":
		return theme.NewMemoryCache(), nil

	case "redis":
		cache, err := theme.NewRedisCache(theme.RedisOptions{
			URL: fileCfg.Cache.URL,
			TTL: fileCfg.Cache.GetTTL(),
		})
		if err != nil {
			return nil, NewNetworkError("New", err)
		}
		return cache, nil

	default:
		err := fmt.Errorf("%w: cache backend %q", ErrUnknownBackend, backend)
		return nil, NewConfigurationError("New", err)
	}
}

// buildMarkers constructs the marker store named by the configuration.
func buildMarkers(markerCfg *MarkerConfig) (migrate.MarkerStore, error) {
	switch backend := markerCfg.GetBackend(); backend {
	case "memory":
		return migrate.NewMemoryMarkers(), nil

	case "redis":
		markers, err := migrate.NewRedisMarkers(migrate.RedisOptions{
			URL: markerCfg.URL,
			TTL: markerCfg.GetTTL(),
		})
		if err != nil {
			return nil, NewNetworkError("New", err)
		}
		return markers, nil

	case "etcd":
		markers, err := migrate.NewEtcdMarkers(migrate.EtcdConfig{
			Endpoints: markerCfg.Endpoints,
			Namespace: markerCfg.GetNamespace(),
		})
		if err != nil {
			return nil, NewNetworkError("New", err)
		}
		return markers, nil

	default:
		err := fmt.Errorf("%w: marker backend %q", ErrUnknownBackend, backend)
		return nil, NewConfigurationError("New", err)
	}
}

// Theme returns the visual identity for did.
func (g *defaultGarden) Theme(did string) theme.Theme {
	return g.generator.Theme(did)
}

// FlowerSVG returns the cached or freshly rendered flower for did.
func (g *defaultGarden) FlowerSVG(ctx context.Context, did string, size int) string {
	return g.generator.FlowerSVG(ctx, did, size)
}

// IsolineSVG returns the cached or freshly rendered contour field for did.
func (g *defaultGarden) IsolineSVG(ctx context.Context, did string, width, height int) string {
	return g.generator.IsolineSVG(ctx, did, width, height)
}

// CSSVariables returns did's palette as CSS custom properties.
func (g *defaultGarden) CSSVariables(did string) string {
	return g.generator.Theme(did).CSSVariables()
}

// Migrate runs the namespace migration for owner.
func (g *defaultGarden) Migrate(ctx context.Context, owner string) (migrate.Outcome, error) {
	if g.migrator == nil {
		return migrate.Outcome{}, NewConfigurationError("Garden.Migrate", ErrNoStore)
	}

	if owner == "" {
		owner = g.identity.DID()
	}

	return g.migrator.Run(ctx, owner), nil
}

// ClearCache drops every cached render for did.
func (g *defaultGarden) ClearCache(ctx context.Context, did string) error {
	return g.generator.ClearCache(ctx, did)
}

// Close releases the cache and marker store backends. Later calls
// return the first result.
func (g *defaultGarden) Close() error {
	g.closeOnce.Do(func() {
		var errs []error

		if g.cache != nil {
			if err := g.cache.Close(); err != nil {
				errs = append(errs, fmt.Errorf("failed to close render cache: %w", err))
			}
		}

		if closer, ok := g.markers.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("failed to close marker store: %w", err))
			}
		}

		g.closeErr = errors.Join(errs...)
	})

	return g.closeErr
}
