package garden

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/tripledoublev/spores.garden-sub000/atid"
	"github.com/tripledoublev/spores.garden-sub000/migrate"
	"github.com/tripledoublev/spores.garden-sub000/repo"
	"github.com/tripledoublev/spores.garden-sub000/theme"
)

// Option configures a Garden.
type Option func(*gardenConfig)

// gardenConfig holds configuration collected from options before
// construction.
type gardenConfig struct {
	configFile string
	logger     *slog.Logger
	tracer     trace.Tracer
	meter      metric.Meter
	store      repo.Store
	identity   atid.Identity
	cache      theme.Cache
	markers    migrate.MarkerStore
}

// WithConfigFile sets the garden.yaml configuration file path. Settings
// from the file fill in whatever the other options leave unset; options
// always win over the file.
func WithConfigFile(path string) Option {
	return func(c *gardenConfig) {
		c.configFile = path
	}
}

// WithLogger sets a custom logger for the garden.
// If not provided, a default logger will be created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *gardenConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for distributed tracing.
// Migration runs and their per-collection phases are recorded as spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *gardenConfig) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter for metrics.
// Migration counters (writes, deletes, conflicts, pages) are recorded
// against it.
func WithMeter(meter metric.Meter) Option {
	return func(c *gardenConfig) {
		c.meter = meter
	}
}

// WithStore sets the repository store migration runs against.
// Without a store, Migrate returns ErrNoStore; rendering still works.
func WithStore(store repo.Store) Option {
	return func(c *gardenConfig) {
		c.store = store
	}
}

// WithIdentity sets the identity migration authenticates callers
// against. If not provided, the owner from the configuration file is
// used; with neither, no account is authenticated and every migration
// run is skipped.
func WithIdentity(identity atid.Identity) Option {
	return func(c *gardenConfig) {
		c.identity = identity
	}
}

// WithRenderCache sets the cache rendered SVG markup is kept in.
// If not provided, the backend named in the configuration file is used,
// falling back to an in-process cache.
func WithRenderCache(cache theme.Cache) Option {
	return func(c *gardenConfig) {
		c.cache = cache
	}
}

// WithMarkerStore sets the store migration completion markers are kept
// in. Markers let repeat runs for an already-migrated account return
// without scanning the repository; they are an optimization only, and
// runs stay correct without one.
func WithMarkerStore(markers migrate.MarkerStore) Option {
	return func(c *gardenConfig) {
		c.markers = markers
	}
}
