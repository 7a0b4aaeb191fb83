// Package garden generates deterministic visual identities for atproto
// accounts and migrates their records between lexicon namespaces.
//
// Every account identifier (DID) deterministically yields a palette, a
// procedural flower, and a contour-line background. The same identifier
// always produces byte-identical output, across processes and releases,
// so rendered identities can be cached, diffed, and regenerated freely.
//
// # Core Concepts
//
// The library is organized around a small set of packages:
//
//   - seed: the shared string hash and PRNG every derivation draws from
//   - palette: contrast-checked color palettes derived from a DID
//   - flower: procedural flower parameters and SVG rendering
//   - isoline: noise-field contour backgrounds rendered as SVG
//   - theme: the bundled identity plus render caching
//   - repo, nsid, migrate: record storage, namespace mapping, and the
//     migration engine that moves accounts onto the current namespace
//   - check: declarative invariant rules over generated themes
//
// # Getting Started
//
// Construct a Garden and render from it:
//
//	g, err := garden.New(
//	    garden.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close()
//
//	svg := g.FlowerSVG(ctx, "did:plc:ewvi7nxzyoun6zhxrhs64oiz", 200)
//	css := g.CSSVariables("did:plc:ewvi7nxzyoun6zhxrhs64oiz")
//
// # Determinism
//
// All visual derivations draw from a seeded generator in a fixed order.
// Changing the order or count of draws changes every identity ever
// rendered, so the draw sequences are pinned by tests and must be
// treated as a compatibility contract.
//
// # Rendering and Caching
//
// Rendered SVG markup is cached keyed by identifier and geometry. The
// default cache is in-process; a Redis backend shares renders between
// processes. Configure it with WithRenderCache or a garden.yaml file:
//
//	cache:
//	  backend: redis
//	  url: redis://localhost:6379
//	  ttl: 1h
//
// # Namespace Migration
//
// Records written under the legacy com.spores.garden.* collections are
// moved to their garden.spores.* counterparts by Migrate. A run is
// idempotent and conservative: records already migrated are skipped,
// records that diverge between namespaces are kept in both and reported
// as conflicts, and a completion marker prevents repeat scans once an
// account is clean. Marker stores back onto memory, Redis, or etcd.
//
//	outcome, err := g.Migrate(ctx, "did:plc:ewvi7nxzyoun6zhxrhs64oiz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if outcome.Err != nil {
//	    log.Printf("migration aborted: %v", outcome.Err)
//	}
//
// # Error Handling
//
// The package uses sentinel errors and a structured error type:
//
//	if err != nil {
//	    if errors.Is(err, garden.ErrNoStore) {
//	        // Handle missing store
//	    }
//	    var gerr *garden.Error
//	    if errors.As(err, &gerr) {
//	        log.Printf("op=%s kind=%s", gerr.Op, gerr.Kind)
//	    }
//	}
//
// # Observability
//
// Migration integrates OpenTelemetry when a tracer or meter is
// provided. Runs become spans with per-collection children, and
// counters record writes, deletes, skips, and conflicts.
//
//	g, err := garden.New(
//	    garden.WithTracer(otel.Tracer("garden")),
//	    garden.WithMeter(otel.Meter("garden")),
//	)
//
// # Thread Safety
//
// All Garden methods are safe for concurrent use. Store, cache, and
// marker implementations supplied by the host must be safe for
// concurrent use as well.
package garden
