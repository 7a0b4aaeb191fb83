package migrate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/tripledoublev/spores.garden-sub000/atid"
	"github.com/tripledoublev/spores.garden-sub000/nsid"
	"github.com/tripledoublev/spores.garden-sub000/repo"
)

const (
	// defaultPageLimit is the page size requested while listing legacy
	// records.
	defaultPageLimit = 50

	// maxPages caps pagination per collection. Together with repeated
	// cursor detection it guarantees the driver terminates against any
	// store, however broken its cursors are.
	maxPages = 200
)

// Migrator drives the namespace migration for one store. It holds no
// per-run state, so a single Migrator may serve any number of distinct
// owners concurrently.
type Migrator struct {
	store     repo.Store
	identity  atid.Identity
	markers   MarkerStore
	logger    *slog.Logger
	tracer    trace.Tracer
	meter     metric.Meter
	metrics   *otelMetrics
	pageLimit int
}

// MigratorOption configures a Migrator.
type MigratorOption func(*Migrator)

// WithMarkerStore sets where completion markers are kept.
// Without one markers live in process memory.
func WithMarkerStore(m MarkerStore) MigratorOption {
	return func(mig *Migrator) {
		mig.markers = m
	}
}

// WithLogger sets a custom logger for the migrator.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) MigratorOption {
	return func(mig *Migrator) {
		mig.logger = logger
	}
}

// WithTracer enables a span per run and per collection.
func WithTracer(t trace.Tracer) MigratorOption {
	return func(mig *Migrator) {
		mig.tracer = t
	}
}

// WithMeter enables the migration counters.
func WithMeter(m metric.Meter) MigratorOption {
	return func(mig *Migrator) {
		mig.meter = m
	}
}

// WithPageLimit sets the page size requested while listing legacy
// records. Values below one fall back to the default.
func WithPageLimit(n int) MigratorOption {
	return func(mig *Migrator) {
		if n > 0 {
			mig.pageLimit = n
		}
	}
}

// NewMigrator creates a Migrator over the given store and identity.
func NewMigrator(store repo.Store, identity atid.Identity, opts ...MigratorOption) *Migrator {
	m := &Migrator{
		store:     store,
		identity:  identity,
		pageLimit: defaultPageLimit,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.markers == nil {
		m.markers = NewMemoryMarkers()
	}

	metrics, err := m.initMetrics()
	if err != nil {
		m.logger.Warn("failed to create migration metrics", "error", err)
	}
	m.metrics = metrics

	return m
}

// Run migrates every legacy record of owner onto the current
// namespace. It never returns an error and never panics: failures are
// caught at the top level, logged, and reported in the Outcome, so
// callers can fire it from their main flow without guarding it.
//
// A run is skipped outright when the caller is not authenticated as
// owner or when the owner's completion marker is already set. The
// marker is written only after a clean run, one with no failure, no
// conflict, and no truncated collection.
func (m *Migrator) Run(ctx context.Context, owner string) Outcome {
	outcome := Outcome{RunID: uuid.NewString(), Owner: owner}
	log := m.logger.With("run_id", outcome.RunID, "owner", owner)

	var span trace.Span
	if m.tracer != nil {
		ctx, span = m.tracer.Start(ctx, "garden.migrate.run")
		defer func() {
			m.finishRunSpan(span, &outcome)
		}()
	}
	defer func() {
		m.recordRun(ctx, &outcome)
	}()

	if !m.identity.IsAuthenticatedAs(owner) {
		outcome.Skipped = SkipNotAuthenticated
		log.Info("migration skipped", "reason", outcome.Skipped)
		return outcome
	}

	if m.markerDone(ctx, owner, log) {
		outcome.Skipped = SkipAlreadyMigrated
		log.Debug("migration skipped", "reason", outcome.Skipped)
		return outcome
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				outcome.Err = fmt.Errorf("migration panicked: %v", r)
			}
		}()
		outcome.Err = m.migrate(ctx, owner, &outcome, log)
	}()

	if outcome.Err != nil {
		log.Error("migration aborted",
			"error", outcome.Err,
			"writes", outcome.Writes,
			"deletes", outcome.Deletes,
			"conflicts", outcome.Conflicts)
	} else {
		log.Info("migration complete",
			"writes", outcome.Writes,
			"deletes", outcome.Deletes,
			"skips", outcome.Skips,
			"conflicts", outcome.Conflicts,
			"pages", outcome.Pages)
		if outcome.Clean() {
			m.setMarker(ctx, owner, log)
		}
	}

	return outcome
}

// migrate walks the mapping table in order. Counters accumulate into
// outcome as each collection finishes, so an abort partway through
// still reports the work already done.
func (m *Migrator) migrate(ctx context.Context, owner string, outcome *Outcome, log *slog.Logger) error {
	for _, kind := range nsid.Kinds() {
		co := CollectionOutcome{Kind: kind.Name, Legacy: kind.Legacy, Current: kind.Current}

		var err error
		if kind.Singleton {
			err = m.migrateSingleton(ctx, owner, kind, &co, log)
		} else {
			err = m.migrateList(ctx, owner, kind, &co, log)
		}

		outcome.Writes += co.Writes
		outcome.Deletes += co.Deletes
		outcome.Skips += co.Skips
		outcome.Conflicts += co.Conflicts
		outcome.Pages += co.Pages
		outcome.Collections = append(outcome.Collections, co)

		if err != nil {
			return fmt.Errorf("collection %s: %w", kind.Legacy, err)
		}
	}
	return nil
}

// migrateSingleton handles kinds that hold one record under the self
// key. An absent legacy record means there is nothing to do.
func (m *Migrator) migrateSingleton(ctx context.Context, owner string, kind nsid.Kind, co *CollectionOutcome, log *slog.Logger) error {
	ctx, done := m.startCollectionSpan(ctx, kind, co)
	defer done()

	legacy, err := m.store.GetRecord(ctx, owner, kind.Legacy, nsid.RKeySelf)
	if errors.Is(err, repo.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read legacy record: %w", err)
	}

	return m.migrateRecord(ctx, owner, kind, nsid.RKeySelf, legacy.Value, co, log)
}

// migrateList paginates through a legacy collection and migrates each
// record by its key. Pagination stops early on the page cap or on a
// repeated cursor; both leave the processed records migrated and the
// rest for a later run.
func (m *Migrator) migrateList(ctx context.Context, owner string, kind nsid.Kind, co *CollectionOutcome, log *slog.Logger) error {
	ctx, done := m.startCollectionSpan(ctx, kind, co)
	defer done()

	seen := make(map[string]bool)
	cursor := ""

	for {
		if co.Pages >= maxPages {
			co.Truncated = true
			log.Warn("page cap reached, stopping collection",
				"collection", kind.Legacy,
				"pages", co.Pages)
			return nil
		}

		page, err := m.store.ListRecords(ctx, owner, kind.Legacy, repo.ListOptions{Limit: m.pageLimit, Cursor: cursor})
		if err != nil {
			return fmt.Errorf("list legacy records: %w", err)
		}
		co.Pages++

		for _, rec := range page.Records {
			if err := m.migrateRecord(ctx, owner, kind, rec.RKey, rec.Value, co, log); err != nil {
				return err
			}
		}

		if page.Cursor == "" {
			return nil
		}
		if seen[page.Cursor] {
			co.Truncated = true
			log.Warn("cursor repeated, stopping collection",
				"collection", kind.Legacy,
				"cursor", page.Cursor)
			return nil
		}
		seen[page.Cursor] = true
		cursor = page.Cursor
	}
}

// migrateRecord applies the three-way merge for one legacy record:
// write and delete when the current side is absent, delete only when
// it is already equal, and leave both copies when it differs. Write
// always precedes delete so an interruption can duplicate a record but
// never lose one.
func (m *Migrator) migrateRecord(ctx context.Context, owner string, kind nsid.Kind, rkey string, legacyValue map[string]any, co *CollectionOutcome, log *slog.Logger) error {
	rewritten := rewriteValue(legacyValue, nsid.NamespaceCurrent)

	existing, err := m.store.GetRecord(ctx, owner, kind.Current, rkey)
	switch {
	case errors.Is(err, repo.ErrRecordNotFound):
		if _, err := m.store.PutRecord(ctx, kind.Current, rkey, rewritten); err != nil {
			return fmt.Errorf("write %s/%s: %w", kind.Current, rkey, err)
		}
		co.Writes++
		if err := m.store.DeleteRecord(ctx, kind.Legacy, rkey); err != nil {
			return fmt.Errorf("delete %s/%s: %w", kind.Legacy, rkey, err)
		}
		co.Deletes++

	case err != nil:
		return fmt.Errorf("read %s/%s: %w", kind.Current, rkey, err)

	case equalValues(rewritten, existing.Value):
		co.Skips++
		if err := m.store.DeleteRecord(ctx, kind.Legacy, rkey); err != nil {
			return fmt.Errorf("delete %s/%s: %w", kind.Legacy, rkey, err)
		}
		co.Deletes++

	default:
		co.Conflicts++
		log.Warn("conflicting record left in both namespaces",
			"legacy", repo.RecordURI(owner, kind.Legacy, rkey),
			"current", repo.RecordURI(owner, kind.Current, rkey))
	}

	return nil
}

// markerDone checks the completion marker. A failing marker store is
// treated as unset so the scan proceeds; the marker is an optimization
// and must never block migration.
func (m *Migrator) markerDone(ctx context.Context, owner string, log *slog.Logger) bool {
	done, err := m.markers.Done(ctx, owner)
	if err != nil {
		log.Warn("marker read failed, scanning anyway", "error", err)
		return false
	}
	return done
}

func (m *Migrator) setMarker(ctx context.Context, owner string, log *slog.Logger) {
	if err := m.markers.SetDone(ctx, owner); err != nil {
		log.Warn("marker write failed", "error", err)
	}
}
