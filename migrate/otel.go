package migrate

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/tripledoublev/spores.garden-sub000/nsid"
)

// otelMetrics holds the migration counters. They are created once in
// NewMigrator and reused for every run.
type otelMetrics struct {
	writes    metric.Int64Counter
	deletes   metric.Int64Counter
	skips     metric.Int64Counter
	conflicts metric.Int64Counter
}

// initMetrics creates the migration counters. It returns (nil, nil)
// when no meter is configured.
func (m *Migrator) initMetrics() (*otelMetrics, error) {
	if m.meter == nil {
		return nil, nil
	}

	metrics := &otelMetrics{}
	var err error

	metrics.writes, err = m.meter.Int64Counter(
		"garden.migrate.writes",
		metric.WithDescription("Records written to the current namespace"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create writes counter: %w", err)
	}

	metrics.deletes, err = m.meter.Int64Counter(
		"garden.migrate.deletes",
		metric.WithDescription("Legacy records deleted"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create deletes counter: %w", err)
	}

	metrics.skips, err = m.meter.Int64Counter(
		"garden.migrate.skips",
		metric.WithDescription("Records already consistent, write skipped"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create skips counter: %w", err)
	}

	metrics.conflicts, err = m.meter.Int64Counter(
		"garden.migrate.conflicts",
		metric.WithDescription("Records left in both namespaces"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create conflicts counter: %w", err)
	}

	return metrics, nil
}

// recordRun adds one run's counters. Skipped runs contribute zeros,
// which keeps the owner attribute visible without inflating totals.
func (m *Migrator) recordRun(ctx context.Context, o *Outcome) {
	if m.metrics == nil {
		return
	}

	opts := metric.WithAttributes(attribute.String("owner", o.Owner))
	m.metrics.writes.Add(ctx, int64(o.Writes), opts)
	m.metrics.deletes.Add(ctx, int64(o.Deletes), opts)
	m.metrics.skips.Add(ctx, int64(o.Skips), opts)
	m.metrics.conflicts.Add(ctx, int64(o.Conflicts), opts)
}

// startCollectionSpan opens a span for one collection when tracing is
// configured. The returned func stamps the final counters and ends the
// span; without a tracer it is a no-op.
func (m *Migrator) startCollectionSpan(ctx context.Context, kind nsid.Kind, co *CollectionOutcome) (context.Context, func()) {
	if m.tracer == nil {
		return ctx, func() {}
	}

	ctx, span := m.tracer.Start(ctx, "garden.migrate.collection")
	span.SetAttributes(
		attribute.String("collection.kind", kind.Name),
		attribute.String("collection.legacy", kind.Legacy),
		attribute.String("collection.current", kind.Current),
	)

	return ctx, func() {
		span.SetAttributes(
			attribute.Int("migrate.writes", co.Writes),
			attribute.Int("migrate.deletes", co.Deletes),
			attribute.Int("migrate.skips", co.Skips),
			attribute.Int("migrate.conflicts", co.Conflicts),
			attribute.Int("migrate.pages", co.Pages),
			attribute.Bool("migrate.truncated", co.Truncated),
		)
		span.End()
	}
}

// finishRunSpan stamps the run span with the outcome and ends it.
func (m *Migrator) finishRunSpan(span trace.Span, o *Outcome) {
	span.SetAttributes(
		attribute.String("run.id", o.RunID),
		attribute.String("owner", o.Owner),
		attribute.Int("migrate.writes", o.Writes),
		attribute.Int("migrate.deletes", o.Deletes),
		attribute.Int("migrate.skips", o.Skips),
		attribute.Int("migrate.conflicts", o.Conflicts),
		attribute.Int("migrate.pages", o.Pages),
	)
	if o.Skipped != "" {
		span.SetAttributes(attribute.String("migrate.skipped", o.Skipped))
	}

	if o.Err != nil {
		span.RecordError(o.Err)
		span.SetStatus(codes.Error, o.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
