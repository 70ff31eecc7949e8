package solver

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/katalvlaran/amphipod/solver"

// telemetry bundles the tracer and instruments of one Solve call.
type telemetry struct {
	tracer   trace.Tracer
	expanded metric.Int64Counter
	memoHits metric.Int64Counter
	pruned   metric.Int64Counter
	duration metric.Float64Histogram
}

// newTelemetry resolves providers from o, falling back to the globals.
// An instrument that cannot be created is replaced by a no-op one.
func newTelemetry(o Options) *telemetry {
	tp := o.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	mp := o.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	t := &telemetry{tracer: tp.Tracer(instrumentationName)}
	var err error
	if t.expanded, err = meter.Int64Counter(
		"solver_expanded_total",
		metric.WithDescription("Burrows expanded by the search"),
	); err != nil {
		t.expanded = noop.Int64Counter{}
	}
	if t.memoHits, err = meter.Int64Counter(
		"solver_memo_hits_total",
		metric.WithDescription("Burrows skipped by the memo table"),
	); err != nil {
		t.memoHits = noop.Int64Counter{}
	}
	if t.pruned, err = meter.Int64Counter(
		"solver_pruned_total",
		metric.WithDescription("Moves cut by the branch-and-bound limit"),
	); err != nil {
		t.pruned = noop.Int64Counter{}
	}
	if t.duration, err = meter.Float64Histogram(
		"solver_duration_seconds",
		metric.WithDescription("Duration of Solve calls"),
		metric.WithUnit("s"),
	); err != nil {
		t.duration = noop.Float64Histogram{}
	}

	return t
}

// start opens the solve span.
func (t *telemetry) start(ctx context.Context, s Strategy, depth int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "solver.Solve",
		trace.WithAttributes(
			attribute.String("solver.strategy", s.String()),
			attribute.Int("burrow.depth", depth),
		),
	)
}

// finish records the outcome on span and instruments, then ends span.
func (t *telemetry) finish(ctx context.Context, span trace.Span, s Strategy, res Result, err error, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("strategy", s.String()),
		attribute.Bool("success", err == nil),
	)
	t.expanded.Add(ctx, res.Stats.Expanded, attrs)
	t.memoHits.Add(ctx, res.Stats.MemoHits, attrs)
	t.pruned.Add(ctx, res.Stats.Pruned, attrs)
	t.duration.Record(ctx, elapsed.Seconds(), attrs)

	span.SetAttributes(
		attribute.Bool("solver.found", res.Found),
		attribute.Int("solver.energy", res.Energy),
		attribute.Int64("solver.expanded", res.Stats.Expanded),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
