// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package frontend

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for the front end.
var (
	tracer = otel.Tracer("jsfront.frontend")
	meter  = otel.Meter("jsfront.frontend")
)

var (
	buildLatency     metric.Float64Histogram
	buildTotal       metric.Int64Counter
	diagnosticsTotal metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		buildLatency, err = meter.Float64Histogram(
			"frontend_build_duration_seconds",
			metric.WithDescription("Duration of AST build operations"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		buildTotal, err = meter.Int64Counter(
			"frontend_build_total",
			metric.WithDescription("Total number of AST build operations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		diagnosticsTotal, err = meter.Int64Counter(
			"frontend_diagnostics_total",
			metric.WithDescription("Diagnostics recorded during AST builds"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordBuild records instruments for one Build call. Metric failures are
// never surfaced to the parse itself.
func recordBuild(ctx context.Context, mode LanguageMode, start time.Time, diags int, failed bool) {
	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("mode", mode.String()),
		attribute.Bool("failed", failed),
	)
	buildLatency.Record(ctx, time.Since(start).Seconds(), attrs)
	buildTotal.Add(ctx, 1, attrs)
	if diags > 0 {
		diagnosticsTotal.Add(ctx, int64(diags), attrs)
	}
}

// startSpan begins a build span with standard attributes.
func startSpan(ctx context.Context, name, path string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("file.path", path),
	))
}
