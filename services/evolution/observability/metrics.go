// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides Prometheus metrics for the evolution service.
//
// # Description
//
// This package implements Prometheus metrics for monitoring the reference
// API and the matrix derivation pipeline. Metrics include:
//   - Request counters (by endpoint and status)
//   - Request duration histograms
//   - Matrix derivation counters (by view)
//   - Case import counters (by outcome)
//   - Deprecated-alias usage counters
//
// # Integration
//
// Metrics are exposed via the /metrics endpoint. Use with Prometheus +
// Grafana for dashboards and alerting.
//
// # Thread Safety
//
// All metric operations are thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Metric Definitions
// =============================================================================

// Namespace for all metrics
const metricsNamespace = "evomatrix"

// Subsystem for API metrics
const apiSubsystem = "api"

// APIMetrics holds all Prometheus metrics for the evolution service.
//
// # Description
//
// Provides counters and histograms for monitoring request traffic and the
// derivation pipeline. Initialize once at startup via InitMetrics().
//
// # Fields
//
//   - RequestsTotal: Counter of API requests by endpoint and status
//   - RequestDurationSeconds: Histogram of request duration by endpoint
//   - DerivationsTotal: Counter of matrix derivations by view
//   - ImportsTotal: Counter of case imports by outcome
//   - DeprecatedRequestsTotal: Counter of requests hitting deprecated aliases
//
// # Thread Safety
//
// All operations are thread-safe.
type APIMetrics struct {
	// RequestsTotal counts API requests by endpoint and status.
	// Labels: endpoint (request path), status (HTTP status code)
	RequestsTotal *prometheus.CounterVec

	// RequestDurationSeconds measures request handling duration.
	// Labels: endpoint (request path)
	RequestDurationSeconds *prometheus.HistogramVec

	// DerivationsTotal counts matrix derivations by view.
	// Labels: view (baseline, integrated, dynamic, rows)
	DerivationsTotal *prometheus.CounterVec

	// ImportsTotal counts case imports by outcome.
	// Labels: outcome (accepted, rejected, write_error)
	ImportsTotal *prometheus.CounterVec

	// DeprecatedRequestsTotal counts requests on deprecated path aliases.
	// Labels: path (the deprecated alias)
	DeprecatedRequestsTotal *prometheus.CounterVec
}

// DefaultMetrics is the singleton instance of APIMetrics.
// Initialized by InitMetrics().
var DefaultMetrics *APIMetrics

// InitMetrics initializes the default metrics instance.
//
// # Description
//
// Creates and registers all Prometheus metrics. Should be called once
// at application startup, after the Prometheus registry is available.
//
// # Outputs
//
//   - *APIMetrics: The initialized metrics instance.
//
// # Examples
//
//	func main() {
//	    observability.InitMetrics()
//	    // ... start server ...
//	}
//
// # Limitations
//
//   - Panics if called twice (duplicate registration).
//
// # Assumptions
//
//   - Prometheus default registry is available.
func InitMetrics() *APIMetrics {
	DefaultMetrics = &APIMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: apiSubsystem,
				Name:      "requests_total",
				Help:      "Total number of API requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),

		RequestDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: apiSubsystem,
				Name:      "request_duration_seconds",
				Help:      "Request handling duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"endpoint"},
		),

		DerivationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: apiSubsystem,
				Name:      "derivations_total",
				Help:      "Total matrix derivations by view",
			},
			[]string{"view"},
		),

		ImportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: apiSubsystem,
				Name:      "imports_total",
				Help:      "Total case imports by outcome",
			},
			[]string{"outcome"},
		),

		DeprecatedRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: apiSubsystem,
				Name:      "deprecated_requests_total",
				Help:      "Total requests served via deprecated path aliases",
			},
			[]string{"path"},
		),
	}

	return DefaultMetrics
}

// =============================================================================
// Convenience Recorders
// =============================================================================

// RecordDerivation increments the derivation counter for a view.
// No-op when metrics are not initialized.
func RecordDerivation(view string) {
	if DefaultMetrics == nil {
		return
	}
	DefaultMetrics.DerivationsTotal.WithLabelValues(view).Inc()
}

// RecordImport increments the import counter for an outcome.
// No-op when metrics are not initialized.
func RecordImport(outcome string) {
	if DefaultMetrics == nil {
		return
	}
	DefaultMetrics.ImportsTotal.WithLabelValues(outcome).Inc()
}
