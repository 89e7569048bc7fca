// Package metrics defines and registers the Prometheus metrics of the cabinet API.
// It is the single source of truth for metric names, labels and help strings.
//
// Metrics are registered with the default registry on package init through promauto
// and exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cabinet"

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request handling time.
// Labels:
//   - method: HTTP method
//   - route: the matched route template (e.g. "/api/v1/achievements/:user_id")
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)

// ── Achievement metrics ───────────────────────────────────────────────────────

// UpsertsTotal counts achievement writes.
// Label:
//   - result: "ok", "forbidden", "invalid", "not_found" or "error"
var UpsertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "achievement_upserts_total",
		Help:      "Total number of achievement record writes, by result.",
	},
	[]string{"result"},
)

// SlotTruncationsTotal counts slot values cut to the maximum length.
var SlotTruncationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "achievement_slot_truncations_total",
		Help:      "Total number of slot values truncated to the maximum length.",
	},
)

// CSVExportsTotal counts per-user CSV exports.
// Label:
//   - encoding: "utf8bom", "utf8" or "windows1251"
var CSVExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "achievement_csv_exports_total",
		Help:      "Total number of per-user CSV exports, by encoding.",
	},
	[]string{"encoding"},
)

// CSVImportsTotal counts per-user CSV imports.
// Label:
//   - result: "ok", "invalid" or "error"
var CSVImportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "achievement_csv_imports_total",
		Help:      "Total number of per-user CSV imports, by result.",
	},
	[]string{"result"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportExportsTotal counts bulk report exports.
// Label:
//   - format: "csv" or "xlsx"
var ReportExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_exports_total",
		Help:      "Total number of bulk report exports, by format.",
	},
	[]string{"format"},
)

// StatisticsCacheTotal counts statistics cache lookups.
// Label:
//   - result: "hit" or "miss"
var StatisticsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "statistics_cache_total",
		Help:      "Total number of statistics cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
