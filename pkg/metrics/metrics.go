// Package metrics defines the Prometheus instruments exported by the
// comparison service. Metrics are registered via promauto at package load;
// handlers and middleware only update them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, path, and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdfcompare_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures server response time. Buckets stretch
	// to minutes because OCR over a long scanned document is slow.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pdfcompare_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"method", "path"},
	)

	// ExtractionDuration measures how long each extraction strategy takes
	// per document (strategy: direct, ocr).
	ExtractionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pdfcompare_extraction_duration_seconds",
			Help:    "Duration of text extraction in seconds by strategy",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"strategy"},
	)

	// OCRFallbacksTotal counts documents whose text layer was empty and
	// went through image recognition instead.
	OCRFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pdfcompare_ocr_fallbacks_total",
			Help: "Total number of documents that fell back to OCR",
		},
	)

	// ComparisonsTotal counts comparison runs by outcome
	// (ok, unreadable, error).
	ComparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdfcompare_comparisons_total",
			Help: "Total number of PDF comparisons by outcome",
		},
		[]string{"outcome"},
	)
)
