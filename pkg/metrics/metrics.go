// Package metrics defines the Prometheus metric collectors used across the
// pipeline and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the pipeline.
type Metrics struct {
	LinesReadTotal     *prometheus.CounterVec
	TokensCountedTotal *prometheus.CounterVec
	LinesSkippedTotal  *prometheus.CounterVec
	CountFlushesTotal  *prometheus.CounterVec
	VocabularySize     *prometheus.GaugeVec
	MergeDuration      prometheus.Histogram
	MergeSourcesCount  prometheus.Histogram
	ExportDuration     *prometheus.HistogramVec
	ConsumerErrors     prometheus.Counter
	CacheHitsTotal     prometheus.Counter
	CacheMissesTotal   prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		LinesReadTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corpus_lines_read_total",
				Help: "Total corpus lines consumed, by source.",
			},
			[]string{"source"},
		),
		TokensCountedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokens_counted_total",
				Help: "Total token occurrences counted, by language.",
			},
			[]string{"language"},
		),
		LinesSkippedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corpus_lines_skipped_total",
				Help: "Lines skipped before counting (wrong_language, banned, malformed, empty).",
			},
			[]string{"reason"},
		),
		CountFlushesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "count_flushes_total",
				Help: "Count-table flushes, by status (ok, error).",
			},
			[]string{"status"},
		),
		VocabularySize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "vocabulary_size",
				Help: "Distinct tokens currently held in the in-memory count table, by language.",
			},
			[]string{"language"},
		),
		MergeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "merge_duration_seconds",
				Help:    "Wall time of cross-source frequency merges.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
			},
		),
		MergeSourcesCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "merge_sources_count",
				Help:    "Number of source frequency lists per merge.",
				Buckets: []float64{3, 4, 5, 6, 8, 10, 15, 20},
			},
		),
		ExportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "export_duration_seconds",
				Help:    "Wall time of frequency-list exports, by format (freqs, cbpack, jieba).",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"format"},
		),
		ConsumerErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "consumer_errors_total",
				Help: "Total Kafka consumer processing errors.",
			},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "frequency_cache_hits_total",
				Help: "Total frequency-lookup cache hits.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "frequency_cache_misses_total",
				Help: "Total frequency-lookup cache misses.",
			},
		),
	}

	prometheus.MustRegister(
		m.LinesReadTotal,
		m.TokensCountedTotal,
		m.LinesSkippedTotal,
		m.CountFlushesTotal,
		m.VocabularySize,
		m.MergeDuration,
		m.MergeSourcesCount,
		m.ExportDuration,
		m.ConsumerErrors,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
	)
	return m
}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
