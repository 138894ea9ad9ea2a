// Package metrics provides centralized Prometheus metrics for the
// application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track request patterns and performance.
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Business metrics track the scrape-and-summarize pipeline.
var (
	// ArticlesScrapedTotal counts records extracted per source site.
	ArticlesScrapedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_scraped_total",
			Help: "Total number of article records extracted from pages",
		},
		[]string{"source"},
	)

	// ArticlesStoredTotal counts articles persisted to the database.
	ArticlesStoredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_stored_total",
			Help: "Total number of articles stored in the database",
		},
	)

	// ArticleStoreFailuresTotal counts records dropped on persistence errors.
	ArticleStoreFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "article_store_failures_total",
			Help: "Total number of records dropped due to storage errors",
		},
	)

	// SummariesGeneratedTotal counts summaries produced per provider.
	SummariesGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summaries_generated_total",
			Help: "Total number of summaries generated",
		},
		[]string{"provider"},
	)

	// SummarizerFailuresTotal counts provider faults and empty responses.
	SummarizerFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summarizer_failures_total",
			Help: "Total number of failed summarization attempts",
		},
		[]string{"provider"},
	)

	// SummarizationDuration measures time spent generating one summary.
	SummarizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summarization_duration_seconds",
			Help:    "Time taken to generate an article summary",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)
)
