package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation sources.
const (
	SourceAI       = "ai"
	SourceTemplate = "template"
	SourceFallback = "fallback"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vybe_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vybe_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	outfitGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vybe_outfit_generations_total",
		Help: "Outfits produced by the stylist, by source and style",
	}, []string{"source", "style"})

	stylistDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vybe_stylist_request_duration_seconds",
		Help:    "Duration of calls to the AI text-generation endpoint",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})

	quotaRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vybe_outfit_quota_rejections_total",
		Help: "Generation requests refused by the daily quota",
	})

	breakerState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vybe_stylist_breaker_open",
		Help: "1 while the AI stylist circuit breaker is not closed",
	})
)

// ObserveHTTPRequest records an HTTP request metric.
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveGeneration counts one generated outfit.
func ObserveGeneration(source, style string) {
	outfitGenerations.WithLabelValues(source, style).Inc()
}

// ObserveStylistCall records the latency of an AI call with a result label.
func ObserveStylistCall(result string, duration time.Duration) {
	stylistDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// ObserveQuotaRejection counts a refused generation.
func ObserveQuotaRejection() {
	quotaRejections.Inc()
}

// SetBreakerOpen flags whether the stylist breaker is tripped.
func SetBreakerOpen(open bool) {
	if open {
		breakerState.Set(1)
		return
	}
	breakerState.Set(0)
}
