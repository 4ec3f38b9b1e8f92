package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exported by the service.
var Registry = prometheus.NewRegistry()

var (
	analysisStartedTotal = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "analysis_started_total",
		Help: "Total analyses started",
	})
	analysisCompletedTotal = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "analysis_completed_total",
		Help: "Total analyses completed",
	})
	analysisFailedTotal = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "analysis_failed_total",
		Help: "Total analyses failed",
	})
	analysisDuration = promauto.With(Registry).NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_duration_ms",
		Help:    "Analysis duration in milliseconds",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000},
	})
	overallScore = promauto.With(Registry).NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_overall_score",
		Help:    "Distribution of overall resume scores",
		Buckets: prometheus.LinearBuckets(10, 10, 9),
	})
	cacheLookups = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_cache_lookups_total",
		Help: "Report cache lookups by result",
	}, []string{"result"})
	httpRequests = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"method", "route", "status"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IncAnalysisStarted increments the started counter.
func IncAnalysisStarted() {
	analysisStartedTotal.Inc()
}

// IncAnalysisCompleted increments the completed counter.
func IncAnalysisCompleted() {
	analysisCompletedTotal.Inc()
}

// IncAnalysisFailed increments the failed counter.
func IncAnalysisFailed() {
	analysisFailedTotal.Inc()
}

// ObserveAnalysisDurationMs records an analysis duration in milliseconds.
func ObserveAnalysisDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	analysisDuration.Observe(value)
}

// ObserveOverallScore records the overall score of a fresh analysis.
func ObserveOverallScore(score int) {
	overallScore.Observe(float64(score))
}

// IncCacheHit counts a report served from cache.
func IncCacheHit() {
	cacheLookups.WithLabelValues("hit").Inc()
}

// IncCacheMiss counts a report computed because the cache had no entry.
func IncCacheMiss() {
	cacheLookups.WithLabelValues("miss").Inc()
}

// IncHTTPRequest counts one served request.
func IncHTTPRequest(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
