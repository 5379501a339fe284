package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine-level counters. Labels stay low-cardinality: outcome is one of
// create/update/error, and the HTTP metrics use the route template rather
// than the raw path.
var (
	PlanSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "odonto",
		Subsystem: "treatment_plan",
		Name:      "saves_total",
		Help:      "Treatment plan save operations by outcome.",
	}, []string{"outcome"})

	SessionCompletions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "odonto",
		Subsystem: "treatment_plan",
		Name:      "session_completions_total",
		Help:      "Sessions transitioned to completed.",
	})

	AnnotationsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "odonto",
		Subsystem: "treatment_plan",
		Name:      "annotations_emitted_total",
		Help:      "Timeline annotations emitted by the session completion flow.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "odonto",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "odonto",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)

// Handler exposes the prometheus registry over gin.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Middleware records per-request counters and latency.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
