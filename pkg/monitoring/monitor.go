package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	AssessmentsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_started_total",
			Help: "Assessments created, by test type",
		},
		[]string{"test_type"},
	)

	ResponsesSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_responses_submitted_total",
			Help: "Recorded answers, by instrument",
		},
		[]string{"instrument"},
	)

	AssessmentsFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_finished_total",
			Help: "Assessments reaching a terminal status",
		},
		[]string{"status"},
	)

	TraitScores = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assessment_trait_score",
			Help:    "Normalized trait scores of completed assessments",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
		[]string{"instrument", "trait"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(AssessmentsStarted)
		prometheus.MustRegister(ResponsesSubmitted)
		prometheus.MustRegister(AssessmentsFinished)
		prometheus.MustRegister(TraitScores)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
