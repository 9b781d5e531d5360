package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks inbound request latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reply_writer_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"method", "path", "status"},
	)

	// ProviderCallDuration tracks generateContent call latency
	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reply_writer_provider_call_duration_seconds",
			Help:    "Gemini API call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~50s
		},
		[]string{"status"},
	)

	// RepliesGenerated counts reply generation outcomes
	RepliesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reply_writer_replies_generated_total",
			Help: "Total number of reply generation attempts",
		},
		[]string{"status"}, // status: success, failed
	)
)

// RecordHTTPRequest records an inbound request
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

// RecordProviderCall records an outbound provider call.
// status is an HTTP status code or "error" for transport failures.
func RecordProviderCall(status string, duration time.Duration) {
	ProviderCallDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordReply records the outcome of a reply generation
func RecordReply(success bool) {
	status := "success"
	if !success {
		status = "failed"
	}
	RepliesGenerated.WithLabelValues(status).Inc()
}
