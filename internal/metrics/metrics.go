package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes recorded against EventSubMessages
const (
	OutcomeHandled  = "handled"
	OutcomeFailed   = "failed"
	OutcomeVerified = "verified"
	OutcomeRevoked  = "revoked"
)

var (
	// EventSubMessages counts EventSub webhook deliveries, by subscription type, version
	// and outcome
	EventSubMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twitchapi_eventsub_messages_total",
			Help: "The total number of EventSub messages received",
		},
		[]string{"type", "version", "outcome"},
	)

	// EventSubRejected counts webhook deliveries that could not be attributed to a known
	// subscription type: bad signatures, malformed bodies and unsupported types
	EventSubRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twitchapi_eventsub_rejected_total",
			Help: "The total number of EventSub messages rejected before dispatch",
		},
		[]string{"reason"},
	)

	// HelixRequestDuration tracks the latency of Helix API calls
	HelixRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "twitchapi_helix_request_duration_seconds",
			Help:    "The duration of Helix API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// ObserveHelixRequest records a completed Helix round trip. Its signature matches
// helix.Observer, so it can be passed directly in helix.Options.
func ObserveHelixRequest(method string, path string, status int, elapsed time.Duration) {
	HelixRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
