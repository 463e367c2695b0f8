package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publicAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btcanchoring",
		Subsystem: "public_api",
		Name:      "requests_total",
		Help:      "Count of anchoring API requests.",
	}, []string{"operation", "network", "status"})
	publicAPIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "btcanchoring",
		Subsystem: "public_api",
		Name:      "request_duration_seconds",
		Help:      "Duration of anchoring API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
	protocolViolationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btcanchoring",
		Subsystem: "public_api",
		Name:      "protocol_violations_total",
		Help:      "Count of requests that found validators agreeing on a transaction the protocol rejects.",
	}, []string{"operation", "network"})
)

// PublicAPI tracks metrics for anchoring API requests.
type PublicAPI struct {
	network model.Network
}

// NewPublicAPI constructs a PublicAPI metrics collector.
func NewPublicAPI(network model.Network) *PublicAPI {
	return &PublicAPI{network: networkLabel(network)}
}

// Observe records a request outcome and duration. Protocol violations are counted separately.
func (m PublicAPI) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	publicAPIRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	publicAPIRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
	if errors.Is(err, model.ErrProtocolViolation) {
		protocolViolationsTotal.WithLabelValues(operation, string(m.network)).Inc()
	}
}
