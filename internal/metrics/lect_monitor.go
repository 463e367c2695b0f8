package metrics

import (
	"time"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lectMonitorIterationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btcanchoring",
		Subsystem: "lect_monitor",
		Name:      "iterations_total",
		Help:      "Count of lect monitor iterations.",
	}, []string{"network", "status"})
	lectMonitorIterationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "btcanchoring",
		Subsystem: "lect_monitor",
		Name:      "iteration_duration_seconds",
		Help:      "Duration of lect monitor iterations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	lectMonitorAgreed = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "btcanchoring",
		Subsystem: "lect_monitor",
		Name:      "lect_agreed",
		Help:      "1 when a quorum of validators agrees on a lect, 0 otherwise.",
	}, []string{"network"})
	lectMonitorAnchoredHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "btcanchoring",
		Subsystem: "lect_monitor",
		Name:      "anchored_height",
		Help:      "Ledger height committed by the agreed anchoring transaction.",
	}, []string{"network"})
	lectMonitorConfirmations = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "btcanchoring",
		Subsystem: "lect_monitor",
		Name:      "lect_confirmations",
		Help:      "Bitcoin confirmations of the agreed lect.",
	}, []string{"network"})
	lectMonitorReporting = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "btcanchoring",
		Subsystem: "lect_monitor",
		Name:      "reporting_validators",
		Help:      "Number of active validators with a lect on record.",
	}, []string{"network"})
)

// LectMonitor tracks metrics for the lect monitor loop.
type LectMonitor struct {
	network model.Network
}

// NewLectMonitor constructs a LectMonitor metrics collector.
func NewLectMonitor(network model.Network) *LectMonitor {
	return &LectMonitor{network: networkLabel(network)}
}

// ObserveIteration records a monitor iteration outcome and duration.
func (m LectMonitor) ObserveIteration(err error, started time.Time) {
	status := statusLabel(err)
	lectMonitorIterationsTotal.WithLabelValues(string(m.network), status).Inc()
	lectMonitorIterationDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// SetReporting records how many active validators have reported a lect.
func (m LectMonitor) SetReporting(validators int) {
	lectMonitorReporting.WithLabelValues(string(m.network)).Set(float64(validators))
}

// SetAgreed records the agreed lect and its confirmations.
func (m LectMonitor) SetAgreed(tx model.TxKind, confirmations uint64) {
	lectMonitorAgreed.WithLabelValues(string(m.network)).Set(1)
	lectMonitorConfirmations.WithLabelValues(string(m.network)).Set(float64(confirmations))
	if tx.Kind == model.KindAnchoring && tx.Payload != nil {
		lectMonitorAnchoredHeight.WithLabelValues(string(m.network)).Set(float64(tx.Payload.Height))
	}
}

// SetNoAgreement records that no lect has a quorum.
func (m LectMonitor) SetNoAgreement() {
	lectMonitorAgreed.WithLabelValues(string(m.network)).Set(0)
}
