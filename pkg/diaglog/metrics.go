package diaglog

import "github.com/prometheus/client_golang/prometheus"

const (
	filterReasonUserCategory = "user_category"
	filterReasonUnclassified = "unclassified_category"
	filterReasonUserMarker   = "user_marker"
)

// EmitterMetrics counts records the logger emitted or filtered. All
// methods are nil-safe so metrics stay optional.
type EmitterMetrics struct {
	emittedTotal  prometheus.Counter
	filteredTotal *prometheus.CounterVec
}

// NewEmitterMetrics creates and registers the emitter counters.
func NewEmitterMetrics(reg prometheus.Registerer) (*EmitterMetrics, error) {
	m := &EmitterMetrics{
		emittedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "diaglog_records_emitted_total",
			Help: "Records forwarded to the diagnostic sink.",
		}),
		filteredTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diaglog_records_filtered_total",
			Help: "Records rejected by the eligibility gates.",
		}, []string{"reason"}),
	}

	if err := reg.Register(m.emittedTotal); err != nil {
		return nil, err
	}
	if err := reg.Register(m.filteredTotal); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *EmitterMetrics) emitted() {
	if m == nil {
		return
	}
	m.emittedTotal.Inc()
}

func (m *EmitterMetrics) filtered(reason string) {
	if m == nil {
		return
	}
	m.filteredTotal.WithLabelValues(reason).Inc()
}
