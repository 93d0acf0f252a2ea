package escrow

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts escrow calls by result. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	deposits *prometheus.CounterVec
	claims   *prometheus.CounterVec
}

// NewMetrics creates escrow counters and registers them with given
// registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		deposits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "claimable",
			Subsystem: "escrow",
			Name:      "deposits_total",
			Help:      "Number of deposit calls by result.",
		}, []string{"result"}),
		claims: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "claimable",
			Subsystem: "escrow",
			Name:      "claims_total",
			Help:      "Number of claim calls by result.",
		}, []string{"result"}),
	}
	if err := reg.Register(m.deposits); err != nil {
		return nil, err
	}
	if err := reg.Register(m.claims); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) deposit(err error) {
	if m == nil {
		return
	}
	m.deposits.WithLabelValues(resultLabel(err)).Inc()
}

func (m *Metrics) claim(err error) {
	if m == nil {
		return
	}
	m.claims.WithLabelValues(resultLabel(err)).Inc()
}
