package lexi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics records dispatch outcomes. A nil *metrics records nothing.
type metrics struct {
	dispatched *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}
	m := &metrics{
		dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lexi",
			Name:      "dispatch_total",
			Help:      "Requests dispatched, by route name and outcome.",
		}, []string{"route", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lexi",
			Name:      "dispatch_duration_seconds",
			Help:      "Time spent resolving and running views, by route name.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	for _, c := range []prometheus.Collector{m.dispatched, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) observe(routeName, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.dispatched.WithLabelValues(routeName, outcome).Inc()
	m.duration.WithLabelValues(routeName).Observe(elapsed.Seconds())
}
