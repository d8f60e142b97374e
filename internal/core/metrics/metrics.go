package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// FeeMetrics groups the collectors for the delivery fee feature.
type FeeMetrics struct {
	// Quotes counts fee computations by weather condition and result.
	Quotes *prometheus.CounterVec
	// ParameterWrites counts admin writes by operation (update, reset) and result.
	ParameterWrites *prometheus.CounterVec
}

// NewFeeMetrics creates and registers the collectors on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewFeeMetrics(reg prometheus.Registerer) *FeeMetrics {
	f := promauto.With(reg)
	return &FeeMetrics{
		Quotes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "delivery_fee",
			Name:      "quotes_total",
			Help:      "Delivery fee quotes computed, by weather and result.",
		}, []string{"weather", "result"}),
		ParameterWrites: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "delivery_fee",
			Name:      "parameter_writes_total",
			Help:      "Fee parameter writes, by operation and result.",
		}, []string{"operation", "result"}),
	}
}
