package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Checkout outcome labels.
const (
	OutcomeSucceeded         = "succeeded"
	OutcomeValidationFailed  = "validation_failed"
	OutcomeUpstreamFailed    = "upstream_failed"
	OutcomePaymentArgsMissed = "payment_args_missing"
	OutcomeCartEmpty         = "cart_empty"
	OutcomeInProgress        = "in_progress"
)

type Checkout struct {
	Attempts *prometheus.CounterVec
	Cleared  prometheus.Counter
}

func NewCheckout(reg prometheus.Registerer) *Checkout {
	m := &Checkout{
		Attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_submissions_total",
			Help: "Reservation submission attempts by outcome.",
		}, []string{"outcome"}),
		Cleared: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "checkout_sessions_cleared_total",
			Help: "Session carts cleared by logout, token loss or payment return.",
		}),
	}
	reg.MustRegister(m.Attempts, m.Cleared)
	return m
}
