package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Payment workflow counters, exposed on /metrics alongside the default
// process and Go collectors.
var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "learnsphere_payment_orders_created_total",
		Help: "Number of payment gateway orders created.",
	})
	EnrollmentsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "learnsphere_enrollments_completed_total",
		Help: "Number of completed enrollments written.",
	})
	PaymentVerificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "learnsphere_payment_verifications_failed_total",
		Help: "Number of payment signature verifications that failed.",
	})
)
