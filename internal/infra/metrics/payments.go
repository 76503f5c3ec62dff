package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		ordersCreatedTotal,
		paymentVerifyRequests,
		paymentVerifyDuration,
	)
}

var (
	ordersCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_orders_created_total",
			Help: "Provider orders created at checkout, by plan and result.",
		},
		[]string{"plan", "result"},
	)

	// Count of activation calls grouped by result and bounded reason.
	// result: ok|fail
	// reason (fail only): bad_json|missing_field|provider_error|not_completed|store_error|unknown
	paymentVerifyRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_verify_requests_total",
			Help: "Count of payment activation calls by result and reason.",
		},
		[]string{"result", "reason"},
	)

	paymentVerifyDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_verify_duration_seconds",
			Help:    "Duration of the payment activation flow in seconds.",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"result"},
	)
)

func IncOrderCreated(plan, result string) {
	ordersCreatedTotal.WithLabelValues(norm(plan), norm(result)).Inc()
}

func IncPaymentVerify(result, reason string) {
	paymentVerifyRequests.WithLabelValues(norm(result), norm(reason)).Inc()
}

func ObservePaymentVerifyDuration(result string, seconds float64) {
	paymentVerifyDuration.WithLabelValues(norm(result)).Observe(seconds)
}
