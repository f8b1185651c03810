package payment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "gateway",
		Name:      "verifications_total",
		Help:      "Total number of gateway verification calls by verdict.",
	}, []string{"verdict"})

	verificationErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "gateway",
		Name:      "verification_errors_total",
		Help:      "Total number of failed gateway verification calls.",
	})
)
