package carrier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "carrier",
		Name:      "requests_total",
		Help:      "Carrier API requests by outcome.",
	}, []string{"outcome"})

	loginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "carrier",
		Name:      "logins_total",
		Help:      "Total number of carrier session logins.",
	})
)
