package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	webhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "webhook",
		Name:      "events_total",
		Help:      "Webhook order events by outcome.",
	}, []string{"result"})

	consumerProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "kafka_consumer",
		Name:      "events_processed_total",
		Help:      "Total number of successfully processed order events.",
	})

	consumerFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "kafka_consumer",
		Name:      "events_failed_total",
		Help:      "Total number of failed event handling attempts.",
	})

	consumerDLQ = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "kafka_consumer",
		Name:      "events_dlq_total",
		Help:      "Total number of events written to the DLQ.",
	})

	consumerCommitErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "kafka_consumer",
		Name:      "commit_errors_total",
		Help:      "Total number of Kafka commit errors.",
	})
)
