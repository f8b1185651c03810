package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "kafka_consumer",
		Name:      "catalog_events_processed_total",
		Help:      "Total number of successfully processed catalog events",
	})

	eventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "kafka_consumer",
		Name:      "catalog_events_failed_total",
		Help:      "Total number of failed catalog event handling attempts",
	})

	eventsDLQ = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "kafka_consumer",
		Name:      "catalog_events_dlq_total",
		Help:      "Total number of catalog events written to DLQ",
	})
)
