package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "media_store",
			Subsystem: "shipment_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of successfully processed shipment events",
		},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "media_store",
			Subsystem: "shipment_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of failed shipment event processing attempts",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "media_store",
			Subsystem: "shipment_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of shipment events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "media_store",
			Subsystem: "shipment_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	eventProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "media_store",
			Subsystem: "shipment_consumer",
			Name:      "event_processing_duration_seconds",
			Help:      "Histogram of shipment event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	eventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "media_store",
			Subsystem: "shipment_consumer",
			Name:      "events_in_progress",
			Help:      "Number of shipment events currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,
		eventProcessingDuration,
		eventsInProgress,
	)
}
