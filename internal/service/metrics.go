package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_store_order_operations_total",
			Help: "Order workflow operations by result",
		},
		[]string{"operation", "result"},
	)

	paymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_store_payments_total",
			Help: "Payment gateway calls by kind and outcome",
		},
		[]string{"kind", "result"},
	)

	paymentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "media_store_payment_duration_seconds",
			Help:    "Duration of payment processing including status polling",
			Buckets: prometheus.DefBuckets,
		},
	)

	compensationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_store_order_compensations_total",
			Help: "Compensating actions by type and outcome",
		},
		[]string{"action", "result"},
	)

	notificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_store_notification_failures_total",
			Help: "Notifications that could not be sent",
		},
		[]string{"kind"},
	)
)
