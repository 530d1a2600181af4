package statemachine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "media_store",
	Subsystem: "order_state",
	Name:      "transitions_total",
	Help:      "Order status transitions by source, target and result.",
}, []string{"from", "to", "result"})
