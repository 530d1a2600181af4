package reservation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reserveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "media_store",
		Subsystem: "reservation",
		Name:      "reserve_total",
		Help:      "Reserve attempts by result.",
	}, []string{"result"})

	confirmTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "media_store",
		Subsystem: "reservation",
		Name:      "confirm_total",
		Help:      "Reservation confirmations by result.",
	}, []string{"result"})

	sweptTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "media_store",
		Subsystem: "reservation",
		Name:      "swept_total",
		Help:      "Expired reservations removed by the sweeper.",
	})

	activeReservations = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "media_store",
		Subsystem: "reservation",
		Name:      "active",
		Help:      "Reservations currently held in the table.",
	})
)
