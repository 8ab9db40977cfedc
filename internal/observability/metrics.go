// Package observability provides Prometheus metrics for the order service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Cart metrics
	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kanalsepet_cart_mutations_total",
			Help: "Total number of cart mutations",
		},
		[]string{"op", "status"},
	)

	CartItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kanalsepet_cart_items",
			Help: "Number of line items currently in the cart",
		},
	)

	// Bridge metrics
	BridgeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kanalsepet_bridge_requests_total",
			Help: "Total number of surface state requests",
		},
		[]string{"outcome"},
	)

	// Notification metrics
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kanalsepet_notifications_total",
			Help: "Total number of notifications raised",
		},
		[]string{"severity"},
	)
)
