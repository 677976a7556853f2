package services

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "photomagnet",
			Name:      "orders_created_total",
			Help:      "Number of orders recorded",
		},
	)

	OrdersConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "photomagnet",
			Name:      "orders_confirmed_total",
			Help:      "Number of order confirmations, repeats included",
		},
	)

	StockAdjustments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "photomagnet",
			Name:      "stock_units_decremented_total",
			Help:      "Units taken from the stock ledger by orders",
		},
		[]string{"stock_key"},
	)

	NotificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "photomagnet",
			Name:      "notifications_total",
			Help:      "Notification attempts by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(OrdersCreated, OrdersConfirmed, StockAdjustments, NotificationsSent)
}
