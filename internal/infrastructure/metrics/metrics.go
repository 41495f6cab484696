package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics covers the delivery lifecycle, escrow submissions and dispute
// decisions.
type OrderMetrics struct {
	OrdersCreatedTotal   *prometheus.CounterVec
	OrdersPaidTotal      prometheus.Counter
	OrdersPickedUpTotal  prometheus.Counter
	OrdersDeliveredTotal prometheus.Counter
	OrdersReleasedTotal  prometheus.Counter

	DisputesOpenedTotal   prometheus.Counter
	DisputeDecisionsTotal *prometheus.CounterVec

	EscrowSubmissionsTotal *prometheus.CounterVec
	EscrowReconciledTotal  prometheus.Counter
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Orders created, by courier mode",
		}, []string{"courier_mode"}),
		OrdersPaidTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orders_paid_total",
			Help: "Orders with confirmed payment",
		}),
		OrdersPickedUpTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orders_picked_up_total",
			Help: "Orders picked up by a courier",
		}),
		OrdersDeliveredTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orders_delivered_total",
			Help: "Orders confirmed delivered by the buyer",
		}),
		OrdersReleasedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orders_released_total",
			Help: "Orders returned to the courier pool",
		}),
		DisputesOpenedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "disputes_opened_total",
			Help: "Cancellation requests accepted",
		}),
		DisputeDecisionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dispute_decisions_total",
			Help: "Dispute resolutions, by decision and decision path",
		}, []string{"decision", "path"}),
		EscrowSubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "escrow_submissions_total",
			Help: "Ledger submissions, by operation and outcome",
		}, []string{"operation", "outcome"}),
		EscrowReconciledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "escrow_reconciled_total",
			Help: "Escrow accounts backfilled by the reconciliation loop",
		}),
	}
}
