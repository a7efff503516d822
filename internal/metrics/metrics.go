package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "selfstorage_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	BoxesReleasedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "selfstorage_boxes_released_total",
		Help: "Total number of boxes freed by order release.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "selfstorage_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	BoxCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "selfstorage_box_cache_items",
		Help: "Current number of items in the box cache.",
	})

	AuditEntriesPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "selfstorage_audit_entries_published_total",
		Help: "Total number of audit entries handed to the outbox.",
	})
)
