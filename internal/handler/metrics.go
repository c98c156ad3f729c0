package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	commandsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_core",
			Subsystem: "kafka_consumer",
			Name:      "commands_processed_total",
			Help:      "Total number of successfully applied operator commands",
		},
	)

	commandsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_core",
			Subsystem: "kafka_consumer",
			Name:      "commands_failed_total",
			Help:      "Total number of operator commands that could not be applied",
		},
	)

	commandsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_core",
			Subsystem: "kafka_consumer",
			Name:      "commands_dlq_total",
			Help:      "Total number of operator commands written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_core",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	commandProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_core",
			Subsystem: "kafka_consumer",
			Name:      "command_processing_duration_seconds",
			Help:      "Histogram of operator command processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	commandsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "order_core",
			Subsystem: "kafka_consumer",
			Name:      "commands_in_progress",
			Help:      "Number of operator commands currently being processed",
		},
	)
)

var (
	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_core",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders placed, by payment method",
		},
		[]string{"method"},
	)

	paymentsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_core",
			Subsystem: "payments",
			Name:      "processed_total",
			Help:      "Total number of payment attempts, by method and resulting status",
		},
		[]string{"method", "status"},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_core",
			Subsystem: "orders",
			Name:      "status_transitions_total",
			Help:      "Total number of order status changes, by target status",
		},
		[]string{"to"},
	)

	reviewsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_core",
			Subsystem: "reviews",
			Name:      "submitted_total",
			Help:      "Total number of reviews stored",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		commandsProcessed,
		commandsFailed,
		commandsDLQ,
		commitErrors,
		commandProcessingDuration,
		commandsInProgress,

		ordersCreated,
		paymentsProcessed,
		statusTransitions,
		reviewsSubmitted,
	)
}
