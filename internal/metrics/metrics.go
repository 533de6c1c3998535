package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysesTotal counts domain analyses by source and cache outcome
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_analyses_total",
			Help: "Total number of domain analyses",
		},
		[]string{"source", "cached"},
	)

	// ValuationDuration tracks valuation provider request time
	ValuationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analyzer_valuation_duration_seconds",
			Help:    "Valuation provider request duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
	)

	// CreditsUsedTotal counts credits debited from ledgers
	CreditsUsedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analyzer_credits_used_total",
			Help: "Total number of credits debited",
		},
	)

	// CreditsPurchasedTotal counts credits added to ledgers
	CreditsPurchasedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analyzer_credits_purchased_total",
			Help: "Total number of credits purchased",
		},
	)

	// InsufficientCreditsTotal counts debits rejected for lack of balance
	InsufficientCreditsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analyzer_insufficient_credits_total",
			Help: "Total number of debits rejected due to insufficient balance",
		},
	)

	// PayPalOrdersTotal counts payment orders by operation and status
	PayPalOrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_paypal_orders_total",
			Help: "Total number of PayPal order operations",
		},
		[]string{"operation", "status"},
	)

	// RegistryRequestsTotal counts domain registry GraphQL queries
	RegistryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_registry_requests_total",
			Help: "Total number of domain registry queries",
		},
		[]string{"query", "status"},
	)
)
