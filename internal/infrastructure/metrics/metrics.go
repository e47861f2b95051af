package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the banking core.
type Metrics struct {
	ClientsRegistered prometheus.Counter
	AccountsOpened    *prometheus.CounterVec

	TransactionsApplied  *prometheus.CounterVec
	TransactionsRejected *prometheus.CounterVec
	TransactionAmount    prometheus.Histogram

	StatementsGenerated prometheus.Counter
}

// New creates the metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ClientsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_clients_registered_total",
			Help: "Total number of clients registered",
		}),
		AccountsOpened: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_accounts_opened_total",
				Help: "Total number of accounts opened by kind",
			},
			[]string{"kind"},
		),
		TransactionsApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_transactions_applied_total",
				Help: "Total number of transactions applied by kind",
			},
			[]string{"kind"},
		),
		TransactionsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_transactions_rejected_total",
				Help: "Total number of rejected transactions by kind and reason",
			},
			[]string{"kind", "reason"},
		),
		TransactionAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobank_transaction_amount",
			Help:    "Applied transaction amounts",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 10000},
		}),
		StatementsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_statements_generated_total",
			Help: "Total number of statements generated",
		}),
	}
}
