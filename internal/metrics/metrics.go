// Package metrics counts form activity in a private Prometheus registry.
// There is no HTTP endpoint; WriteTextfile dumps the registry in the text
// exposition format for node_exporter's textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const namespace = "finform"

// Metrics holds every collector the app updates.
type Metrics struct {
	registry *prometheus.Registry

	TransactionsSaved *prometheus.CounterVec
	SavesRejected     *prometheus.CounterVec
	LedgerMutations   *prometheus.CounterVec
	SplitParticipants *prometheus.HistogramVec
	SavedAmount       *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		TransactionsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_saved_total",
			Help:      "Transactions saved, by type.",
		}, []string{"type"}),
		SavesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "save_rejected_total",
			Help:      "Save attempts rejected by validation, by reason.",
		}, []string{"reason"}),
		LedgerMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_mutations_total",
			Help:      "Applied split ledger mutations, by ledger and operation.",
		}, []string{"ledger", "op"}),
		SplitParticipants: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "split_participants",
			Help:      "Participants per ledger on saved transactions.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
		}, []string{"ledger"}),
		SavedAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saved_amount_total",
			Help:      "Sum of saved transaction amounts, by type.",
		}, []string{"type"}),
	}
	m.registry.MustRegister(
		m.TransactionsSaved,
		m.SavesRejected,
		m.LedgerMutations,
		m.SplitParticipants,
		m.SavedAmount,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSave records one saved transaction.
func (m *Metrics) ObserveSave(txType string, amount decimal.Decimal, youOweCount, owedToYouCount int) {
	m.TransactionsSaved.WithLabelValues(txType).Inc()
	m.SavedAmount.WithLabelValues(txType).Add(amount.InexactFloat64())
	m.SplitParticipants.WithLabelValues("you_owe").Observe(float64(youOweCount))
	m.SplitParticipants.WithLabelValues("owed_to_you").Observe(float64(owedToYouCount))
}

// ObserveRejected records one rejected save.
func (m *Metrics) ObserveRejected(reason string) {
	m.SavesRejected.WithLabelValues(reason).Inc()
}

// ObserveMutation records one applied ledger mutation.
func (m *Metrics) ObserveMutation(ledger, op string) {
	m.LedgerMutations.WithLabelValues(ledger, op).Inc()
}

// WriteTextfile writes the registry to path atomically. An empty path is a
// no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
