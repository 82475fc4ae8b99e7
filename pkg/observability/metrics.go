// Package observability bridges navigator lifecycle hooks to Prometheus
// collectors. The package owns no HTTP surface: hosts register the
// collectors with their own registry and expose them however they already
// expose metrics.
package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/gyre/pkg/domain"
)

// Metrics holds the collectors for navigator activity.
type Metrics struct {
	transitions *prometheus.CounterVec
}

// NewMetrics creates the collectors, unregistered.
func NewMetrics() *Metrics {
	return &Metrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gyre_transitions_total",
				Help: "Total number of navigator transitions",
			},
			[]string{"op", "from", "to"},
		),
	}
}

// Register adds the collectors to the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	if err := reg.Register(m.transitions); err != nil {
		return fmt.Errorf("failed to register transition counter: %w", err)
	}
	return nil
}

// Collector exposes the transition counter for custom pipelines and test
// scraping.
func (m *Metrics) Collector() prometheus.Collector {
	return m.transitions
}

// Hooks returns lifecycle hooks that count every transition, for wiring
// into a navigator via gyre.WithHooks. States are labeled by their default
// string rendering.
func Hooks[S comparable](m *Metrics) domain.Hooks[S] {
	return domain.Hooks[S]{
		OnTransition: func(e *domain.TransitionEvent[S]) {
			m.transitions.WithLabelValues(
				string(e.Op),
				fmt.Sprintf("%v", e.From),
				fmt.Sprintf("%v", e.To),
			).Inc()
		},
	}
}
