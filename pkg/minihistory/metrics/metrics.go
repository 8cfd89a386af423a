// Package metrics counts inferred actions and navigation outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Navigation outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomePending = "pending"
	OutcomeNoop    = "noop"
)

// Recorder receives history events. The zero-cost implementation is Nop.
type Recorder interface {
	Action(action string)
	Navigation(method, outcome string)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Action(string)             {}
func (Nop) Navigation(string, string) {}

// Prometheus records into counter vectors.
type Prometheus struct {
	actions     *prometheus.CounterVec
	navigations *prometheus.CounterVec
}

// NewPrometheus creates the counters and registers them with reg. Several
// histories may share one registerer; already registered collectors are
// reused.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "minihistory_actions_total",
		Help: "Navigation actions inferred from page stack changes, by action",
	}, []string{"action"})

	navigations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "minihistory_navigations_total",
		Help: "Navigation requests issued through history, by method and outcome",
	}, []string{"method", "outcome"})

	var err error
	if actions, err = register(reg, actions); err != nil {
		return nil, err
	}
	if navigations, err = register(reg, navigations); err != nil {
		return nil, err
	}

	return &Prometheus{actions: actions, navigations: navigations}, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

func (p *Prometheus) Action(action string) {
	p.actions.WithLabelValues(action).Inc()
}

func (p *Prometheus) Navigation(method, outcome string) {
	p.navigations.WithLabelValues(method, outcome).Inc()
}
