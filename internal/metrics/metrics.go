// Package metrics holds the Prometheus counters for check activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for numcheck.
// Each instance owns its registry so tests and short-lived commands do not
// share global state.
type Metrics struct {
	Registry *prometheus.Registry

	ChecksTotal     *prometheus.CounterVec // labels: kind
	AssertionsTotal *prometheus.CounterVec // labels: outcome
	SuiteCasesTotal *prometheus.CounterVec // labels: outcome
	RecordErrors    prometheus.Counter
}

// NewMetrics registers and returns all metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "numcheck_checks_total",
			Help: "Total checks evaluated, by kind",
		}, []string{"kind"}),
		AssertionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "numcheck_assertions_total",
			Help: "Total equality assertions, by outcome",
		}, []string{"outcome"}),
		SuiteCasesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "numcheck_suite_cases_total",
			Help: "Total suite cases, by outcome (passed, failed, skipped)",
		}, []string{"outcome"}),
		RecordErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "numcheck_record_errors_total",
			Help: "Check records that could not be persisted",
		}),
	}

	m.Registry.MustRegister(
		m.ChecksTotal,
		m.AssertionsTotal,
		m.SuiteCasesTotal,
		m.RecordErrors,
	)
	return m
}

// Outcome maps a pass/fail flag to a label value.
func Outcome(passed bool) string {
	if passed {
		return "passed"
	}
	return "failed"
}

// WriteTextfile writes the registry in the Prometheus text format, suitable
// for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
