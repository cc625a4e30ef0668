// Package metrics holds the Prometheus counters of the engine. Metrics live in
// a local registry, exposed by Handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry - реестр сервиса, не глобальный prometheus.DefaultRegistry.
	Registry = prometheus.NewRegistry()

	sessionsStarted = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "wealth_sprint_sessions_started_total",
		Help: "Total number of daily decision sessions started.",
	})
	sessionsCompleted = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "wealth_sprint_sessions_completed_total",
		Help: "Total number of daily decision sessions submitted.",
	})
	decisionsResolved = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "wealth_sprint_decisions_resolved_total",
		Help: "Total number of resolved decisions, partitioned by commitment status.",
	}, []string{"committed"})
	commitmentFailures = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "wealth_sprint_commitment_failures_total",
		Help: "Total number of failed ledger commitments.",
	})
	scenariosResolved = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "wealth_sprint_scenarios_resolved_total",
		Help: "Total number of resolved scenarios by section.",
	}, []string{"section"})
	daysAdvanced = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "wealth_sprint_days_advanced_total",
		Help: "Total number of game day advances.",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func MetricsIncrementSessionsStarted() { sessionsStarted.Inc() }

func MetricsIncrementSessionsCompleted() { sessionsCompleted.Inc() }

// MetricsIncrementDecisionsResolved учитывает одно разрешённое решение.
func MetricsIncrementDecisionsResolved(committed bool) {
	label := "false"
	if committed {
		label = "true"
	}
	decisionsResolved.WithLabelValues(label).Inc()
}

func MetricsIncrementCommitmentFailures() { commitmentFailures.Inc() }

func MetricsIncrementScenariosResolved(section string) {
	scenariosResolved.WithLabelValues(section).Inc()
}

func MetricsIncrementDaysAdvanced() { daysAdvanced.Inc() }

// Handler отдаёт метрики реестра в формате Prometheus.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
