// Package metrics exposes Prometheus collectors for bracket activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bab"

type Metrics struct {
	BracketsGenerated *prometheus.CounterVec
	MatchesGenerated  prometheus.Counter
	TeamsStranded     prometheus.Counter
	GamesRemoved      *prometheus.CounterVec
	MatchesCollapsed  prometheus.Counter
	BracketSize       prometheus.Gauge
	RosterSize        prometheus.Gauge
}

// New builds the collectors and registers them on reg. A nil reg skips
// registration, which tests use to avoid global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BracketsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bracket",
			Name:      "generations_total",
			Help:      "Bracket generations, by trigger.",
		}, []string{"trigger"}),
		MatchesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bracket",
			Name:      "matches_generated_total",
			Help:      "Matches produced across all generations.",
		}),
		TeamsStranded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bracket",
			Name:      "teams_stranded_total",
			Help:      "Teams dropped with an abandoned partial match.",
		}),
		GamesRemoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bracket",
			Name:      "games_removed_total",
			Help:      "Game removal requests, by outcome.",
		}, []string{"outcome"}),
		MatchesCollapsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bracket",
			Name:      "matches_collapsed_total",
			Help:      "Matches deleted after both games were removed.",
		}),
		BracketSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "bracket",
			Name:      "matches",
			Help:      "Matches in the current bracket.",
		}),
		RosterSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "players",
			Help:      "Players in the roster at the last generation.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.BracketsGenerated,
			m.MatchesGenerated,
			m.TeamsStranded,
			m.GamesRemoved,
			m.MatchesCollapsed,
			m.BracketSize,
			m.RosterSize,
		)
	}

	return m
}

const (
	TriggerManual   = "manual"
	TriggerSchedule = "schedule"

	OutcomeRemoved  = "removed"
	OutcomeNoop     = "noop"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

func (m *Metrics) ObserveGeneration(trigger string, players, matches, stranded int) {
	m.BracketsGenerated.WithLabelValues(trigger).Inc()
	m.MatchesGenerated.Add(float64(matches))
	m.TeamsStranded.Add(float64(stranded))
	m.BracketSize.Set(float64(matches))
	m.RosterSize.Set(float64(players))
}

func (m *Metrics) ObserveRemoval(outcome string, collapsed bool) {
	m.GamesRemoved.WithLabelValues(outcome).Inc()
	if collapsed {
		m.MatchesCollapsed.Inc()
		m.BracketSize.Dec()
	}
}

func (m *Metrics) ObserveClear() {
	m.BracketSize.Set(0)
}
