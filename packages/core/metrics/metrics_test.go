package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Generation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveGeneration(TriggerManual, 8, 2, 3)
	m.ObserveGeneration(TriggerSchedule, 12, 5, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BracketsGenerated.WithLabelValues(TriggerManual)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BracketsGenerated.WithLabelValues(TriggerSchedule)))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.MatchesGenerated))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.TeamsStranded))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.BracketSize))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.RosterSize))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestMetrics_Removal(t *testing.T) {
	m := New(nil)
	m.ObserveGeneration(TriggerManual, 8, 3, 0)

	m.ObserveRemoval(OutcomeRemoved, false)
	m.ObserveRemoval(OutcomeRemoved, true)
	m.ObserveRemoval(OutcomeNoop, false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GamesRemoved.WithLabelValues(OutcomeRemoved)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GamesRemoved.WithLabelValues(OutcomeNoop)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MatchesCollapsed))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BracketSize))

	m.ObserveClear()
	assert.Zero(t, testutil.ToFloat64(m.BracketSize))
}
