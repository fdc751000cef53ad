package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	reg, m := NewRegistry()
	require.NotNil(t, reg)
	require.NotNil(t, m)

	m.DeckGenerations.WithLabelValues("true").Inc()
	m.StatusLoads.WithLabelValues("yaml", "true").Add(2)
	m.StatusLoadErrors.WithLabelValues("STATUS-003").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["podium_deck_generations_total"])
	assert.True(t, names["podium_status_loads_total"])
	assert.True(t, names["podium_status_load_errors_total"])
}

func TestSeparateRegistriesAreIndependent(t *testing.T) {
	regA, a := NewRegistry()
	_, b := NewRegistry()

	a.WatchRebuilds.WithLabelValues("true").Inc()
	b.WatchRebuilds.WithLabelValues("true").Inc()

	families, err := regA.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != "podium_watch_rebuilds_total" {
			continue
		}
		require.Len(t, f.GetMetric(), 1)
		assert.Equal(t, 1.0, f.GetMetric()[0].GetCounter().GetValue())
	}
}

func TestDefaultInstance(t *testing.T) {
	m := GetDefault()
	require.NotNil(t, m)
	assert.Same(t, m, GetDefault())
}
