package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStoreMetrics(reg)

	m.IncAction("cart", "ADD_TO_CART")
	m.IncAction("cart", "ADD_TO_CART")
	m.IncPersistFailure("favorites")
	m.IncHydration("cart", "discarded")
	m.ObserveSearchResults(3)
	m.SetActiveSessions(4)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	got, err := fetchCounterValue(mfs, "store_actions_total", map[string]string{"store": "cart", "action": "ADD_TO_CART"})
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = fetchCounterValue(mfs, "store_persist_failures_total", map[string]string{"store": "favorites"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = fetchCounterValue(mfs, "store_hydrations_total", map[string]string{"store": "cart", "outcome": "discarded"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	hist := findMetricFamily(mfs, "search_results")
	require.NotNil(t, hist)
	assert.Equal(t, 3.0, hist.GetMetric()[0].GetHistogram().GetSampleSum())

	gauge := findMetricFamily(mfs, "shopper_sessions_active")
	require.NotNil(t, gauge)
	assert.Equal(t, 4.0, gauge.GetMetric()[0].GetGauge().GetValue())
}

func TestStoreMetricsNilSafe(t *testing.T) {
	var m *StoreMetrics
	assert.NotPanics(t, func() {
		m.IncAction("cart", "x")
		m.IncPersistFailure("cart")
		m.ObserveSearchResults(1)
	})

	noop := NewStoreMetrics(nil)
	assert.NotPanics(t, func() { noop.SetActiveSessions(1) })
}

func TestNormalizeLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStoreMetrics(reg)
	m.IncAction("", "")

	mfs, err := reg.Gather()
	require.NoError(t, err)
	got, err := fetchCounterValue(mfs, "store_actions_total", map[string]string{"store": "unknown", "action": "unknown"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing labels %v", name, labels)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	matched := 0
	for _, pair := range pairs {
		if v, ok := want[pair.GetName()]; ok && v == pair.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
