package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records activity of the shopper state stores.
type StoreMetrics struct {
	actions         *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	hydrations      *prometheus.CounterVec
	searchResults   prometheus.Histogram
	activeSessions  prometheus.Gauge
}

// NewStoreMetrics registers the store metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	// Counters
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_actions_total",
		Help: "State transitions applied per store and action.",
	}, []string{"store", "action"})
	persistFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_persist_failures_total",
		Help: "Snapshot writes that failed after a transition was applied.",
	}, []string{"store"})
	hydrations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_hydrations_total",
		Help: "Store rehydrations by outcome (restored, empty, discarded, error).",
	}, []string{"store", "outcome"})
	// Histograms and gauges
	searchResults := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_results",
		Help:    "Number of products returned per search query.",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
	})
	activeSessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "shopper_sessions_active",
		Help: "Shopper sessions currently held in memory.",
	})
	reg.MustRegister(actions, persistFailures, hydrations, searchResults, activeSessions)
	return &StoreMetrics{
		actions:         actions,
		persistFailures: persistFailures,
		hydrations:      hydrations,
		searchResults:   searchResults,
		activeSessions:  activeSessions,
	}
}

func (m *StoreMetrics) IncAction(store, action string) {
	if m == nil || m.actions == nil {
		return
	}
	m.actions.WithLabelValues(normalizeLabel(store), normalizeLabel(action)).Inc()
}

func (m *StoreMetrics) IncPersistFailure(store string) {
	if m == nil || m.persistFailures == nil {
		return
	}
	m.persistFailures.WithLabelValues(normalizeLabel(store)).Inc()
}

func (m *StoreMetrics) IncHydration(store, outcome string) {
	if m == nil || m.hydrations == nil {
		return
	}
	m.hydrations.WithLabelValues(normalizeLabel(store), normalizeLabel(outcome)).Inc()
}

func (m *StoreMetrics) ObserveSearchResults(n int) {
	if m == nil || m.searchResults == nil {
		return
	}
	m.searchResults.Observe(float64(n))
}

func (m *StoreMetrics) SetActiveSessions(n int) {
	if m == nil || m.activeSessions == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
