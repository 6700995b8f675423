package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors, registered on a private
// registry so tests can create instances freely.
type Metrics struct {
	registry *prometheus.Registry

	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	MintBalance  *prometheus.GaugeVec
	WalletEvents *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ToolCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_tool_calls_total",
			Help: "Tool invocations by tool name and outcome.",
		}, []string{"tool", "status"}),
		ToolDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wallet_tool_duration_seconds",
			Help:    "Tool call latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"tool"}),
		MintBalance: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "wallet_mint_balance_sats",
			Help: "Last observed balance per mint.",
		}, []string{"mint_url"}),
		WalletEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_engine_events_total",
			Help: "Engine events observed, by kind.",
		}, []string{"kind"}),
	}
}

// Registry exposes the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveBalances refreshes the per-mint balance gauges.
func (m *Metrics) ObserveBalances(breakdown map[string]uint64) {
	for mintURL, amount := range breakdown {
		m.MintBalance.WithLabelValues(mintURL).Set(float64(amount))
	}
}
