package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ledgerOperations     *prometheus.CounterVec
	ledgerDuration       prometheus.Histogram
	authenticationEvents *prometheus.CounterVec
	tradesTotal          *prometheus.CounterVec
	tradeNotional        prometheus.Histogram
	marketTicks          *prometheus.CounterVec
	marketTickDuration   prometheus.Histogram
	assetsMoved          prometheus.Gauge
	persistenceFailures  *prometheus.CounterVec
	portfolioValue       *prometheus.GaugeVec
	adminActions         *prometheus.CounterVec
}

// NewPrometheusMetrics registers the engine collectors on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		ledgerOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_ledger_operations_total",
				Help: "Total number of ledger operations by outcome",
			},
			[]string{"operation", "status"},
		),
		ledgerDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_ledger_operation_duration_milliseconds",
				Help:    "Ledger operation duration including persistence in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		authenticationEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		tradesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_trades_total",
				Help: "Total number of executed trades",
			},
			[]string{"side", "market"},
		),
		tradeNotional: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_trade_notional_inr",
				Help:    "Trade value in INR",
				Buckets: prometheus.ExponentialBuckets(100, 10, 8),
			},
		),
		marketTicks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_market_ticks_total",
				Help: "Total number of simulated market ticks",
			},
			[]string{"kind"},
		),
		marketTickDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_market_tick_duration_milliseconds",
				Help:    "Market tick duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		assetsMoved: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_market_assets_moved",
				Help: "Number of assets repriced by the last tick",
			},
		),
		persistenceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_persistence_failures_total",
				Help: "Total number of failed table writes",
			},
			[]string{"table"},
		),
		portfolioValue: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bank_portfolio_value_inr",
				Help: "Last computed portfolio value in INR",
			},
			[]string{"account"},
		),
		adminActions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_admin_actions_total",
				Help: "Total number of administrator actions",
			},
			[]string{"action"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ledger_operation":
		m.ledgerOperations.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEvents.WithLabelValues(eventType).Inc()
		}
	case "trade_executed":
		m.tradesTotal.WithLabelValues(tags["side"], tags["market"]).Inc()
	case "market_tick":
		m.marketTicks.WithLabelValues(tags["kind"]).Inc()
	case "persistence_failure":
		m.persistenceFailures.WithLabelValues(tags["table"]).Inc()
	case "admin_action":
		m.adminActions.WithLabelValues(tags["action"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ledger_operation":
		m.ledgerDuration.Observe(float64(duration.Milliseconds()))
	case "market_tick":
		m.marketTickDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "trade_notional_inr":
		m.tradeNotional.Observe(value)
	case "market_assets_moved":
		m.assetsMoved.Set(value)
	case "portfolio_value_inr":
		m.portfolioValue.WithLabelValues(tags["account"]).Set(value)
	}
}

// NoopMetrics discards every measurement
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string)        {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration)        {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string)    {}
