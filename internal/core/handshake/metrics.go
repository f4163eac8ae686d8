package handshake

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	metricsconfig "github.com/weisyn/wallet-adapter/internal/config/metrics"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

const (
	outcomeSuccess  = "success"
	outcomeCacheHit = "cache_hit"
	outcomeCanceled = "canceled"
	outcomeTimeout  = "timeout"
)

// Metrics 握手操作指标；nil 接收者上的方法均为空操作
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	inflight   prometheus.Gauge
}

// NewMetrics 在 reg 上注册握手指标，未启用时返回 nil
func NewMetrics(cfg *metricsconfig.Config, reg prometheus.Registerer) *Metrics {
	if cfg == nil || !cfg.IsEnabled() {
		return nil
	}
	factory := promauto.With(reg)
	namespace := cfg.GetNamespace()
	return &Metrics{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "handshake",
				Name:      "operations_total",
				Help:      "Total number of handshake operations by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "handshake",
				Name:      "operation_duration_seconds",
				Help:      "Handshake operation duration in seconds, popup interaction included",
				Buckets:   []float64{0.01, 0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
			},
			[]string{"kind"},
		),
		inflight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "handshake",
				Name:      "operations_in_flight",
				Help:      "Number of handshake operations currently awaiting the popup",
			},
		),
	}
}

func (m *Metrics) begin() {
	if m == nil {
		return
	}
	m.inflight.Inc()
}

func (m *Metrics) end() {
	if m == nil {
		return
	}
	m.inflight.Dec()
}

func (m *Metrics) observe(kind opKind, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(string(kind), outcome).Inc()
	m.duration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
}

// outcomeOf 把操作结果映射为指标标签
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return outcomeTimeout
	case errors.Is(err, context.Canceled):
		return outcomeCanceled
	}
	var we *types.WalletError
	if errors.As(err, &we) {
		return string(we.Kind)
	}
	return "error"
}
