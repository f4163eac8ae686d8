package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	metricsconfig "github.com/weisyn/wallet-adapter/internal/config/metrics"
	logimpl "github.com/weisyn/wallet-adapter/internal/core/infrastructure/log"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/config"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
)

// ExporterParams 导出器依赖
type ExporterParams struct {
	fx.In

	Provider   config.Provider
	Registerer prometheus.Registerer
	Logger     log.Logger `optional:"true"`
	Lifecycle  fx.Lifecycle
}

// Module 返回指标模块
//
// custom 非空时使用调用方的注册器，否则为应用创建独立注册表。
func Module(custom prometheus.Registerer) fx.Option {
	var registry fx.Option
	if custom != nil {
		registry = fx.Provide(func() prometheus.Registerer { return custom })
	} else {
		registry = fx.Provide(func() prometheus.Registerer { return NewRegistry() })
	}

	return fx.Module("metrics",
		registry,
		fx.Provide(ProvideExporter),
		fx.Invoke(func(*Exporter) {}),
	)
}

// ProvideExporter 创建导出器并挂接生命周期
func ProvideExporter(params ExporterParams) *Exporter {
	exporter := NewExporter(
		metricsconfig.NewFromOptions(params.Provider.GetMetrics()),
		GathererFor(params.Registerer),
		logimpl.NewModuleLogger(params.Logger, "metrics"),
	)
	params.Lifecycle.Append(fx.StartStopHook(exporter.Start, exporter.Stop))
	return exporter
}
