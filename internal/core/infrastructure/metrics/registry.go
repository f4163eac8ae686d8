// Package metrics 提供 Prometheus 注册表与 HTTP 导出
//
// 📊 **指标基础设施 (Metrics Infrastructure)**
//
// 每个应用实例持有独立的注册表，握手引擎的指标注册在其中；
// 配置了 metrics.listen_addr 时由 Exporter 通过 HTTP 暴露。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry 创建注册表，附带 Go 运行时与进程指标
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// GathererFor 返回与注册器配对的采集器
//
// 自定义注册器未实现 Gatherer 时退回默认采集器。
func GathererFor(reg prometheus.Registerer) prometheus.Gatherer {
	if g, ok := reg.(prometheus.Gatherer); ok {
		return g
	}
	return prometheus.DefaultGatherer
}
