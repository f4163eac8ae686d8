package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	metricsconfig "github.com/weisyn/wallet-adapter/internal/config/metrics"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
)

// Exporter 通过 HTTP 暴露指标
type Exporter struct {
	config   *metricsconfig.Config
	gatherer prometheus.Gatherer
	logger   log.Logger

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewExporter 创建指标导出器
func NewExporter(config *metricsconfig.Config, gatherer prometheus.Gatherer, logger log.Logger) *Exporter {
	return &Exporter{
		config:   config,
		gatherer: gatherer,
		logger:   logger,
	}
}

// Enabled 是否需要启动导出
func (e *Exporter) Enabled() bool {
	return e.config.IsEnabled() && e.config.GetListenAddr() != ""
}

// Start 监听并在后台提供服务；未启用时直接返回
func (e *Exporter) Start(ctx context.Context) error {
	if !e.Enabled() {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.server != nil {
		return nil
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", e.config.GetListenAddr())
	if err != nil {
		return fmt.Errorf("metrics exporter listen %s: %w", e.config.GetListenAddr(), err)
	}

	mux := http.NewServeMux()
	mux.Handle(e.config.GetPath(), promhttp.HandlerFor(e.gatherer, promhttp.HandlerOpts{}))
	e.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	e.listener = ln

	server := e.server
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.logger.Errorf("指标导出服务异常退出: %v", err)
		}
	}()
	e.logger.Infof("指标导出已启动: http://%s%s", ln.Addr(), e.config.GetPath())
	return nil
}

// Addr 实际监听地址，未启动时为空
func (e *Exporter) Addr() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.listener == nil {
		return ""
	}
	return e.listener.Addr().String()
}

// Stop 优雅关闭
func (e *Exporter) Stop(ctx context.Context) error {
	e.mu.Lock()
	server := e.server
	e.server = nil
	e.listener = nil
	e.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}
