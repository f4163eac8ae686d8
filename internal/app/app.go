// Package app 负责装配并启动钱包适配器
package app

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/weisyn/wallet-adapter/client/adapter"
	config "github.com/weisyn/wallet-adapter/internal/config"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
)

// App 已启动的钱包适配器应用
type App struct {
	fxApp   *fx.App
	adapter *adapter.Adapter
	events  event.EventBus
	logger  log.Logger
}

// Start 加载配置、装配模块并启动
func Start(ctx context.Context, opts ...Option) (*App, error) {
	o := newOptions(opts...)
	if err := resolveAppConfig(o); err != nil {
		return nil, err
	}

	a := &App{}
	fxOptions := append(NewBootstrap(o).Options(),
		fx.WithLogger(newFxLogger),
		fx.Populate(&a.adapter, &a.events, &a.logger),
	)
	a.fxApp = fx.New(fxOptions...)
	if err := a.fxApp.Err(); err != nil {
		return nil, fmt.Errorf("装配模块失败: %w", err)
	}
	if err := a.fxApp.Start(ctx); err != nil {
		return nil, fmt.Errorf("启动失败: %w", err)
	}
	return a, nil
}

// newFxLogger 装配过程事件仅在 debug 级别输出
func newFxLogger(z *zap.Logger) fxevent.Logger {
	l := &fxevent.ZapLogger{Logger: z.Named("fx")}
	l.UseLogLevel(zapcore.DebugLevel)
	return l
}

// resolveAppConfig 按优先级确定用户配置：显式配置 > 嵌入配置 > 配置文件
func resolveAppConfig(o *options) error {
	switch {
	case o.appConfig != nil:
		if err := config.ValidateAppConfig(o.appConfig); err != nil {
			return fmt.Errorf("配置校验失败: %w", err)
		}
	case len(o.embeddedConfig) > 0:
		appConfig, err := config.ParseAppConfig(o.embeddedConfig)
		if err != nil {
			return fmt.Errorf("加载嵌入配置失败: %w", err)
		}
		o.appConfig = appConfig
	default:
		appConfig, err := config.LoadAppConfig(o.configFilePath)
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}
		o.appConfig = appConfig
	}
	return nil
}

// Adapter 钱包适配器门面
func (a *App) Adapter() *adapter.Adapter {
	return a.adapter
}

// Events 生命周期事件总线
func (a *App) Events() event.EventBus {
	return a.events
}

// Logger 应用日志器
func (a *App) Logger() log.Logger {
	return a.logger
}

// Stop 停止应用：拆除通道、关闭存储、刷新日志
func (a *App) Stop(ctx context.Context) error {
	return a.fxApp.Stop(ctx)
}
