// Package event 提供事件管理功能
package event

import (
	"go.uber.org/fx"

	eventconfig "github.com/weisyn/wallet-adapter/internal/config/event"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/config"
	eventInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/event"
)

// ModuleInput 事件模块输入依赖
type ModuleInput struct {
	fx.In

	Provider  config.Provider
	Lifecycle fx.Lifecycle
}

// ModuleOutput 事件模块输出服务
type ModuleOutput struct {
	fx.Out

	EventBus eventInterface.EventBus
}

// Module 返回事件模块
func Module() fx.Option {
	return fx.Module("event",
		fx.Provide(
			func(input ModuleInput) ModuleOutput {
				bus := New(eventconfig.NewFromOptions(input.Provider.GetEvent()))
				// 停止前等待异步订阅者处理完
				input.Lifecycle.Append(fx.StopHook(bus.WaitAsync))
				return ModuleOutput{EventBus: bus}
			},
		),
	)
}
