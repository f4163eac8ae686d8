package popup

import (
	"go.uber.org/fx"

	adapterconfig "github.com/weisyn/wallet-adapter/internal/config/adapter"
	logimpl "github.com/weisyn/wallet-adapter/internal/core/infrastructure/log"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
)

// ModuleParams 定义弹窗通道模块的依赖参数
type ModuleParams struct {
	fx.In

	Options   *adapterconfig.AdapterOptions
	Logger    log.Logger `optional:"true"`
	Launcher  Launcher   `optional:"true"`
	Lifecycle fx.Lifecycle
}

// ModuleOutput 定义弹窗通道模块的输出结构
type ModuleOutput struct {
	fx.Out

	ChannelManager popupInterface.ChannelManager
}

// Module 返回弹窗通道模块
func Module() fx.Option {
	return fx.Module("popup",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 创建中继通道管理器，应用停止时拆除
func ProvideServices(params ModuleParams) ModuleOutput {
	logger := logimpl.NewModuleLogger(params.Logger, "popup")
	manager := NewWSManager(adapterconfig.NewFromOptions(params.Options), params.Launcher, logger)

	params.Lifecycle.Append(fx.StopHook(manager.TearDown))

	return ModuleOutput{ChannelManager: manager}
}
