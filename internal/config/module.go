// Package config 提供应用配置管理功能
package config

import (
	adapterconfig "github.com/weisyn/wallet-adapter/internal/config/adapter"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/config"
	"github.com/weisyn/wallet-adapter/pkg/types"
	"go.uber.org/fx"
)

// ConfigParams 定义配置模块的依赖参数
type ConfigParams struct {
	fx.In

	AppOptions config.AppOptions `optional:"true"`
}

// ConfigOutput 定义配置模块的输出结构
type ConfigOutput struct {
	fx.Out

	Provider config.Provider
}

// Module 返回配置模块
func Module() fx.Option {
	return fx.Module("config",
		fx.Provide(
			ProvideConfigServices,
			func(provider config.Provider) *adapterconfig.AdapterOptions {
				return provider.GetAdapter()
			},
		),
	)
}

// ProvideConfigServices 提供配置服务
func ProvideConfigServices(params ConfigParams) (ConfigOutput, error) {
	var appConfig *types.AppConfig
	if params.AppOptions != nil {
		appConfig = params.AppOptions.GetAppConfig()
	}
	return ConfigOutput{
		Provider: NewProvider(appConfig),
	}, nil
}
