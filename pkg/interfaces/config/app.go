package config

import "github.com/weisyn/wallet-adapter/pkg/types"

// AppOptions 应用启动选项，由 CLI 根据命令行与配置文件构造
type AppOptions interface {
	GetAppConfig() *types.AppConfig
}
