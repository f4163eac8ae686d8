package storage

import (
	"fmt"

	logimpl "github.com/weisyn/wallet-adapter/internal/core/infrastructure/log"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/config"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	storageInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/storage"
	"go.uber.org/fx"
)

// ModuleParams 定义存储模块的依赖参数
type ModuleParams struct {
	fx.In

	Provider  config.Provider
	Logger    log.Logger `optional:"true"`
	Lifecycle fx.Lifecycle
}

// ModuleOutput 定义存储模块的输出结构
type ModuleOutput struct {
	fx.Out

	KVStore storageInterface.KVStore
}

// Module 返回存储模块
func Module() fx.Option {
	return fx.Module("storage",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 创建键值存储，并在应用停止时关闭
func ProvideServices(params ModuleParams) (ModuleOutput, error) {
	logger := logimpl.NewModuleLogger(params.Logger, "storage")

	store, err := NewKVStore(params.Provider, logger)
	if err != nil {
		return ModuleOutput{}, fmt.Errorf("创建身份缓存存储失败: %w", err)
	}
	logger.Infof("身份缓存存储后端: %s", params.Provider.GetIdentity().Backend)

	params.Lifecycle.Append(fx.StopHook(func() error {
		return store.Close()
	}))

	return ModuleOutput{KVStore: store}, nil
}
