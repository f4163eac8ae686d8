package handshake

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	adapterconfig "github.com/weisyn/wallet-adapter/internal/config/adapter"
	identityconfig "github.com/weisyn/wallet-adapter/internal/config/identity"
	metricsconfig "github.com/weisyn/wallet-adapter/internal/config/metrics"
	identityimpl "github.com/weisyn/wallet-adapter/internal/core/identity"
	logimpl "github.com/weisyn/wallet-adapter/internal/core/infrastructure/log"
	"github.com/weisyn/wallet-adapter/internal/core/ledger"
	"github.com/weisyn/wallet-adapter/internal/core/nonce"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/config"
	handshakeInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/handshake"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/identity"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/storage"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
)

// ModuleParams 定义握手模块的依赖参数
type ModuleParams struct {
	fx.In

	Provider       config.Provider
	ChannelManager popupInterface.ChannelManager
	KVStore        storage.KVStore
	Logger         log.Logger            `optional:"true"`
	Registerer     prometheus.Registerer `optional:"true"`
}

// ModuleOutput 定义握手模块的输出结构
type ModuleOutput struct {
	fx.Out

	Engine   handshakeInterface.Engine
	Identity identity.Cache
}

// Module 返回握手模块
func Module() fx.Option {
	return fx.Module("handshake",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 组装身份缓存与握手引擎
func ProvideServices(params ModuleParams) (ModuleOutput, error) {
	identityOptions := identityconfig.NewFromOptions(params.Provider.GetIdentity())
	cache := identityimpl.New(
		params.KVStore,
		identityOptions.GetStorageKey(),
		logimpl.NewModuleLogger(params.Logger, "identity"),
	)

	registerer := params.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	engine, err := NewEngine(EngineParams{
		Channels: params.ChannelManager,
		Nonces:   nonce.UUIDGenerator{},
		Identity: cache,
		Codec:    ledger.NewCodec(),
		Config:   adapterconfig.NewFromOptions(params.Provider.GetAdapter()),
		Logger:   logimpl.NewModuleLogger(params.Logger, "handshake"),
		Metrics:  NewMetrics(metricsconfig.NewFromOptions(params.Provider.GetMetrics()), registerer),
	})
	if err != nil {
		return ModuleOutput{}, err
	}
	return ModuleOutput{Engine: engine, Identity: cache}, nil
}
