// Package storage 按配置选择身份缓存的存储后端
package storage

import (
	"fmt"

	badgerconfig "github.com/weisyn/wallet-adapter/internal/config/storage/badger"
	fileconfig "github.com/weisyn/wallet-adapter/internal/config/storage/file"
	memoryconfig "github.com/weisyn/wallet-adapter/internal/config/storage/memory"
	redisconfig "github.com/weisyn/wallet-adapter/internal/config/storage/redis"
	"github.com/weisyn/wallet-adapter/internal/core/infrastructure/storage/badger"
	"github.com/weisyn/wallet-adapter/internal/core/infrastructure/storage/file"
	"github.com/weisyn/wallet-adapter/internal/core/infrastructure/storage/memory"
	"github.com/weisyn/wallet-adapter/internal/core/infrastructure/storage/redis"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/config"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	storageInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/storage"
)

// NewKVStore 根据 storage.backend 创建键值存储
func NewKVStore(provider config.Provider, logger log.Logger) (storageInterface.KVStore, error) {
	backend := provider.GetIdentity().Backend
	switch backend {
	case storageInterface.BackendBadger, "":
		return badger.New(badgerconfig.NewFromOptions(provider.GetBadger()), logger)
	case storageInterface.BackendFile:
		return file.New(fileconfig.NewFromOptions(provider.GetFile()), logger)
	case storageInterface.BackendMemory:
		return memory.New(memoryconfig.NewFromOptions(provider.GetMemory()), logger)
	case storageInterface.BackendRedis:
		return redis.New(redisconfig.NewFromOptions(provider.GetRedis()), logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
