package identity

import "github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/storage"

const (
	defaultBackend    = storage.BackendBadger
	defaultStorageKey = "RdxqNYxF"
)
