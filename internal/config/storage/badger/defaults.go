package badger

const (
	defaultDataRoot = "./data"

	// defaultSyncWrites 身份缓存写入极少，同步写入保证断电不丢
	defaultSyncWrites = true
)
