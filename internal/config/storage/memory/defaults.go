package memory

// 身份缓存只有一个很小的条目，默认值按最小占用设置
const (
	defaultLifeWindow         = "720h"
	defaultCleanWindow        = "0s"
	defaultMaxEntriesInWindow = 64
	defaultMaxEntrySize       = 256
	defaultShards             = 16
)
