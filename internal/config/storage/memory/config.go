package memory

// MemoryOptions 内存存储配置选项（BigCache）
type MemoryOptions struct {
	LifeWindow         string `json:"life_window"`  // 条目生命周期，如 "720h"
	CleanWindow        string `json:"clean_window"` // 清理间隔；"0s" 表示不启动后台清理
	MaxEntriesInWindow int    `json:"max_entries_in_window"`
	MaxEntrySize       int    `json:"max_entry_size"` // 字节
	Shards             int    `json:"shards"`         // 必须是 2 的幂
}

// Config 内存存储配置实现
type Config struct {
	options *MemoryOptions
}

// New 创建内存存储配置实现
func New(userConfig interface{}) *Config {
	return &Config{
		options: createDefaultMemoryOptions(),
	}
}

// NewFromOptions 从 MemoryOptions 创建配置实现
func NewFromOptions(options *MemoryOptions) *Config {
	if options == nil {
		return New(nil)
	}
	return &Config{options: options}
}

func createDefaultMemoryOptions() *MemoryOptions {
	return &MemoryOptions{
		LifeWindow:         defaultLifeWindow,
		CleanWindow:        defaultCleanWindow,
		MaxEntriesInWindow: defaultMaxEntriesInWindow,
		MaxEntrySize:       defaultMaxEntrySize,
		Shards:             defaultShards,
	}
}

// GetOptions 获取完整的内存存储配置选项
func (c *Config) GetOptions() *MemoryOptions {
	return c.options
}

func (c *Config) GetLifeWindow() string {
	return c.options.LifeWindow
}

func (c *Config) GetCleanWindow() string {
	return c.options.CleanWindow
}

func (c *Config) GetMaxEntriesInWindow() int {
	return c.options.MaxEntriesInWindow
}

func (c *Config) GetMaxEntrySize() int {
	return c.options.MaxEntrySize
}

func (c *Config) GetShards() int {
	return c.options.Shards
}
