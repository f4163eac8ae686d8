package file

import (
	"path/filepath"

	configtypes "github.com/weisyn/wallet-adapter/pkg/types"
)

// FileOptions 文件存储配置选项
type FileOptions struct {
	RootPath             string `json:"root_path"`
	MaxValueSize         int64  `json:"max_value_size"` // 单个值的最大字节数
	FilePermissions      int    `json:"file_permissions"`
	DirectoryPermissions int    `json:"directory_permissions"`
}

// Config 文件存储配置实现
type Config struct {
	options *FileOptions
}

// New 创建文件存储配置实现
func New(userConfig interface{}) *Config {
	defaultOptions := createDefaultFileOptions()
	if userConfig != nil {
		applyUserConfig(defaultOptions, userConfig)
	}
	return &Config{
		options: defaultOptions,
	}
}

// NewFromOptions 从FileOptions创建配置实现
func NewFromOptions(options *FileOptions) *Config {
	if options == nil {
		return New(nil)
	}
	return &Config{
		options: options,
	}
}

func createDefaultFileOptions() *FileOptions {
	return &FileOptions{
		RootPath:             defaultRootPath,
		MaxValueSize:         defaultMaxValueSize,
		FilePermissions:      defaultFilePermissions,
		DirectoryPermissions: defaultDirectoryPermissions,
	}
}

// applyUserConfig 配置了 storage.data_root 时使用 {data_root}/files/
func applyUserConfig(options *FileOptions, userConfig interface{}) {
	if storageConfig, ok := userConfig.(*configtypes.UserStorageConfig); ok && storageConfig != nil {
		if storageConfig.DataRoot != nil {
			options.RootPath = filepath.Join(*storageConfig.DataRoot, "files")
		}
	}
}

// GetOptions 获取完整的文件存储配置选项
func (c *Config) GetOptions() *FileOptions {
	return c.options
}

// GetRootPath 获取根目录路径
func (c *Config) GetRootPath() string {
	return c.options.RootPath
}

// GetMaxValueSize 获取单个值的大小上限
func (c *Config) GetMaxValueSize() int64 {
	return c.options.MaxValueSize
}

// GetFilePermissions 获取文件权限设置
func (c *Config) GetFilePermissions() int {
	return c.options.FilePermissions
}

// GetDirectoryPermissions 获取目录权限设置
func (c *Config) GetDirectoryPermissions() int {
	return c.options.DirectoryPermissions
}
