// Package file 提供文件存储的默认配置
package file

// 默认配置值
const (
	defaultRootPath             = "./data/files"
	defaultMaxValueSize         = int64(64 << 10)
	defaultFilePermissions      = 0600
	defaultDirectoryPermissions = 0700
)
