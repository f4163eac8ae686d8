// Package log 提供日志配置
//
// 日志只面向运维：控制台输出固定写 stderr，stdout 留给命令行结果。
package log

import (
	"go.uber.org/zap/zapcore"

	configtypes "github.com/weisyn/wallet-adapter/pkg/types"
)

// LogOptions 日志配置选项
type LogOptions struct {
	Level     string `json:"level"`      // debug | info | warn | error
	FilePath  string `json:"file_path"`  // 为空时不写文件
	ToConsole bool   `json:"to_console"` // 同时输出到 stderr

	// 轮转（lumberjack）
	MaxSizeMB  int  `json:"max_size_mb"`
	MaxBackups int  `json:"max_backups"`
	MaxAgeDays int  `json:"max_age_days"`
	Compress   bool `json:"compress"`

	Caller bool `json:"caller"`
}

// Config 日志配置实现
type Config struct {
	options *LogOptions
}

// New 创建日志配置实现
func New(userConfig interface{}) *Config {
	options := &LogOptions{
		Level:      defaultLevel,
		FilePath:   defaultFilePath,
		ToConsole:  defaultToConsole,
		MaxSizeMB:  defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAgeDays: defaultMaxAgeDays,
		Compress:   defaultCompress,
		Caller:     defaultCaller,
	}
	if c, ok := userConfig.(*configtypes.UserLogConfig); ok && c != nil {
		if c.Level != nil {
			options.Level = *c.Level
		}
		if c.FilePath != nil {
			options.FilePath = *c.FilePath
		}
		if c.ToConsole != nil {
			options.ToConsole = *c.ToConsole
		}
	}
	return &Config{options: options}
}

// NewFromOptions 从 LogOptions 创建配置实现
func NewFromOptions(options *LogOptions) *Config {
	if options == nil {
		return New(nil)
	}
	return &Config{options: options}
}

// GetOptions 获取完整的日志配置选项
func (c *Config) GetOptions() *LogOptions {
	return c.options
}

// GetLevel 解析日志级别，无法识别时按 info 处理
func (c *Config) GetLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.options.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// GetFilePath 日志文件路径
func (c *Config) GetFilePath() string {
	return c.options.FilePath
}

// IsConsoleEnabled 是否输出到 stderr
//
// 没有配置文件路径时总是输出到控制台，避免日志完全丢失。
func (c *Config) IsConsoleEnabled() bool {
	return c.options.ToConsole || c.options.FilePath == ""
}

func (c *Config) GetMaxSizeMB() int {
	return c.options.MaxSizeMB
}

func (c *Config) GetMaxBackups() int {
	return c.options.MaxBackups
}

func (c *Config) GetMaxAgeDays() int {
	return c.options.MaxAgeDays
}

func (c *Config) IsCompressionEnabled() bool {
	return c.options.Compress
}

// IsCallerEnabled 是否记录调用位置
func (c *Config) IsCallerEnabled() bool {
	return c.options.Caller
}
