// Package log 定义适配器各模块共用的日志接口
package log

import "go.uber.org/zap"

// Logger 结构化日志接口
//
// 各模块通过 With("module", name) 派生子 logger；握手流程额外附带 nonce 字段。
type Logger interface {
	Debug(msg string)
	Debugf(format string, args ...interface{})
	Info(msg string)
	Infof(format string, args ...interface{})
	Warn(msg string)
	Warnf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})

	// With 返回附加了键值对字段的子 logger
	With(args ...interface{}) Logger

	// Sync 刷新缓冲
	Sync() error

	// GetZapLogger 供 fx 事件日志等需要原生 zap 的场景使用
	GetZapLogger() *zap.Logger
}
