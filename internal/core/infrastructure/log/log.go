// Package log 基于 zap 的日志实现
//
// 控制台输出为彩色文本并写入 stderr，文件输出为 JSON 并由 lumberjack 轮转。
package log

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	logconfig "github.com/weisyn/wallet-adapter/internal/config/log"
	logInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
)

// Logger 实现 logInterface.Logger
type Logger struct {
	zapLogger *zap.Logger
	sugar     *zap.SugaredLogger
}

var _ logInterface.Logger = (*Logger)(nil)

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// New 根据配置创建日志记录器
func New(config *logconfig.Config) (logInterface.Logger, error) {
	level := zap.NewAtomicLevelAt(config.GetLevel())
	var cores []zapcore.Core

	if config.IsConsoleEnabled() {
		ec := encoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level))
	}

	if path := config.GetFilePath(); path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("解析日志文件路径失败: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(absPath), 0o700); err != nil {
			return nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   absPath,
			MaxSize:    config.GetMaxSizeMB(),
			MaxBackups: config.GetMaxBackups(),
			MaxAge:     config.GetMaxAgeDays(),
			Compress:   config.IsCompressionEnabled(),
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), writer, level))
	}

	var opts []zap.Option
	if config.IsCallerEnabled() {
		// 跳过本包的一层封装
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}
	return NewFromZap(zap.New(zapcore.NewTee(cores...), opts...)), nil
}

// NewFromZap 包装已有的 zap.Logger
func NewFromZap(zapLogger *zap.Logger) logInterface.Logger {
	if zapLogger == nil {
		zapLogger = zap.NewNop()
	}
	return &Logger{zapLogger: zapLogger, sugar: zapLogger.Sugar()}
}

// NewNop 丢弃所有输出
func NewNop() logInterface.Logger {
	return NewFromZap(nil)
}

func (l *Logger) Debug(msg string) { l.sugar.Debug(msg) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *Logger) Info(msg string) { l.sugar.Info(msg) }
func (l *Logger) Infof(format string, args ...interface{}) { l.sugar.Infof(format, args...) }
func (l *Logger) Warn(msg string) { l.sugar.Warn(msg) }
func (l *Logger) Warnf(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }
func (l *Logger) Error(msg string) { l.sugar.Error(msg) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// With 附加键值对字段，落单的最后一个键被丢弃
func (l *Logger) With(args ...interface{}) logInterface.Logger {
	fields := make([]zap.Field, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		fields = append(fields, zap.Any(key, args[i+1]))
	}
	return NewFromZap(l.zapLogger.With(fields...))
}

func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

// GetZapLogger 返回底层 zap.Logger
func (l *Logger) GetZapLogger() *zap.Logger {
	return l.zapLogger
}
