package log

const (
	defaultLevel    = "info"
	defaultFilePath = "./data/logs/wallet-adapter.log"

	// 命令行结果由 pterm 输出，日志默认只写文件
	defaultToConsole = false

	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 14
	defaultCompress   = true

	defaultCaller = true
)
