package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/weisyn/wallet-adapter/client/adapter"
	"github.com/weisyn/wallet-adapter/configs"
	"github.com/weisyn/wallet-adapter/internal/app"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	ConfigFile string        // 配置文件路径
	Env        string        // 内置环境配置
	Output     string        // 输出格式
	Timeout    time.Duration // 单条命令超时
}

var (
	globalFlags GlobalFlags
	walletApp   *app.App
	printer     *Printer
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "wallet-adapter",
	Short: "弹窗钱包适配器命令行客户端",
	Long: `wallet-adapter - 通过授权方弹窗页面连接钱包并签名

连接与签名请求会生成一个授权页面地址，请在浏览器中打开并确认；
命令行通过授权方的中继通道等待结果。公钥在本地缓存，
再次连接时无需重新审批，disconnect 会清除缓存。`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		printer = NewPrinter(globalFlags.Output, os.Stdout)
		if cmd.Annotations[annotationNoApp] == "true" {
			return nil
		}

		opts := []app.Option{app.WithLauncher(newConsoleLauncher(printer))}
		switch {
		case globalFlags.ConfigFile != "":
			opts = append(opts, app.WithConfigFile(globalFlags.ConfigFile))
		case globalFlags.Env != "":
			embedded := configs.Get(globalFlags.Env)
			if embedded == nil {
				return fmt.Errorf("未知环境: %s (development, production)", globalFlags.Env)
			}
			opts = append(opts, app.WithEmbeddedConfig(embedded))
		}

		var err error
		walletApp, err = app.Start(cmd.Context(), opts...)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if walletApp == nil {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return walletApp.Stop(ctx)
	},
}

const annotationNoApp = "no-app"

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if printer == nil {
			printer = NewPrinter(globalFlags.Output, os.Stdout)
		}
		printer.PrintError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigFile, "config", "c", "", "配置文件路径 (JSON)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Env, "env", "", "使用内置环境配置: development|production")
	rootCmd.PersistentFlags().StringVarP(&globalFlags.Output, "output", "o", "text", "输出格式: text|json")
	rootCmd.PersistentFlags().DurationVar(&globalFlags.Timeout, "timeout", 0, "命令超时 (如 5m)，0 表示一直等待授权方")

	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(disconnectCmd)
	rootCmd.AddCommand(pubkeyCmd)
	rootCmd.AddCommand(signMessageCmd)
	rootCmd.AddCommand(signTxCmd)
	rootCmd.AddCommand(versionCmd)
}

// commandContext 返回受 --timeout 约束的上下文
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if globalFlags.Timeout > 0 {
		return context.WithTimeout(ctx, globalFlags.Timeout)
	}
	return context.WithCancel(ctx)
}

// wallet 获取已启动的适配器
func wallet() *adapter.Adapter {
	return walletApp.Adapter()
}
