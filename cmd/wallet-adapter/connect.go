package main

import (
	"github.com/spf13/cobra"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "连接钱包（已缓存公钥时不弹出授权）",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		w := wallet()
		if err := w.Connect(ctx); err != nil {
			return err
		}
		return printer.PrintResult("钱包已连接", [][2]string{
			{"wallet", w.Name()},
			{"url", w.URL()},
			{"publicKey", w.PublicKey().String()},
		})
	},
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "断开连接并清除本地缓存的公钥",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := wallet().Disconnect(ctx); err != nil {
			return err
		}
		return printer.PrintResult("已断开连接", nil)
	},
}

var pubkeyCmd = &cobra.Command{
	Use:   "pubkey",
	Short: "显示当前钱包公钥（未缓存时发起连接）",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		w := wallet()
		if err := w.Connect(ctx); err != nil {
			return err
		}
		pk := w.PublicKey()
		return printer.PrintResult("当前公钥", [][2]string{
			{"publicKey", pk.String()},
			{"hex", hexString(pk.Bytes())},
		})
	},
}
