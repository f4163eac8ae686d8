package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weisyn/wallet-adapter/internal/core/ledger"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

var signTxFlags struct {
	hex bool
}

var signMessageCmd = &cobra.Command{
	Use:   "sign-message <message>",
	Short: "请求钱包对 UTF-8 文本签名",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		w := wallet()
		if err := w.Connect(ctx); err != nil {
			return err
		}
		sig, err := w.SignMessage(ctx, []byte(args[0]))
		if err != nil {
			return err
		}
		return printer.PrintResult("消息已签名", [][2]string{
			{"publicKey", w.PublicKey().String()},
			{"signature", ledger.EncodeB58(sig)},
			{"signatureHex", hexString(sig)},
		})
	},
}

var signTxCmd = &cobra.Command{
	Use:   "sign-tx <message>...",
	Short: "请求钱包签名一笔或多笔交易",
	Long: `请求钱包签名一笔或多笔交易

每个参数是一笔交易的消息字节，默认按 Base58 解析，--hex 时按十六进制解析。
输出为已签名交易的 Base58 编码，顺序与输入一致。`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		txs := make([]*types.Transaction, 0, len(args))
		for i, arg := range args {
			msg, err := decodeMessageArg(arg, signTxFlags.hex)
			if err != nil {
				return fmt.Errorf("第 %d 笔交易: %w", i, err)
			}
			txs = append(txs, &types.Transaction{Message: msg})
		}

		w := wallet()
		if err := w.Connect(ctx); err != nil {
			return err
		}
		signed, err := w.SignAllTransactions(ctx, txs)
		if err != nil {
			return err
		}

		codec := ledger.NewCodec()
		out := make([]string, 0, len(signed))
		for _, tx := range signed {
			encoded, err := codec.Encode(tx)
			if err != nil {
				return fmt.Errorf("编码已签名交易失败: %w", err)
			}
			out = append(out, ledger.EncodeB58(encoded))
		}
		return printer.PrintList(fmt.Sprintf("已签名 %d 笔交易", len(out)), "signedTransactions", out)
	},
}

func init() {
	signTxCmd.Flags().BoolVar(&signTxFlags.hex, "hex", false, "交易消息按十六进制解析")
}

func decodeMessageArg(arg string, isHex bool) ([]byte, error) {
	if isHex {
		b, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
		if err != nil {
			return nil, fmt.Errorf("非法十六进制: %w", err)
		}
		if len(b) == 0 {
			return nil, fmt.Errorf("交易消息为空")
		}
		return b, nil
	}
	return ledger.DecodeB58(arg)
}

func hexString(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
