package handshake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/weisyn/wallet-adapter/internal/core/ledger"
	"github.com/weisyn/wallet-adapter/internal/core/validate"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

const (
	malformedSignTransactionsPrefix = "Malformed payload when signing transactions. "
	transactionNotApprovedMessage   = "The user did not approve the transaction"
)

// ErrNoTransactions 待签名列表为空
var ErrNoTransactions = errors.New("no transactions to sign")

// transactionSignatureNeeded TRANSACTION_SIGNATURE_NEEDED 负载
type transactionSignatureNeeded struct {
	UnsignedB58Transactions []string `json:"unsignedB58Transactions"`
}

// signTransactionsFlow 交易签名流程
type signTransactionsFlow struct {
	e        *Engine
	count    int
	unsigned []string
	// requested 签名请求已发出；每次操作至多发送一次
	requested bool
}

// newSignTransactionsFlow 预先序列化全部交易，失败时不会打开通道
func newSignTransactionsFlow(e *Engine, txs []*types.Transaction) (*signTransactionsFlow, error) {
	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}
	unsigned := make([]string, len(txs))
	for i, tx := range txs {
		msg, err := e.codec.SerializeMessage(tx)
		if err != nil {
			return nil, fmt.Errorf("serialize transaction %d: %w", i, err)
		}
		unsigned[i] = ledger.EncodeB58(msg)
	}
	return &signTransactionsFlow{e: e, count: len(txs), unsigned: unsigned}, nil
}

func (f *signTransactionsFlow) kind() opKind {
	return opSignTransactions
}

func (f *signTransactionsFlow) openConfig(nonce string) popupInterface.OpenConfig {
	height, width := popupSize(f.e.config)
	return popupInterface.OpenConfig{
		Nonce:    nonce,
		URL:      f.e.config.SignTransactionURL(nonce),
		HeightPx: height,
		WidthPx:  width,
	}
}

func (f *signTransactionsFlow) handle(ctx context.Context, op *operation, msg popupInterface.Message) ([]*types.Transaction, bool, error) {
	switch msg.Event {
	case popupInterface.EventAuthLoaded:
		if f.requested {
			ignore(op, msg)
			return nil, false, nil
		}
		payload := transactionSignatureNeeded{UnsignedB58Transactions: f.unsigned}
		if err := op.send(ctx, popupInterface.EventTransactionSignatureNeeded, payload); err != nil {
			return nil, false, fmt.Errorf("send signature request: %w", err)
		}
		f.requested = true
		op.logger.Debugf("已请求签名 %d 笔交易", f.count)
		return nil, false, nil

	case popupInterface.EventTransactionSignatureNeededReply:
		signed, err := f.populate(msg.Payload)
		if err != nil {
			return nil, false, err
		}
		return signed, true, nil

	case popupInterface.EventTransactionDenied, popupInterface.EventPopupClosed:
		return nil, false, types.NewSignTransactionError(transactionNotApprovedMessage, nil)

	default:
		ignore(op, msg)
		return nil, false, nil
	}
}

// populate 解码签名应答，保持与提交时相同的顺序
func (f *signTransactionsFlow) populate(payload json.RawMessage) ([]*types.Transaction, error) {
	reply, err := validate.ParseTransactionSignatureReply(payload)
	if err != nil {
		return nil, types.NewSignTransactionError(malformedSignTransactionsPrefix+err.Error(), err)
	}
	if len(reply.SignedB58Transactions) != f.count {
		return nil, types.NewSignTransactionError(
			fmt.Sprintf("Expected %d signed transactions but received %d", f.count, len(reply.SignedB58Transactions)), nil)
	}

	signed := make([]*types.Transaction, len(reply.SignedB58Transactions))
	for i, encoded := range reply.SignedB58Transactions {
		raw, err := ledger.DecodeB58(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode signed transaction %d: %w", i, err)
		}
		tx, err := f.e.codec.Populate(raw)
		if err != nil {
			return nil, fmt.Errorf("populate signed transaction %d: %w", i, err)
		}
		signed[i] = tx
	}
	return signed, nil
}
