package handshake

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/wallet-adapter/internal/core/ledger"
	"github.com/weisyn/wallet-adapter/internal/core/popup"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

// signingPopup 收到签名请求后逐笔附上签名并按原顺序返回
func signingPopup(requests chan<- []string) popup.PopupHandler {
	return func(_ popupInterface.OpenConfig, remote *popup.PipeConn) {
		emit(remote, popupInterface.EventAuthLoaded, "")
		msg, ok := expect(remote, 2*time.Second)
		if !ok || msg.Event != popupInterface.EventTransactionSignatureNeeded {
			return
		}
		var req transactionSignatureNeeded
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return
		}
		if requests != nil {
			requests <- req.UnsignedB58Transactions
		}

		codec := ledger.NewCodec()
		signed := make([]string, len(req.UnsignedB58Transactions))
		for i, unsigned := range req.UnsignedB58Transactions {
			message, _ := ledger.DecodeB58(unsigned)
			encoded, _ := codec.Encode(&types.Transaction{
				Message:    message,
				Signatures: [][]byte{[]byte(fmt.Sprintf("sig-%d", i))},
			})
			signed[i] = ledger.EncodeB58(encoded)
		}
		reply, _ := json.Marshal(map[string][]string{"signedB58Transactions": signed})
		emit(remote, popupInterface.EventTransactionSignatureNeededReply, string(reply))
	}
}

func makeTransactions(n int) []*types.Transaction {
	txs := make([]*types.Transaction, n)
	for i := range txs {
		txs[i] = &types.Transaction{Message: []byte(fmt.Sprintf("transfer #%d", i))}
	}
	return txs
}

func TestSignTransactionsPreservesOrder(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		t.Run(fmt.Sprintf("%d transactions", n), func(t *testing.T) {
			requests := make(chan []string, 1)
			h := newHarness(t, signingPopup(requests))
			txs := makeTransactions(n)

			signed, err := h.engine.SignTransactions(context.Background(), txs)
			require.NoError(t, err)
			require.Len(t, signed, n)
			for i := range txs {
				assert.Equal(t, txs[i].Message, signed[i].Message)
				assert.Equal(t, [][]byte{[]byte(fmt.Sprintf("sig-%d", i))}, signed[i].Signatures)
			}

			unsigned := <-requests
			require.Len(t, unsigned, n)
			for i := range txs {
				assert.Equal(t, ledger.EncodeB58(txs[i].Message), unsigned[i])
			}
			assert.Equal(t, 1, h.manager.CloseCount())
		})
	}
}

func TestSignTransactionsOpenConfig(t *testing.T) {
	h := newHarness(t, signingPopup(nil))

	_, err := h.engine.SignTransactions(context.Background(), makeTransactions(1))
	require.NoError(t, err)

	opened := h.manager.Opened()
	require.Len(t, opened, 1)
	assert.Equal(t, popupInterface.OpenConfig{
		Nonce:    "nonce-1",
		URL:      "https://fractal.is/wallet-adapter/sign/nonce-1",
		HeightPx: 864,
		WidthPx:  850,
	}, opened[0])
}

func TestSignTransactionsRequestSentOnce(t *testing.T) {
	frames := make(chan int, 1)
	h := newHarness(t, func(_ popupInterface.OpenConfig, remote *popup.PipeConn) {
		emit(remote, popupInterface.EventAuthLoaded, "")
		emit(remote, popupInterface.EventAuthLoaded, "")
		n := 0
		for {
			msg, ok := expect(remote, 100*time.Millisecond)
			if !ok {
				break
			}
			if msg.Event == popupInterface.EventTransactionSignatureNeeded {
				n++
			}
		}
		frames <- n
		emit(remote, popupInterface.EventTransactionDenied, "")
	})

	_, err := h.engine.SignTransactions(context.Background(), makeTransactions(2))
	requireWalletError(t, err, types.WalletErrorSignTransaction)
	assert.Equal(t, 1, <-frames)
}

func TestSignTransactionsMalformedReply(t *testing.T) {
	h := newHarness(t, emitOnOpen(popupInterface.EventTransactionSignatureNeededReply, `{"signedB58Transactions":"abc"}`))

	_, err := h.engine.SignTransactions(context.Background(), makeTransactions(1))
	we := requireWalletError(t, err, types.WalletErrorSignTransaction)
	assert.Equal(t,
		`Malformed payload when signing transactions. Expected { signedB58Transactions: string[] } but received {"signedB58Transactions":"abc"}`,
		we.Message)
	assert.Equal(t, 1, h.manager.CloseCount())
}

func TestSignTransactionsCountMismatch(t *testing.T) {
	encoded, err := ledger.NewCodec().Encode(&types.Transaction{Message: []byte("m")})
	require.NoError(t, err)
	payload := `{"signedB58Transactions":["` + ledger.EncodeB58(encoded) + `"]}`
	h := newHarness(t, emitOnOpen(popupInterface.EventTransactionSignatureNeededReply, payload))

	_, err = h.engine.SignTransactions(context.Background(), makeTransactions(2))
	we := requireWalletError(t, err, types.WalletErrorSignTransaction)
	assert.Equal(t, "Expected 2 signed transactions but received 1", we.Message)
}

func TestSignTransactionsUndecodableReplyIsWrapped(t *testing.T) {
	h := newHarness(t, emitOnOpen(popupInterface.EventTransactionSignatureNeededReply, `{"signedB58Transactions":["0OIl"]}`))

	_, err := h.engine.SignTransactions(context.Background(), makeTransactions(1))
	we := requireWalletError(t, err, types.WalletErrorSignTransaction)
	assert.ErrorIs(t, we, ledger.ErrInvalidBase58)
	assert.True(t, strings.HasPrefix(we.Message, "decode signed transaction 0"))
}

func TestSignTransactionsDeniedOrClosed(t *testing.T) {
	for _, event := range []popupInterface.EventType{popupInterface.EventTransactionDenied, popupInterface.EventPopupClosed} {
		t.Run(string(event), func(t *testing.T) {
			h := newHarness(t, emitOnOpen(event, ""))

			_, err := h.engine.SignTransactions(context.Background(), makeTransactions(1))
			we := requireWalletError(t, err, types.WalletErrorSignTransaction)
			assert.Equal(t, "The user did not approve the transaction", we.Message)
			assert.Equal(t, 1, h.manager.CloseCount())
		})
	}
}

func TestSignTransactionsRejectsInvalidInputBeforeOpening(t *testing.T) {
	h := newHarness(t, nil)

	_, err := h.engine.SignTransactions(context.Background(), nil)
	we := requireWalletError(t, err, types.WalletErrorSignTransaction)
	assert.ErrorIs(t, we, ErrNoTransactions)

	_, err = h.engine.SignTransactions(context.Background(), []*types.Transaction{{}})
	we = requireWalletError(t, err, types.WalletErrorSignTransaction)
	assert.ErrorIs(t, we, ledger.ErrEmptyMessage)

	assert.Empty(t, h.manager.Opened())
}
