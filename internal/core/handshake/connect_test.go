package handshake

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/wallet-adapter/internal/core/popup"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

func TestConnectApproved(t *testing.T) {
	key := validKey(t, 7)
	h := newHarness(t, emitOnOpen(popupInterface.EventApproved, `{"solanaPublicKey":"`+key.String()+`"}`))

	result, err := h.engine.Connect(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.PublicKey)
	assert.True(t, key.Equals(*result.PublicKey))
	assert.False(t, result.FromCache)

	cached, ok := h.cached(t)
	require.True(t, ok)
	assert.Equal(t, key.String(), cached)

	opened := h.manager.Opened()
	require.Len(t, opened, 1)
	assert.Equal(t, popupInterface.OpenConfig{
		Nonce: "nonce-1",
		URL:   "https://fractal.is/wallet-adapter/approve/nonce-1",
	}, opened[0])
	assert.Equal(t, 1, h.manager.CloseCount())
	assert.Equal(t, float64(1), h.count(opConnect, outcomeSuccess))
}

func TestConnectFromCache(t *testing.T) {
	h := newHarness(t, nil)
	require.NoError(t, h.cache.Store(context.Background(), cachedKey))

	result, err := h.engine.Connect(context.Background())
	require.NoError(t, err)
	assert.True(t, result.FromCache)
	assert.Equal(t, cachedKey, result.PublicKey.String())
	assert.Empty(t, h.manager.Opened(), "cache hit must not open a channel")
	assert.Zero(t, h.manager.CloseCount())
	assert.Equal(t, float64(1), h.count(opConnect, outcomeCacheHit))
}

func TestConnectCachedValueUnparsable(t *testing.T) {
	h := newHarness(t, nil)
	require.NoError(t, h.cache.Store(context.Background(), "0OIl"))

	_, err := h.engine.Connect(context.Background())
	requireWalletError(t, err, types.WalletErrorPublicKey)
	assert.Empty(t, h.manager.Opened())
}

func TestConnectStoresRawKeyString(t *testing.T) {
	key := validKey(t, 9)
	h := newHarness(t, emitOnOpen(popupInterface.EventApproved, `{"solanaPublicKey":"test-public-key"}`),
		func(p *EngineParams) {
			p.KeyParser = func(string) (*types.PublicKey, error) { return key, nil }
		})

	result, err := h.engine.Connect(context.Background())
	require.NoError(t, err)
	assert.Same(t, key, result.PublicKey)

	cached, ok := h.cached(t)
	require.True(t, ok)
	assert.Equal(t, "test-public-key", cached)
}

func TestConnectMalformedPayload(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		received string
	}{
		{name: "missing key", payload: `{"foo":"bar"}`, received: `{"foo":"bar"}`},
		{name: "wrong type", payload: `{"solanaPublicKey": 42}`, received: `{"solanaPublicKey":42}`},
		{name: "null key", payload: `{"solanaPublicKey":null}`, received: `{"solanaPublicKey":null}`},
		{name: "not an object", payload: `"abc"`, received: `"abc"`},
		{name: "no payload", payload: "", received: "undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, emitOnOpen(popupInterface.EventApproved, tt.payload))

			_, err := h.engine.Connect(context.Background())
			we := requireWalletError(t, err, types.WalletErrorConnection)
			assert.Equal(t,
				"Malformed payload when setting up connection. Expected { solanaPublicKey: string } but received "+tt.received,
				we.Message)
			assert.Equal(t, 1, h.manager.CloseCount())

			_, ok := h.cached(t)
			assert.False(t, ok)
		})
	}
}

func TestConnectMalformedKeyIsPublicKeyError(t *testing.T) {
	h := newHarness(t, emitOnOpen(popupInterface.EventApproved, `{"solanaPublicKey":"not a key"}`))

	_, err := h.engine.Connect(context.Background())
	we := requireWalletError(t, err, types.WalletErrorPublicKey)
	assert.False(t, errors.Is(err, types.ErrWalletConnection))
	assert.Contains(t, we.Message, "invalid public key input")
	require.Error(t, we.Cause)
	assert.Equal(t, 1, h.manager.CloseCount())

	_, ok := h.cached(t)
	assert.False(t, ok)
}

func TestConnectDeniedAndClosedAreEquivalent(t *testing.T) {
	handlers := map[string]popup.PopupHandler{
		"denied": emitOnOpen(popupInterface.EventDenied, ""),
		"closed": emitOnOpen(popupInterface.EventPopupClosed, ""),
		"stream ended": func(_ popupInterface.OpenConfig, remote *popup.PipeConn) {
			_ = remote.Close()
		},
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, handler)

			_, err := h.engine.Connect(context.Background())
			we := requireWalletError(t, err, types.WalletErrorConnection)
			assert.Equal(t, "The user denied the connection.", we.Message)
			assert.ErrorIs(t, err, types.ErrWalletConnection)
			assert.Equal(t, 1, h.manager.CloseCount())
		})
	}
}

func TestConnectIgnoresUnrelatedEvents(t *testing.T) {
	key := validKey(t, 3)
	h := newHarness(t, func(_ popupInterface.OpenConfig, remote *popup.PipeConn) {
		emit(remote, popupInterface.EventAuthLoaded, "")
		emit(remote, popupInterface.EventTransactionDenied, "")
		emit(remote, popupInterface.EventApproved, `{"solanaPublicKey":"`+key.String()+`"}`)
	})

	result, err := h.engine.Connect(context.Background())
	require.NoError(t, err)
	assert.True(t, key.Equals(*result.PublicKey))
}

func TestConnectRetryUsesFreshNonce(t *testing.T) {
	calls := 0
	h := newHarness(t, emitOnOpen(popupInterface.EventDenied, ""), func(p *EngineParams) {
		p.Nonces = nonceFunc(func() string {
			calls++
			if calls == 1 {
				return "first"
			}
			return "second"
		})
	})

	_, err := h.engine.Connect(context.Background())
	require.Error(t, err)
	_, err = h.engine.Connect(context.Background())
	require.Error(t, err)

	opened := h.manager.Opened()
	require.Len(t, opened, 2)
	assert.Equal(t, "first", opened[0].Nonce)
	assert.Equal(t, "second", opened[1].Nonce)
	assert.Equal(t, 2, h.manager.CloseCount())
}

type nonceFunc func() string

func (f nonceFunc) New() string { return f() }
