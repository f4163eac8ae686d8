package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterconfig "github.com/weisyn/wallet-adapter/internal/config/adapter"
	memoryconfig "github.com/weisyn/wallet-adapter/internal/config/storage/memory"
	"github.com/weisyn/wallet-adapter/internal/core/handshake"
	identityimpl "github.com/weisyn/wallet-adapter/internal/core/identity"
	eventimpl "github.com/weisyn/wallet-adapter/internal/core/infrastructure/event"
	logimpl "github.com/weisyn/wallet-adapter/internal/core/infrastructure/log"
	"github.com/weisyn/wallet-adapter/internal/core/infrastructure/storage/memory"
	"github.com/weisyn/wallet-adapter/internal/core/ledger"
	"github.com/weisyn/wallet-adapter/internal/core/nonce"
	"github.com/weisyn/wallet-adapter/internal/core/popup"
	"github.com/weisyn/wallet-adapter/pkg/constants/events"
	handshakeInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/handshake"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

const testKey = "D3FXGeV4Vas5FFNaQyoTTWog2oUQai1CH6QTvqoytpvf"

// fakeEngine 可编排的握手引擎
type fakeEngine struct {
	connect func(ctx context.Context) (*handshakeInterface.ConnectResult, error)
	signTxs func(ctx context.Context, txs []*types.Transaction) ([]*types.Transaction, error)
	signMsg func(ctx context.Context, message []byte) ([]byte, error)
	calls   int
}

func (f *fakeEngine) Connect(ctx context.Context) (*handshakeInterface.ConnectResult, error) {
	f.calls++
	return f.connect(ctx)
}

func (f *fakeEngine) SignTransactions(ctx context.Context, txs []*types.Transaction) ([]*types.Transaction, error) {
	f.calls++
	return f.signTxs(ctx, txs)
}

func (f *fakeEngine) SignMessage(ctx context.Context, message []byte) ([]byte, error) {
	f.calls++
	return f.signMsg(ctx, message)
}

// recorder 记录事件总线上的生命周期事件
type recorder struct {
	mu           sync.Mutex
	connected    []types.WalletConnectedEvent
	disconnected int
	errors       []types.WalletErrorEvent
}

func newRecorder(t *testing.T) (*eventimpl.EventBus, *recorder) {
	t.Helper()
	bus := eventimpl.New(nil)
	r := &recorder{}
	require.NoError(t, bus.Subscribe(events.EventTypeWalletConnect, func(e types.WalletConnectedEvent) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.connected = append(r.connected, e)
	}))
	require.NoError(t, bus.Subscribe(events.EventTypeWalletDisconnect, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.disconnected++
	}))
	require.NoError(t, bus.Subscribe(events.EventTypeWalletError, func(e types.WalletErrorEvent) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.errors = append(r.errors, e)
	}))
	return bus, r
}

// stack 使用真实引擎与进程内弹窗组装的适配器
type stack struct {
	adapter *Adapter
	manager *popup.MemoryManager
	cache   *identityimpl.Cache
	events  *recorder
}

func newStack(t *testing.T, handler popup.PopupHandler) *stack {
	t.Helper()
	logger := logimpl.NewNop()
	store, err := memory.New(memoryconfig.New(nil), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	manager := popup.NewMemoryManager(handler, logger)
	cache := identityimpl.New(store, "", logger)
	engine, err := handshake.NewEngine(handshake.EngineParams{
		Channels: manager,
		Nonces:   nonce.NewSequence("n1", "n2", "n3"),
		Identity: cache,
		Codec:    ledger.NewCodec(),
		Logger:   logger,
	})
	require.NoError(t, err)

	bus, rec := newRecorder(t)
	return &stack{
		adapter: New(Params{
			Engine:   engine,
			Channels: manager,
			Identity: cache,
			Logger:   logger,
			Events:   bus,
		}),
		manager: manager,
		cache:   cache,
		events:  rec,
	}
}

// walletPopup 批准连接并对所有交易签名
func walletPopup(cfg popupInterface.OpenConfig, remote *popup.PipeConn) {
	send := func(event popupInterface.EventType, payload interface{}) {
		msg, _ := popupInterface.NewMessage(event, payload)
		_ = remote.Send(context.Background(), msg)
	}

	if strings.Contains(cfg.URL, "/wallet-adapter/approve/") {
		send(popupInterface.EventApproved, map[string]string{"solanaPublicKey": testKey})
		return
	}

	send(popupInterface.EventAuthLoaded, nil)
	msg, ok := <-remote.Messages()
	if !ok {
		return
	}
	switch msg.Event {
	case popupInterface.EventTransactionSignatureNeeded:
		var req struct {
			UnsignedB58Transactions []string `json:"unsignedB58Transactions"`
		}
		_ = json.Unmarshal(msg.Payload, &req)
		signed := make([]string, len(req.UnsignedB58Transactions))
		for i, unsigned := range req.UnsignedB58Transactions {
			message, _ := ledger.DecodeB58(unsigned)
			encoded, _ := ledger.NewCodec().Encode(&types.Transaction{Message: message, Signatures: [][]byte{{byte(i)}}})
			signed[i] = ledger.EncodeB58(encoded)
		}
		send(popupInterface.EventTransactionSignatureNeededReply, map[string][]string{"signedB58Transactions": signed})
	case popupInterface.EventMessageSignatureNeeded:
		send(popupInterface.EventMessageSignatureNeededReply, map[string]string{"decodedSignature": "9,8,7"})
	}
}

func requireKind(t *testing.T, err error, kind types.WalletErrorKind) *types.WalletError {
	t.Helper()
	var we *types.WalletError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, kind, we.Kind)
	return we
}

func TestMetadata(t *testing.T) {
	a := New(Params{Engine: &fakeEngine{}})
	assert.Equal(t, "Fractal", a.Name())
	assert.Equal(t, "https://fractal.is", a.URL())
	assert.Nil(t, a.PublicKey())
	assert.False(t, a.Connected())
	assert.False(t, a.Connecting())
}

func TestSigningRequiresConnection(t *testing.T) {
	s := newStack(t, walletPopup)
	ctx := context.Background()

	_, err := s.adapter.SignTransaction(ctx, &types.Transaction{Message: []byte("m")})
	we := requireKind(t, err, types.WalletErrorNotConnected)
	assert.Equal(t, "`publicKey` is null. Did you forget to call `.connect()`?", we.Message)

	_, err = s.adapter.SignAllTransactions(ctx, []*types.Transaction{{Message: []byte("m")}})
	requireKind(t, err, types.WalletErrorNotConnected)

	_, err = s.adapter.SignMessage(ctx, []byte("hello"))
	assert.ErrorIs(t, err, types.ErrWalletNotConnected)

	assert.Empty(t, s.manager.Opened(), "readiness failure must not touch the channel manager")
	assert.Zero(t, s.manager.CloseCount())

	s.events.mu.Lock()
	defer s.events.mu.Unlock()
	require.Len(t, s.events.errors, 3)
	assert.Equal(t, OperationSignTransaction, s.events.errors[0].Operation)
	assert.Equal(t, types.WalletErrorNotConnected, s.events.errors[0].Kind)
}

func TestConnectSignDisconnect(t *testing.T) {
	s := newStack(t, walletPopup)
	ctx := context.Background()

	require.NoError(t, s.adapter.Connect(ctx))
	require.True(t, s.adapter.Connected())
	assert.Equal(t, testKey, s.adapter.PublicKey().String())

	cached, ok, err := s.cache.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testKey, cached)

	txs := []*types.Transaction{{Message: []byte("first")}, {Message: []byte("second")}}
	signed, err := s.adapter.SignAllTransactions(ctx, txs)
	require.NoError(t, err)
	require.Len(t, signed, 2)
	assert.Equal(t, []byte("first"), signed[0].Message)
	assert.Equal(t, [][]byte{{0}}, signed[0].Signatures)
	assert.Equal(t, []byte("second"), signed[1].Message)
	assert.Equal(t, [][]byte{{1}}, signed[1].Signatures)

	signature, err := s.adapter.SignMessage(ctx, []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8, 7}, signature)

	opened := s.manager.Opened()
	require.Len(t, opened, 3)
	assert.Equal(t, "https://fractal.is/wallet-adapter/approve/n1", opened[0].URL)
	assert.Equal(t, "https://fractal.is/wallet-adapter/sign/n2", opened[1].URL)
	assert.Equal(t, "https://fractal.is/wallet-adapter/sign/message/n3", opened[2].URL)
	assert.Equal(t, 3, s.manager.CloseCount())

	require.NoError(t, s.adapter.Disconnect(ctx))
	assert.Nil(t, s.adapter.PublicKey())
	assert.Equal(t, 1, s.manager.TearDownCount())
	_, ok, err = s.cache.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.adapter.SignTransaction(ctx, &types.Transaction{Message: []byte("m")})
	requireKind(t, err, types.WalletErrorNotConnected)

	s.events.mu.Lock()
	defer s.events.mu.Unlock()
	require.Len(t, s.events.connected, 1)
	assert.Equal(t, types.WalletConnectedEvent{PublicKey: testKey, FromCache: false}, s.events.connected[0])
	assert.Equal(t, 1, s.events.disconnected)
}

func TestConnectFromCacheOpensNothing(t *testing.T) {
	s := newStack(t, walletPopup)
	ctx := context.Background()
	require.NoError(t, s.cache.Store(ctx, testKey))

	require.NoError(t, s.adapter.Connect(ctx))
	assert.Equal(t, testKey, s.adapter.PublicKey().String())
	assert.Empty(t, s.manager.Opened())

	s.events.mu.Lock()
	defer s.events.mu.Unlock()
	require.Len(t, s.events.connected, 1)
	assert.True(t, s.events.connected[0].FromCache)
}

func TestConnectFailureLeavesWalletDisconnected(t *testing.T) {
	s := newStack(t, func(_ popupInterface.OpenConfig, remote *popup.PipeConn) {
		_ = remote.Send(context.Background(), popupInterface.Message{Event: popupInterface.EventDenied})
	})

	err := s.adapter.Connect(context.Background())
	we := requireKind(t, err, types.WalletErrorConnection)
	assert.Equal(t, "The user denied the connection.", we.Message)
	assert.False(t, s.adapter.Connected())
	assert.False(t, s.adapter.Connecting())

	s.events.mu.Lock()
	defer s.events.mu.Unlock()
	require.Len(t, s.events.errors, 1)
	assert.Equal(t, types.WalletErrorEvent{
		Operation: OperationConnect,
		Kind:      types.WalletErrorConnection,
		Message:   "The user denied the connection.",
	}, s.events.errors[0])
}

func TestUntypedEngineErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	engine := &fakeEngine{
		connect: func(context.Context) (*handshakeInterface.ConnectResult, error) {
			pk, err := types.ParsePublicKey(testKey)
			return &handshakeInterface.ConnectResult{PublicKey: pk}, err
		},
		signTxs: func(context.Context, []*types.Transaction) ([]*types.Transaction, error) { return nil, boom },
		signMsg: func(context.Context, []byte) ([]byte, error) { return nil, boom },
	}
	a := New(Params{Engine: engine, Config: adapterconfig.New(nil)})
	ctx := context.Background()
	require.NoError(t, a.Connect(ctx))

	_, err := a.SignTransaction(ctx, &types.Transaction{Message: []byte("m")})
	we := requireKind(t, err, types.WalletErrorSignTransaction)
	assert.Equal(t, "boom", we.Message)
	assert.ErrorIs(t, err, boom)

	_, err = a.SignMessage(ctx, []byte("m"))
	we = requireKind(t, err, types.WalletErrorSignMessage)
	assert.ErrorIs(t, err, boom)

	empty := &fakeEngine{
		connect: engine.connect,
		signTxs: func(context.Context, []*types.Transaction) ([]*types.Transaction, error) { return nil, errors.New("") },
	}
	a = New(Params{Engine: empty})
	require.NoError(t, a.Connect(ctx))
	_, err = a.SignAllTransactions(ctx, nil)
	we = requireKind(t, err, types.WalletErrorSignTransaction)
	assert.Equal(t, types.UnknownErrorMessage, we.Message)
}

func TestConnectingDuringConnect(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	engine := &fakeEngine{
		connect: func(context.Context) (*handshakeInterface.ConnectResult, error) {
			close(entered)
			<-release
			return nil, types.NewConnectionError("The user denied the connection.", nil)
		},
	}
	a := New(Params{Engine: engine})

	done := make(chan error, 1)
	go func() { done <- a.Connect(context.Background()) }()

	<-entered
	assert.True(t, a.Connecting())
	close(release)

	select {
	case err := <-done:
		requireKind(t, err, types.WalletErrorConnection)
	case <-time.After(2 * time.Second):
		t.Fatal("connect did not return")
	}
	assert.False(t, a.Connecting())
}
