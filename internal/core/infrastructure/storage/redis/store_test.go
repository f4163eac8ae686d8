package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisconfig "github.com/weisyn/wallet-adapter/internal/config/storage/redis"
	"github.com/weisyn/wallet-adapter/internal/core/infrastructure/log"
)

// mockRedisClient mock Redis 客户端实现
type mockRedisClient struct {
	mu      sync.Mutex
	data    map[string][]byte
	pingErr error
	closed  bool
}

func newMockRedisClient() *mockRedisClient {
	return &mockRedisClient{data: make(map[string][]byte)}
}

func (m *mockRedisClient) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, false, errors.New("client closed")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mockRedisClient) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errors.New("client closed")
	}
	m.data[key] = value
	return nil
}

func (m *mockRedisClient) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *mockRedisClient) Ping(ctx context.Context) error {
	return m.pingErr
}

func (m *mockRedisClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func TestStorePrefixesKeys(t *testing.T) {
	ctx := context.Background()
	client := newMockRedisClient()
	store, err := newStore(client, "wa:", time.Second, log.NewNop())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "RdxqNYxF", []byte("pk")))
	assert.Equal(t, []byte("pk"), client.data["wa:RdxqNYxF"])

	value, ok, err := store.Get(ctx, "RdxqNYxF")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("pk"), value)

	require.NoError(t, store.Delete(ctx, "RdxqNYxF"))
	_, ok, err = store.Get(ctx, "RdxqNYxF")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewStorePingFailure(t *testing.T) {
	client := newMockRedisClient()
	client.pingErr = errors.New("connection refused")

	_, err := newStore(client, "", time.Second, log.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewStoreNilClient(t *testing.T) {
	_, err := newStore(nil, "", time.Second, log.NewNop())
	assert.Error(t, err)
}

func TestNewRequiresAddr(t *testing.T) {
	_, err := New(redisconfig.NewFromOptions(&redisconfig.RedisOptions{}), log.NewNop())
	assert.Error(t, err)
}

func TestStoreClosedClient(t *testing.T) {
	ctx := context.Background()
	client := newMockRedisClient()
	store, err := newStore(client, "", time.Second, log.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, _, err = store.Get(ctx, "k")
	assert.Error(t, err)
}
