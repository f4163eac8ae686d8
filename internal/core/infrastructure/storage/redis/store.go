// Package redis 提供基于 Redis 的键值存储实现
//
// 多个适配器进程共享同一身份缓存时使用；键统一加前缀做命名空间隔离。
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisconfig "github.com/weisyn/wallet-adapter/internal/config/storage/redis"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	storage "github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/storage"
)

// redisClient 最小化的 Redis 操作接口（包内私有，便于测试注入）
type redisClient interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// Store Redis 版 KVStore
type Store struct {
	client    redisClient
	keyPrefix string
	logger    log.Logger
}

var _ storage.KVStore = (*Store)(nil)

// New 连接 Redis 并返回存储实例
func New(config *redisconfig.Config, logger log.Logger) (*Store, error) {
	if config.GetAddr() == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}
	client := newGoRedisClient(config)
	store, err := newStore(client, config.GetKeyPrefix(), config.GetDialTimeout(), logger)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	logger.Infof("已连接 Redis: %s db=%d", config.GetAddr(), config.GetDB())
	return store, nil
}

func newStore(client redisClient, keyPrefix string, pingTimeout time.Duration, logger log.Logger) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &Store{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger,
	}, nil
}

func (s *Store) buildKey(key string) string {
	return s.keyPrefix + key
}

// Get 读取键值
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, ok, err := s.client.Get(ctx, s.buildKey(key))
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, ok, nil
}

// Set 写入键值，不设置过期时间
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.buildKey(key), value); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete 删除键
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.buildKey(key)); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Close 关闭连接
func (s *Store) Close() error {
	return s.client.Close()
}

// goRedisClient 基于 go-redis 的 redisClient 实现
type goRedisClient struct {
	client *goredis.Client
}

var _ redisClient = (*goRedisClient)(nil)

func newGoRedisClient(config *redisconfig.Config) *goRedisClient {
	return &goRedisClient{
		client: goredis.NewClient(&goredis.Options{
			Addr:        config.GetAddr(),
			Password:    config.GetPassword(),
			DB:          config.GetDB(),
			DialTimeout: config.GetDialTimeout(),
		}),
	}
}

func (c *goRedisClient) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (c *goRedisClient) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, 0).Err()
}

func (c *goRedisClient) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *goRedisClient) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *goRedisClient) Close() error {
	return c.client.Close()
}
