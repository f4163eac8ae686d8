// Package file 提供基于文件系统的键值存储实现
//
// 每个键对应根目录下的一个文件，文件名为键的 SHA-256 十六进制摘要。
// 写入先落临时文件再原子改名，读到的要么是旧值要么是新值。
package file

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	fileconfig "github.com/weisyn/wallet-adapter/internal/config/storage/file"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/storage"
)

var (
	// ErrStoreClosed 存储已关闭
	ErrStoreClosed = errors.New("file store is closed")
	// ErrValueTooLarge 值超过配置的大小上限
	ErrValueTooLarge = errors.New("value exceeds max_value_size")
)

const valueSuffix = ".kv"

// Store 基于文件系统的 KVStore 实现
type Store struct {
	config   *fileconfig.Config
	logger   log.Logger
	rootPath string

	mu     sync.RWMutex
	closed bool
}

var _ storage.KVStore = (*Store)(nil)

// New 创建文件存储，根目录不存在时自动创建
func New(config *fileconfig.Config, logger log.Logger) (*Store, error) {
	rootPath := config.GetRootPath()
	if rootPath == "" {
		return nil, fmt.Errorf("file store root path is not configured")
	}
	// 统一为绝对路径，避免工作目录变化导致读写不同位置
	if abs, err := filepath.Abs(rootPath); err == nil {
		rootPath = abs
	}
	if err := os.MkdirAll(rootPath, os.FileMode(config.GetDirectoryPermissions())); err != nil {
		return nil, fmt.Errorf("无法创建文件存储根目录 %s: %w", rootPath, err)
	}

	logger.Infof("文件存储初始化成功，根目录: %s", rootPath)
	return &Store{
		config:   config,
		logger:   logger,
		rootPath: rootPath,
	}, nil
}

// RootPath 返回存储根目录
func (s *Store) RootPath() string {
	return s.rootPath
}

// pathFor 键经摘要映射为文件名，任意键都不会逃出根目录
func (s *Store) pathFor(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(s.rootPath, hex.EncodeToString(sum[:])+valueSuffix)
}

// Get 读取键值
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, false, ErrStoreClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	value, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		s.logger.Warnf("读取键[%s]失败: %v", key, err)
		return nil, false, fmt.Errorf("read key %s: %w", key, err)
	}
	return value, true, nil
}

// Set 写入键值，先写临时文件再改名
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if limit := s.config.GetMaxValueSize(); limit > 0 && int64(len(value)) > limit {
		return fmt.Errorf("%w: %d > %d", ErrValueTooLarge, len(value), limit)
	}

	tmp, err := os.CreateTemp(s.rootPath, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}

	if _, err := tmp.Write(value); err != nil {
		return fail(fmt.Errorf("write key %s: %w", key, err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("sync key %s: %w", key, err))
	}
	if err := tmp.Chmod(os.FileMode(s.config.GetFilePermissions())); err != nil {
		return fail(fmt.Errorf("chmod key %s: %w", key, err))
	}
	if err := tmp.Close(); err != nil {
		return fail(fmt.Errorf("close temp file: %w", err))
	}
	if err := os.Rename(tmpName, s.pathFor(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("commit key %s: %w", key, err)
	}
	return nil
}

// Delete 删除键；键不存在不视为错误
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.pathFor(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete key %s: %w", key, err)
	}
	return nil
}

// Close 关闭存储；文件保留在磁盘上
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.logger.Debug("关闭文件存储")
	return nil
}
