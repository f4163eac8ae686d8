package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/storage"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

func TestProviderDefaults(t *testing.T) {
	provider := NewProvider(nil)

	adapter := provider.GetAdapter()
	assert.Equal(t, "https://fractal.is", adapter.AuthorityOrigin)
	assert.Equal(t, 700, adapter.MinPopupHeightPx)
	assert.Equal(t, 850, adapter.MaxPopupWidthPx)
	assert.Equal(t, time.Duration(0), adapter.OperationTimeout, "未配置时不限时")

	identity := provider.GetIdentity()
	assert.Equal(t, storage.BackendBadger, identity.Backend)
	assert.Equal(t, "RdxqNYxF", identity.StorageKey)

	assert.True(t, provider.GetEvent().Enabled)
	assert.Equal(t, "info", provider.GetLog().Level)
	assert.Nil(t, provider.GetAppConfig())
}

func TestProviderAppliesUserConfig(t *testing.T) {
	cfg := &types.AppConfig{
		Adapter: &types.UserAdapterConfig{
			AuthorityOrigin:  types.StringPtr("http://localhost:3000/"),
			OperationTimeout: types.StringPtr("2m"),
			ViewportHeightPx: types.IntPtr(500),
		},
		Storage: &types.UserStorageConfig{
			Backend:   types.StringPtr("Redis"),
			DataRoot:  types.StringPtr("/tmp/wa"),
			RedisAddr: types.StringPtr("redis:6379"),
			KeyPrefix: types.StringPtr("test:"),
		},
		Log:   &types.UserLogConfig{Level: types.StringPtr("debug")},
		Event: &types.UserEventConfig{Enabled: types.BoolPtr(false)},
	}
	provider := NewProvider(cfg)

	adapter := provider.GetAdapter()
	assert.Equal(t, "http://localhost:3000", adapter.AuthorityOrigin, "尾部斜杠应被去除")
	assert.Equal(t, 2*time.Minute, adapter.OperationTimeout)
	assert.Equal(t, 500, adapter.ViewportHeightPx)

	assert.Equal(t, storage.BackendRedis, provider.GetIdentity().Backend)
	assert.Equal(t, filepath.Join("/tmp/wa", "badger"), provider.GetBadger().Path)
	assert.Equal(t, filepath.Join("/tmp/wa", "files"), provider.GetFile().RootPath)
	assert.Equal(t, "redis:6379", provider.GetRedis().Addr)
	assert.Equal(t, "test:", provider.GetRedis().KeyPrefix)
	assert.Equal(t, "debug", provider.GetLog().Level)
	assert.False(t, provider.GetEvent().Enabled)
}

func TestValidateAppConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *types.AppConfig
		wantErr string
	}{
		{name: "空配置", cfg: &types.AppConfig{}},
		{
			name:    "非法审批源协议",
			cfg:     &types.AppConfig{Adapter: &types.UserAdapterConfig{AuthorityOrigin: types.StringPtr("ftp://fractal.is")}},
			wantErr: "adapter.authority_origin",
		},
		{
			name:    "非法中继地址",
			cfg:     &types.AppConfig{Adapter: &types.UserAdapterConfig{RelayURL: types.StringPtr("https://relay")}},
			wantErr: "adapter.relay_url",
		},
		{
			name:    "非法超时",
			cfg:     &types.AppConfig{Adapter: &types.UserAdapterConfig{OperationTimeout: types.StringPtr("soon")}},
			wantErr: "adapter.operation_timeout",
		},
		{
			name:    "非正尺寸",
			cfg:     &types.AppConfig{Adapter: &types.UserAdapterConfig{MaxPopupWidthPx: types.IntPtr(0)}},
			wantErr: "adapter.max_popup_width_px",
		},
		{
			name:    "未知存储后端",
			cfg:     &types.AppConfig{Storage: &types.UserStorageConfig{Backend: types.StringPtr("sqlite")}},
			wantErr: "storage.backend",
		},
		{
			name: "文件存储后端",
			cfg:  &types.AppConfig{Storage: &types.UserStorageConfig{Backend: types.StringPtr("file")}},
		},
		{
			name: "指标导出地址",
			cfg:  &types.AppConfig{Metrics: &types.UserMetricsConfig{ListenAddr: types.StringPtr("127.0.0.1:9464")}},
		},
		{
			name:    "非法指标导出地址",
			cfg:     &types.AppConfig{Metrics: &types.UserMetricsConfig{ListenAddr: types.StringPtr("9464")}},
			wantErr: "metrics.listen_addr",
		},
		{
			name:    "非法日志级别",
			cfg:     &types.AppConfig{Log: &types.UserLogConfig{Level: types.StringPtr("loud")}},
			wantErr: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAppConfig(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadAppConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("文件不存在使用默认配置", func(t *testing.T) {
		cfg, err := LoadAppConfig(filepath.Join(dir, "missing.json"))
		require.NoError(t, err)
		assert.Nil(t, cfg.Adapter)
	})

	t.Run("解析配置文件", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"adapter":{"name":"Local"},"storage":{"backend":"memory"}}`), 0600))

		cfg, err := LoadAppConfig(path)
		require.NoError(t, err)
		require.NotNil(t, cfg.Adapter)
		assert.Equal(t, "Local", *cfg.Adapter.Name)
		assert.Equal(t, storage.BackendMemory, NewProvider(cfg).GetIdentity().Backend)
	})

	t.Run("非法 JSON", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"adapter":`), 0600))

		_, err := LoadAppConfig(path)
		assert.Error(t, err)
	})

	t.Run("校验失败", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"storage":{"backend":"etcd"}}`), 0600))

		_, err := LoadAppConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.backend")
	})
}
