package configs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/wallet-adapter/configs"
	config "github.com/weisyn/wallet-adapter/internal/config"
	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/storage"
)

func TestEmbeddedConfigsAreValid(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		t.Run(env, func(t *testing.T) {
			data := configs.Get(env)
			require.NotEmpty(t, data)

			cfg, err := config.ParseAppConfig(data)
			require.NoError(t, err)
			require.NotNil(t, cfg.Adapter)
		})
	}
}

func TestGetAliases(t *testing.T) {
	assert.Equal(t, configs.GetDevelopmentConfig(), configs.Get("dev"))
	assert.Equal(t, configs.GetProductionConfig(), configs.Get("prod"))
	assert.Nil(t, configs.Get("staging"))
}

func TestProductionDefaults(t *testing.T) {
	cfg, err := config.ParseAppConfig(configs.GetProductionConfig())
	require.NoError(t, err)

	provider := config.NewProvider(cfg)
	assert.Equal(t, "https://fractal.is", provider.GetAdapter().AuthorityOrigin)
	assert.Equal(t, storage.BackendBadger, provider.GetIdentity().Backend)
	assert.True(t, provider.GetMetrics().Enabled)
}
