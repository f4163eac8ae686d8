package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/weisyn/wallet-adapter/pkg/interfaces/config"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

// LoadAppConfig 从 JSON 文件加载用户配置
//
// 文件不存在时返回空配置（全部使用默认值）；存在但无法解析时返回错误。
func LoadAppConfig(path string) (*types.AppConfig, error) {
	if path == "" {
		return &types.AppConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &types.AppConfig{}, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	appConfig, err := ParseAppConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return appConfig, nil
}

// ParseAppConfig 解析并校验 JSON 格式的用户配置
func ParseAppConfig(data []byte) (*types.AppConfig, error) {
	var appConfig types.AppConfig
	if err := json.Unmarshal(data, &appConfig); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := ValidateAppConfig(&appConfig); err != nil {
		return nil, err
	}
	return &appConfig, nil
}

// appOptions AppOptions 的简单实现
type appOptions struct {
	appConfig *types.AppConfig
}

// NewAppOptions 包装已加载的用户配置
func NewAppOptions(appConfig *types.AppConfig) config.AppOptions {
	if appConfig == nil {
		appConfig = &types.AppConfig{}
	}
	return &appOptions{appConfig: appConfig}
}

// GetAppConfig 实现 config.AppOptions
func (o *appOptions) GetAppConfig() *types.AppConfig {
	return o.appConfig
}
