// Package configs 内置各环境的默认配置
package configs

import _ "embed"

//go:embed development/config.json
var developmentConfig []byte

//go:embed production/config.json
var productionConfig []byte

// GetDevelopmentConfig 获取开发环境配置（本地授权页面 + 内存存储）
func GetDevelopmentConfig() []byte {
	return developmentConfig
}

// GetProductionConfig 获取生产环境配置
func GetProductionConfig() []byte {
	return productionConfig
}

// Get 按环境名获取配置，未知环境返回 nil
func Get(env string) []byte {
	switch env {
	case "development", "dev":
		return developmentConfig
	case "production", "prod":
		return productionConfig
	default:
		return nil
	}
}
