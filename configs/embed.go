// Package configs 内置的各环境配置
package configs

import (
	_ "embed"
	"fmt"
)

//go:embed development/wallet.json
var developmentConfig []byte

//go:embed production/wallet.json
var productionConfig []byte

// GetDevelopmentConfig 获取开发环境配置
func GetDevelopmentConfig() []byte {
	return developmentConfig
}

// GetProductionConfig 获取生产环境配置
func GetProductionConfig() []byte {
	return productionConfig
}

// ForEnvironment 按环境名获取配置：dev | prod
func ForEnvironment(env string) ([]byte, error) {
	switch env {
	case "dev", "development":
		return developmentConfig, nil
	case "prod", "production":
		return productionConfig, nil
	default:
		return nil, fmt.Errorf("未知环境: %s", env)
	}
}
