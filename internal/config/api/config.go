// Package api 提供钱包状态HTTP API的配置
package api

import "github.com/weisyn/wallet/pkg/types"

// APIOptions API服务配置选项
type APIOptions struct {
	Enabled       bool   `json:"enabled"`        // 是否启用HTTP API
	ListenAddr    string `json:"listen_addr"`    // 监听地址
	EnableWS      bool   `json:"enable_ws"`      // 是否启用WebSocket推送
	EnableMetrics bool   `json:"enable_metrics"` // 是否暴露 /metrics
}

// Config API配置实现
type Config struct {
	options *APIOptions
}

// New 创建API配置
func New(userConfig *types.UserAPIConfig) *Config {
	options := &APIOptions{
		Enabled:       defaultEnabled,
		ListenAddr:    defaultListenAddr,
		EnableWS:      defaultEnableWS,
		EnableMetrics: defaultEnableMetrics,
	}

	if userConfig != nil {
		if userConfig.Enabled != nil {
			options.Enabled = *userConfig.Enabled
		}
		if userConfig.ListenAddr != nil && *userConfig.ListenAddr != "" {
			options.ListenAddr = *userConfig.ListenAddr
		}
		if userConfig.EnableWS != nil {
			options.EnableWS = *userConfig.EnableWS
		}
		if userConfig.EnableMetrics != nil {
			options.EnableMetrics = *userConfig.EnableMetrics
		}
	}

	return &Config{options: options}
}

// GetOptions 获取完整配置
func (c *Config) GetOptions() *APIOptions {
	return c.options
}
