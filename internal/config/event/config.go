package event

import "github.com/weisyn/wallet/pkg/types"

// EventOptions 事件系统配置选项
type EventOptions struct {
	Enabled        bool `json:"enabled"`         // 是否启用事件系统
	MaxSubscribers int  `json:"max_subscribers"` // 最大订阅者数量
}

// Config 事件配置实现
type Config struct {
	options *EventOptions
}

// New 创建事件配置实现
func New(userConfig interface{}) *Config {
	options := createDefaultEventOptions()

	switch cfg := userConfig.(type) {
	case *types.UserEventConfig:
		if cfg != nil && cfg.Enabled != nil {
			options.Enabled = *cfg.Enabled
		}
	case *EventOptions:
		// 已解析的完整选项直接采用
		if cfg != nil {
			*options = *cfg
		}
	}

	return &Config{
		options: options,
	}
}

// createDefaultEventOptions 创建默认事件配置
func createDefaultEventOptions() *EventOptions {
	return &EventOptions{
		Enabled:        defaultEnabled,
		MaxSubscribers: defaultMaxSubscribers,
	}
}

// GetOptions 获取完整配置
func (c *Config) GetOptions() *EventOptions {
	return c.options
}

// IsEnabled 是否启用事件系统
func (c *Config) IsEnabled() bool {
	return c.options.Enabled
}

// GetMaxSubscribers 获取最大订阅者数量
func (c *Config) GetMaxSubscribers() int {
	return c.options.MaxSubscribers
}
