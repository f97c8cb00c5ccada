// Package wallet 提供钱包忙碌状态相关的配置
package wallet

import (
	"time"

	"github.com/weisyn/wallet/pkg/types"
)

// WalletOptions 钱包状态配置选项
type WalletOptions struct {
	SyncInterval time.Duration  `json:"sync_interval"` // 自动同步间隔，0 表示关闭
	SyncDuration time.Duration  `json:"sync_duration"` // 占位同步任务耗时
	Redis        RedisOptions   `json:"redis"`
	Metrics      MetricsOptions `json:"metrics"`
}

// RedisOptions 跨进程广播配置
type RedisOptions struct {
	Enabled  bool   `json:"enabled"`
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	Channel  string `json:"channel"`   // 状态变化发布频道
	StateKey string `json:"state_key"` // 最新状态镜像键
}

// MetricsOptions 指标配置
type MetricsOptions struct {
	Enabled   bool   `json:"enabled"`
	Namespace string `json:"namespace"`
}

// Config 钱包状态配置实现
type Config struct {
	options *WalletOptions
}

// New 创建钱包状态配置
func New(userConfig *types.UserWalletConfig) *Config {
	options := createDefaultWalletOptions()
	if userConfig != nil {
		applyUserWalletConfig(options, userConfig)
	}
	return &Config{options: options}
}

func createDefaultWalletOptions() *WalletOptions {
	return &WalletOptions{
		SyncInterval: defaultSyncInterval,
		SyncDuration: defaultSyncDuration,
		Redis: RedisOptions{
			Enabled:  defaultRedisEnabled,
			Addr:     defaultRedisAddr,
			DB:       defaultRedisDB,
			Channel:  defaultRedisChannel,
			StateKey: defaultRedisStateKey,
		},
		Metrics: MetricsOptions{
			Enabled:   defaultMetricsEnabled,
			Namespace: defaultMetricsNamespace,
		},
	}
}

func applyUserWalletConfig(options *WalletOptions, cfg *types.UserWalletConfig) {
	if cfg.SyncInterval != nil && *cfg.SyncInterval >= 0 {
		options.SyncInterval = *cfg.SyncInterval
	}
	if cfg.SyncDuration != nil && *cfg.SyncDuration >= 0 {
		options.SyncDuration = *cfg.SyncDuration
	}

	if r := cfg.Redis; r != nil {
		if r.Enabled != nil {
			options.Redis.Enabled = *r.Enabled
		}
		if r.Addr != nil && *r.Addr != "" {
			options.Redis.Addr = *r.Addr
		}
		if r.Password != nil {
			options.Redis.Password = *r.Password
		}
		if r.DB != nil {
			options.Redis.DB = *r.DB
		}
		if r.Channel != nil && *r.Channel != "" {
			options.Redis.Channel = *r.Channel
		}
		if r.StateKey != nil && *r.StateKey != "" {
			options.Redis.StateKey = *r.StateKey
		}
	}

	if m := cfg.Metrics; m != nil {
		if m.Enabled != nil {
			options.Metrics.Enabled = *m.Enabled
		}
		if m.Namespace != nil {
			options.Metrics.Namespace = *m.Namespace
		}
	}
}

// GetOptions 获取完整配置
func (c *Config) GetOptions() *WalletOptions {
	return c.options
}
