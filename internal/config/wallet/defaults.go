package wallet

import "time"

// 钱包状态默认配置值
const (
	// defaultSyncInterval 默认不自动同步，由命令或API触发
	defaultSyncInterval = time.Duration(0)

	// defaultSyncDuration 占位同步任务耗时
	defaultSyncDuration = 3 * time.Second

	// === Redis 广播 ===

	defaultRedisEnabled  = false
	defaultRedisAddr     = "127.0.0.1:6379"
	defaultRedisDB       = 0
	defaultRedisChannel  = "wallet:busy"
	defaultRedisStateKey = "wallet:busy:state"

	// === 指标 ===

	defaultMetricsEnabled   = true
	defaultMetricsNamespace = "wallet"
)
