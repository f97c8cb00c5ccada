package wallet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/weisyn/wallet/pkg/types"
)

func TestNew(t *testing.T) {
	t.Run("默认配置", func(t *testing.T) {
		opts := New(nil).GetOptions()
		assert.Zero(t, opts.SyncInterval)
		assert.Equal(t, defaultSyncDuration, opts.SyncDuration)
		assert.False(t, opts.Redis.Enabled)
		assert.Equal(t, defaultRedisChannel, opts.Redis.Channel)
		assert.True(t, opts.Metrics.Enabled)
	})

	t.Run("用户配置覆盖默认值", func(t *testing.T) {
		opts := New(&types.UserWalletConfig{
			SyncInterval: types.DurationPtr(time.Minute),
			Redis: &types.UserRedisConfig{
				Enabled: types.BoolPtr(true),
				Addr:    types.StringPtr("redis:6379"),
				Channel: types.StringPtr(""),
			},
			Metrics: &types.UserMetricsConfig{Enabled: types.BoolPtr(false)},
		}).GetOptions()

		assert.Equal(t, time.Minute, opts.SyncInterval)
		assert.True(t, opts.Redis.Enabled)
		assert.Equal(t, "redis:6379", opts.Redis.Addr)
		assert.Equal(t, defaultRedisChannel, opts.Redis.Channel, "空频道名保留默认值")
		assert.False(t, opts.Metrics.Enabled)
	})

	t.Run("负数间隔被忽略", func(t *testing.T) {
		opts := New(&types.UserWalletConfig{SyncInterval: types.DurationPtr(-time.Second)}).GetOptions()
		assert.Zero(t, opts.SyncInterval)
	})
}
