package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/wallet/internal/config"
)

func TestEmbeddedConfigs(t *testing.T) {
	t.Run("开发环境", func(t *testing.T) {
		appConfig, err := config.LoadFromBytes(GetDevelopmentConfig(), "json")
		require.NoError(t, err)

		provider := config.NewProvider(appConfig)
		assert.Equal(t, "dev", provider.GetEnvironment())
		assert.Equal(t, 3*time.Second, provider.GetWallet().SyncDuration)
		assert.False(t, provider.GetWallet().Redis.Enabled)
	})

	t.Run("生产环境", func(t *testing.T) {
		appConfig, err := config.LoadFromBytes(GetProductionConfig(), "json")
		require.NoError(t, err)

		provider := config.NewProvider(appConfig)
		assert.Equal(t, "prod", provider.GetEnvironment())
		assert.Equal(t, 10*time.Minute, provider.GetWallet().SyncInterval)
		assert.True(t, provider.GetWallet().Redis.Enabled)
		assert.Equal(t, "/var/log/wes-wallet/wallet.log", provider.GetLog().FilePath)
	})

	t.Run("未知环境", func(t *testing.T) {
		_, err := ForEnvironment("staging")
		assert.Error(t, err)
	})
}
