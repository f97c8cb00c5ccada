package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/wallet/pkg/types"
)

// TestGetEnvironment 测试 GetEnvironment() 方法
func TestGetEnvironment(t *testing.T) {
	t.Run("显式配置 dev", func(t *testing.T) {
		provider := NewProvider(&types.AppConfig{Environment: types.StringPtr("dev")})
		assert.Equal(t, "dev", provider.GetEnvironment())
	})

	t.Run("未配置时默认为 prod（安全优先）", func(t *testing.T) {
		provider := NewProvider(nil)
		assert.Equal(t, "prod", provider.GetEnvironment())
	})

	t.Run("无效值默认为 prod", func(t *testing.T) {
		provider := NewProvider(&types.AppConfig{Environment: types.StringPtr("staging")})
		assert.Equal(t, "prod", provider.GetEnvironment())
	})
}

func TestGetLog_RelativePath(t *testing.T) {
	provider := NewProvider(&types.AppConfig{
		DataDir: types.StringPtr("/var/lib/wallet"),
		Log:     &types.UserLogConfig{FilePath: types.StringPtr("logs/wallet.log")},
	})
	assert.Equal(t, filepath.Join("/var/lib/wallet", "logs/wallet.log"), provider.GetLog().FilePath)
}

func TestLoad(t *testing.T) {
	t.Run("读取JSON配置文件", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "wallet.json")
		content := `{
  "environment": "dev",
  "log": {"level": "debug"},
  "wallet": {"sync_interval": "30s", "redis": {"enabled": true, "addr": "10.0.0.1:6379"}},
  "api": {"listen_addr": "0.0.0.0:9000", "enable_ws": false}
}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		appConfig, err := Load(path)
		require.NoError(t, err)

		provider := NewProvider(appConfig)
		assert.Equal(t, "dev", provider.GetEnvironment())
		assert.Equal(t, "debug", provider.GetLog().Level)
		assert.Equal(t, 30*time.Second, provider.GetWallet().SyncInterval)
		assert.True(t, provider.GetWallet().Redis.Enabled)
		assert.Equal(t, "10.0.0.1:6379", provider.GetWallet().Redis.Addr)
		assert.Equal(t, "0.0.0.0:9000", provider.GetAPI().ListenAddr)
		assert.False(t, provider.GetAPI().EnableWS)
		assert.True(t, provider.GetAPI().EnableMetrics, "未设置的字段使用默认值")
	})

	t.Run("环境变量覆盖", func(t *testing.T) {
		t.Setenv("WALLET_LOG_LEVEL", "warn")
		t.Setenv("WALLET_CLI_LANGUAGE", "en-US")

		appConfig, err := Load("")
		require.NoError(t, err)

		provider := NewProvider(appConfig)
		assert.Equal(t, "warn", provider.GetLog().Level)
		assert.Equal(t, "en-US", provider.GetCLI().Language)
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})
}

func TestLoadFromBytes(t *testing.T) {
	t.Run("YAML内容", func(t *testing.T) {
		data := []byte("wallet:\n  sync_interval: 1m\n  redis:\n    enabled: true\n    addr: redis:6379\n")

		appConfig, err := LoadFromBytes(data, "yaml")
		require.NoError(t, err)

		provider := NewProvider(appConfig)
		assert.Equal(t, time.Minute, provider.GetWallet().SyncInterval)
		assert.True(t, provider.GetWallet().Redis.Enabled)
		assert.Equal(t, "redis:6379", provider.GetWallet().Redis.Addr)
		assert.Equal(t, "wallet:busy", provider.GetWallet().Redis.Channel, "未设置的字段使用默认值")
	})

	t.Run("格式错误", func(t *testing.T) {
		_, err := LoadFromBytes([]byte(`{"wallet":`), "json")
		assert.Error(t, err)
	})
}
