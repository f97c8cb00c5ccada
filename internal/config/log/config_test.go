package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/weisyn/wallet/pkg/types"
)

func TestNew(t *testing.T) {
	t.Run("默认配置", func(t *testing.T) {
		config := New(nil)
		assert.Equal(t, defaultLogLevel, config.GetLevel())
		assert.True(t, config.IsConsoleEnabled())
		assert.Empty(t, config.GetFilePath())
		assert.Equal(t, zapcore.InfoLevel, config.GetZapLevel())
	})

	t.Run("用户指定文件路径时关闭控制台", func(t *testing.T) {
		config := New(&types.UserLogConfig{
			Level:    types.StringPtr("debug"),
			FilePath: types.StringPtr("logs/wallet.log"),
		})
		assert.Equal(t, zapcore.DebugLevel, config.GetZapLevel())
		assert.Equal(t, "logs/wallet.log", config.GetFilePath())
		assert.False(t, config.IsConsoleEnabled())
	})

	t.Run("显式开启控制台优先", func(t *testing.T) {
		config := New(&types.UserLogConfig{
			FilePath:  types.StringPtr("logs/wallet.log"),
			ToConsole: types.BoolPtr(true),
		})
		assert.True(t, config.IsConsoleEnabled())
	})

	t.Run("未知级别回退到info", func(t *testing.T) {
		config := New(&types.UserLogConfig{Level: types.StringPtr("verbose")})
		assert.Equal(t, zapcore.InfoLevel, config.GetZapLevel())
	})

	t.Run("完整选项直接采用", func(t *testing.T) {
		config := New(&LogOptions{Level: "warn"})
		assert.Equal(t, zapcore.WarnLevel, config.GetZapLevel())
		assert.False(t, config.IsConsoleEnabled())
	})
}
