package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFullVersion(t *testing.T) {
	originalVersion, originalCommit, originalTime := Version, GitCommit, BuildTime
	t.Cleanup(func() {
		Version, GitCommit, BuildTime = originalVersion, originalCommit, originalTime
	})

	t.Run("默认构建信息", func(t *testing.T) {
		GitCommit, BuildTime = "unknown", "unknown"
		full := GetFullVersion()
		assert.Contains(t, full, "WES Wallet "+Version)
		assert.NotContains(t, full, "(unknown)")
		assert.Contains(t, full, "构建时间: unknown")
	})

	t.Run("注入的构建信息", func(t *testing.T) {
		Version, GitCommit, BuildTime = "v9.9.9", "abc1234", "2026-01-02T03:04:05Z"
		full := GetFullVersion()
		assert.Contains(t, full, "WES Wallet v9.9.9 (abc1234)")
		assert.Contains(t, full, "2026-01-02 03:04:05 UTC")
		assert.Equal(t, "v9.9.9", GetBuildInfo().Version)
	})
}
