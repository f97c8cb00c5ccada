// Package version provides version information for the wallet.
package version

import (
	"fmt"
	"runtime"
	"time"
)

// 构建时注入的变量，通过ldflags设置
//
//	go build -ldflags "-X github.com/weisyn/wallet/internal/app/version.Version=v1.2.0"
var (
	Version   = "v0.1.0"      // 语义化版本
	GitCommit = "unknown"     // 提交哈希
	BuildTime = "unknown"     // 构建时间戳（RFC3339格式）
	BuildEnv  = "development" // 构建环境：development, testing, production
)

// BuildInfo 完整构建信息
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	BuildEnv  string `json:"build_env"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersion 获取版本号
func GetVersion() string {
	return Version
}

// GetBuildInfo 获取完整构建信息
func GetBuildInfo() *BuildInfo {
	return &BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: formatBuildTime(BuildTime),
		BuildEnv:  BuildEnv,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// GetFullVersion 获取完整版本信息（用于 version 命令）
func GetFullVersion() string {
	info := GetBuildInfo()

	s := fmt.Sprintf("WES Wallet %s", info.Version)
	if info.GitCommit != "unknown" {
		s += fmt.Sprintf(" (%s)", info.GitCommit)
	}
	s += fmt.Sprintf("\n构建时间: %s", info.BuildTime)
	s += fmt.Sprintf("\n构建环境: %s", info.BuildEnv)
	s += fmt.Sprintf("\nGo版本: %s", info.GoVersion)
	s += fmt.Sprintf("\n平台: %s", info.Platform)
	return s
}

// IsProductionBuild 判断是否为生产构建
func IsProductionBuild() bool { return BuildEnv == "production" }

func formatBuildTime(raw string) string {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.Format("2006-01-02 15:04:05 MST")
	}
	return raw
}
