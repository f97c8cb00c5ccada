// Package config provides configuration provider interfaces.
package config

import (
	apiconfig "github.com/weisyn/wallet/internal/config/api"
	cliconfig "github.com/weisyn/wallet/internal/config/cli"
	eventconfig "github.com/weisyn/wallet/internal/config/event"
	logconfig "github.com/weisyn/wallet/internal/config/log"
	walletconfig "github.com/weisyn/wallet/internal/config/wallet"
)

// Provider 配置提供者接口
type Provider interface {
	// GetLog 获取日志配置
	GetLog() *logconfig.LogOptions

	// GetEvent 获取事件总线配置
	GetEvent() *eventconfig.EventOptions

	// GetWallet 获取钱包状态配置
	GetWallet() *walletconfig.WalletOptions

	// GetAPI 获取API服务配置
	GetAPI() *apiconfig.APIOptions

	// GetCLI 获取命令行配置
	GetCLI() *cliconfig.CLIOptions

	// GetEnvironment 获取运行环境：dev | test | prod
	GetEnvironment() string

	// GetDataDir 获取数据目录
	GetDataDir() string
}
