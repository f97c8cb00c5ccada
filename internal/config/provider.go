// Package config 提供应用配置管理功能
package config

import (
	"path/filepath"
	"strings"

	apiconfig "github.com/weisyn/wallet/internal/config/api"
	cliconfig "github.com/weisyn/wallet/internal/config/cli"
	eventconfig "github.com/weisyn/wallet/internal/config/event"
	logconfig "github.com/weisyn/wallet/internal/config/log"
	walletconfig "github.com/weisyn/wallet/internal/config/wallet"
	"github.com/weisyn/wallet/pkg/interfaces/config"
	"github.com/weisyn/wallet/pkg/types"
)

const (
	envDev  = "dev"
	envTest = "test"
	envProd = "prod"

	defaultDataDir = "./data"
)

// Provider 实现配置提供者接口
type Provider struct {
	appConfig *types.AppConfig
}

// NewProvider 创建配置提供者
func NewProvider(appConfig *types.AppConfig) config.Provider {
	if appConfig == nil {
		appConfig = &types.AppConfig{}
	}
	return &Provider{
		appConfig: appConfig,
	}
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *logconfig.LogOptions {
	options := logconfig.New(p.appConfig.Log).GetOptions()

	// 相对日志路径基于数据目录解析
	if options.FilePath != "" && !filepath.IsAbs(options.FilePath) {
		options.FilePath = filepath.Join(p.GetDataDir(), options.FilePath)
	}
	return options
}

// GetEvent 获取事件总线配置
func (p *Provider) GetEvent() *eventconfig.EventOptions {
	return eventconfig.New(p.appConfig.Event).GetOptions()
}

// GetWallet 获取钱包状态配置
func (p *Provider) GetWallet() *walletconfig.WalletOptions {
	return walletconfig.New(p.appConfig.Wallet).GetOptions()
}

// GetAPI 获取API服务配置
func (p *Provider) GetAPI() *apiconfig.APIOptions {
	return apiconfig.New(p.appConfig.API).GetOptions()
}

// GetCLI 获取命令行配置
func (p *Provider) GetCLI() *cliconfig.CLIOptions {
	return cliconfig.New(p.appConfig.CLI).GetOptions()
}

// GetEnvironment 获取运行环境
// 未配置或无效值时返回 prod（安全优先）
func (p *Provider) GetEnvironment() string {
	if p.appConfig.Environment == nil {
		return envProd
	}
	switch env := strings.ToLower(strings.TrimSpace(*p.appConfig.Environment)); env {
	case envDev, envTest, envProd:
		return env
	default:
		return envProd
	}
}

// GetDataDir 获取数据目录
func (p *Provider) GetDataDir() string {
	if p.appConfig.DataDir != nil && *p.appConfig.DataDir != "" {
		return *p.appConfig.DataDir
	}
	return defaultDataDir
}
