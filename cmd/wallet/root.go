package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weisyn/wallet/configs"
	"github.com/weisyn/wallet/internal/app"
	"github.com/weisyn/wallet/internal/cli/ui"
	"github.com/weisyn/wallet/internal/config"
	infralog "github.com/weisyn/wallet/internal/core/infrastructure/log"
	configiface "github.com/weisyn/wallet/pkg/interfaces/config"
	"github.com/weisyn/wallet/pkg/types"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	ConfigPath string // 配置文件路径
	Env        string // 未指定配置文件时使用的内置配置：dev | prod
	Language   string // 界面语言，覆盖配置
}

var globalFlags GlobalFlags

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "wallet",
	Short: "WES 钱包状态服务",
	Long: `WES Wallet - 钱包忙碌状态服务

钱包在同步等操作进行中处于忙碌状态，忙碌状态的变化会推送给所有观察者：
- 日志与 Prometheus 指标
- 进程内事件总线
- WebSocket 订阅者与可选的 Redis 频道
- 命令行加载动画`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "配置文件路径 (也可用环境变量 "+app.ConfigPathEnv+")")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Env, "env", "", "未指定配置文件时使用内置配置: dev | prod")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Language, "lang", "", "界面语言: zh-CN | en-US")

	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadAppConfig 读取配置并应用命令行覆盖
func loadAppConfig() (*types.AppConfig, error) {
	var (
		appConfig *types.AppConfig
		err       error
	)
	path := app.ResolveConfigPath(globalFlags.ConfigPath)
	if path == "" && globalFlags.Env != "" {
		data, envErr := configs.ForEnvironment(globalFlags.Env)
		if envErr != nil {
			return nil, envErr
		}
		appConfig, err = config.LoadFromBytes(data, "json")
	} else {
		appConfig, err = app.LoadAppConfig(path)
	}
	if err != nil {
		return nil, err
	}
	if globalFlags.Language != "" {
		if appConfig.CLI == nil {
			appConfig.CLI = &types.UserCLIConfig{}
		}
		appConfig.CLI.Language = types.StringPtr(globalFlags.Language)
	}
	return appConfig, nil
}

// loadProvider 读取配置，供不启动完整应用的命令使用
func loadProvider() (configiface.Provider, error) {
	appConfig, err := loadAppConfig()
	if err != nil {
		return nil, err
	}
	return config.NewProvider(appConfig), nil
}

// language 界面语言
func language(provider configiface.Provider) string {
	return provider.GetCLI().Language
}

// newComponents 创建命令输出使用的UI组件
func newComponents(provider configiface.Provider) ui.Components {
	options := provider.GetCLI()
	return ui.NewComponents(infralog.NewNop(), ui.Options{
		Writer:       os.Stdout,
		EnableColors: options.EnableColors,
		ShowSpinner:  options.ShowSpinner,
	})
}
