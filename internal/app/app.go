package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"

	appconfig "github.com/weisyn/wallet/internal/config"
	"github.com/weisyn/wallet/pkg/interfaces/config"
	"github.com/weisyn/wallet/pkg/types"
)

// ConfigPathEnv 配置文件路径环境变量，优先级高于命令行参数
const ConfigPathEnv = "WALLET_CONFIG_PATH"

// stopTimeout 停止应用的最长等待时间
const stopTimeout = 30 * time.Second

// App 钱包应用的对外接口
type App interface {
	// Stop 停止应用
	Stop() error

	// Wait 等待退出信号后停止应用
	Wait()
}

// internalApp 钱包应用的内部实现
type internalApp struct {
	bootstrap *Bootstrap
}

// Stop 停止应用
func (a *internalApp) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	return a.bootstrap.StopApp(ctx)
}

// Wait 等待应用收到退出信号
func (a *internalApp) Wait() {
	sig := WaitForSignal()
	fmt.Fprintf(os.Stderr, "\n🛑 收到信号 %v，正在优雅退出...\n", sig)

	if err := a.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️ 停止应用时出错: %v\n", err)
	}
}

// Start 加载配置并启动钱包应用
func Start(appOptions ...Option) (App, error) {
	opts := newOptions(appOptions...)

	if opts.appConfig == nil {
		appConfig, err := resolveAppConfig(opts)
		if err != nil {
			return nil, err
		}
		opts.appConfig = appConfig
	}

	return BootstrapApp(opts)
}

// resolveAppConfig 配置来源优先级：配置文件 > 内置配置 > 默认值
func resolveAppConfig(opts *options) (*types.AppConfig, error) {
	path := ResolveConfigPath(opts.configFilePath)
	if path == "" && len(opts.embeddedConfig) > 0 {
		return appconfig.LoadFromBytes(opts.embeddedConfig, "json")
	}
	return LoadAppConfig(path)
}

// LoadAppConfig 读取配置文件
//
// 文件不存在时使用默认配置（环境变量覆盖仍然生效），其他读取或解析错误直接返回。
func LoadAppConfig(path string) (*types.AppConfig, error) {
	appConfig, err := appconfig.Load(path)
	if errors.Is(err, appconfig.ErrConfigNotFound) {
		fmt.Fprintf(os.Stderr, "配置文件 %s 不存在，使用默认配置\n", path)
		return appconfig.Load("")
	}
	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// provideAppOptions 向配置模块提供应用配置
func provideAppOptions(opts *options) fx.Option {
	return fx.Provide(func() config.AppOptions { return opts })
}

// ResolveConfigPath 获取配置文件路径
// 环境变量 > 调用方指定 > 空（仅使用默认值与环境变量）
func ResolveConfigPath(path string) string {
	if envPath := os.Getenv(ConfigPathEnv); envPath != "" {
		return envPath
	}
	return path
}

// WaitForSignal 等待退出信号
func WaitForSignal() os.Signal {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	return <-signals
}
