package app

import (
	"go.uber.org/fx"

	"github.com/weisyn/wallet/pkg/interfaces/config"
	"github.com/weisyn/wallet/pkg/types"
)

// Option 应用程序选项函数类型
type Option func(*options)

// options 应用程序选项
// 实现config.AppOptions接口
type options struct {
	// 配置文件路径
	configFilePath string

	// 嵌入的配置内容（配置文件未指定时使用）
	embeddedConfig []byte

	// 直接传入的配置（优先级最高）
	appConfig *types.AppConfig

	// API支持开关 (默认启用，最终仍受 api.enabled 控制)
	enableAPI bool

	// 调用方追加的模块，例如前台命令的忙碌提示
	extraModules []fx.Option
}

// 编译时校验options是否实现了config.AppOptions接口
var _ config.AppOptions = (*options)(nil)

// WithConfigFile 设置配置文件路径
func WithConfigFile(configPath string) Option {
	return func(o *options) {
		o.configFilePath = configPath
	}
}

// WithEmbeddedConfig 设置内置配置内容（JSON），未指定配置文件时使用
func WithEmbeddedConfig(configBytes []byte) Option {
	return func(o *options) {
		o.embeddedConfig = configBytes
	}
}

// WithAppConfig 直接使用给定配置，不再读取文件
func WithAppConfig(appConfig *types.AppConfig) Option {
	return func(o *options) {
		o.appConfig = appConfig
	}
}

// WithoutAPI 禁用API模块
func WithoutAPI() Option {
	return func(o *options) {
		o.enableAPI = false
	}
}

// WithModules 追加fx模块
func WithModules(modules ...fx.Option) Option {
	return func(o *options) {
		o.extraModules = append(o.extraModules, modules...)
	}
}

// newOptions 创建选项
func newOptions(opts ...Option) *options {
	options := &options{
		enableAPI: true,
	}

	for _, opt := range opts {
		opt(options)
	}

	return options
}

// GetAppConfig 返回应用程序配置
func (o *options) GetAppConfig() *types.AppConfig {
	return o.appConfig
}
