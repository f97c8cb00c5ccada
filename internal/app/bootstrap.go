package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/weisyn/wallet/internal/api"
	"github.com/weisyn/wallet/internal/app/version"
	"github.com/weisyn/wallet/internal/cli"
	"github.com/weisyn/wallet/internal/config"
	"github.com/weisyn/wallet/internal/core/infrastructure/event"
	"github.com/weisyn/wallet/internal/core/infrastructure/log"
	"github.com/weisyn/wallet/internal/core/infrastructure/metrics"
	"github.com/weisyn/wallet/internal/core/wallet/busy"
	"github.com/weisyn/wallet/internal/core/wallet/busy/observers"
	walletsync "github.com/weisyn/wallet/internal/core/wallet/sync"
	"github.com/weisyn/wallet/pkg/constants/events"
	eventiface "github.com/weisyn/wallet/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/wallet/pkg/types"
)

// startTimeout 启动应用的最长等待时间
const startTimeout = 30 * time.Second

// Bootstrap 应用引导程序
type Bootstrap struct {
	opts  *options
	fxApp *fx.App
}

// NewBootstrap 创建引导程序
func NewBootstrap(opts *options) *Bootstrap {
	return &Bootstrap{
		opts: opts,
	}
}

// SetupInfrastructureLayer 设置基础设施层模块
func (b *Bootstrap) SetupInfrastructureLayer() []fx.Option {
	return []fx.Option{
		provideAppOptions(b.opts),
		config.Module(),  // 1. 配置(不依赖其他)
		log.Module(),     // 2. 日志(依赖配置)
		metrics.Module(), // 3. 指标注册表
		event.Module(),   // 4. 事件总线(依赖配置和日志)

		fx.Invoke(publishLifecycleEvents),
	}
}

// publishLifecycleEvents 在启动完成与停止前发布生命周期事件
func publishLifecycleEvents(lifecycle fx.Lifecycle, bus eventiface.EventBus) {
	newEvent := func() *types.LifecycleEvent {
		return &types.LifecycleEvent{Version: version.GetVersion(), Timestamp: time.Now().UTC()}
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			bus.Publish(events.EventTypeSystemStarted, newEvent())
			return nil
		},
		OnStop: func(context.Context) error {
			bus.Publish(events.EventTypeSystemStopping, newEvent())
			return nil
		},
	})
}

// SetupBusinessLayer 设置钱包状态模块
func (b *Bootstrap) SetupBusinessLayer() []fx.Option {
	return []fx.Option{
		busy.Module(),       // 1. 忙碌状态通知器，启动时注册所有观察者
		observers.Module(),  // 2. 内置观察者（日志、事件、指标、Redis）
		walletsync.Module(), // 3. 同步调度器（驱动忙碌状态）
	}
}

// SetupApplicationLayer 设置应用层模块
func (b *Bootstrap) SetupApplicationLayer() []fx.Option {
	modules := []fx.Option{
		cli.Module(),
	}

	if b.opts.enableAPI {
		modules = append(modules, api.Module())
	}

	return append(modules, b.opts.extraModules...)
}

// SetupModules 设置所有应用模块
func (b *Bootstrap) SetupModules() []fx.Option {
	var allModules []fx.Option
	allModules = append(allModules, b.SetupInfrastructureLayer()...)
	allModules = append(allModules, b.SetupBusinessLayer()...)
	allModules = append(allModules, b.SetupApplicationLayer()...)
	return allModules
}

// CreateFxApp 创建并配置fx应用
func (b *Bootstrap) CreateFxApp() error {
	b.fxApp = fx.New(
		fx.Options(b.SetupModules()...),
		fx.NopLogger,
	)
	if err := b.fxApp.Err(); err != nil {
		return fmt.Errorf("依赖装配失败: %w", err)
	}
	return nil
}

// StartApp 启动应用程序
func (b *Bootstrap) StartApp(ctx context.Context) error {
	if err := b.fxApp.Start(ctx); err != nil {
		return fmt.Errorf("启动应用失败: %w", err)
	}
	return nil
}

// StopApp 停止应用程序
func (b *Bootstrap) StopApp(ctx context.Context) error {
	if err := b.fxApp.Stop(ctx); err != nil {
		return fmt.Errorf("停止应用失败: %w", err)
	}
	return nil
}

// BootstrapApp 执行完整的引导过程并返回已启动的应用
func BootstrapApp(opts *options) (App, error) {
	bootstrap := NewBootstrap(opts)

	if err := bootstrap.CreateFxApp(); err != nil {
		return nil, fmt.Errorf("创建应用失败: %w", err)
	}

	startupCtx, startupCancel := context.WithTimeout(context.Background(), startTimeout)
	defer startupCancel()

	if err := bootstrap.StartApp(startupCtx); err != nil {
		return nil, err
	}

	return &internalApp{bootstrap: bootstrap}, nil
}
