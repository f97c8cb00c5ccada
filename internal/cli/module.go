// Package cli 提供钱包命令行界面组件
//
// 📋 **CLI模块**
//
// - ui：基于 pterm 的展示组件
// - about：关于页面（由 about 命令直接构建）
// - status：忙碌状态提示（作为观察者注册到通知器）
package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/weisyn/wallet/internal/cli/status"
	"github.com/weisyn/wallet/internal/cli/ui"
	"github.com/weisyn/wallet/pkg/interfaces/config"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
)

// IndicatorOutput 忙碌提示同时作为观察者加入分组
type IndicatorOutput struct {
	fx.Out

	Indicator *status.BusyIndicator
	Observer  wallet.BusyStateObserver `group:"busy_observers"`
}

// Module 提供UI组件
func Module() fx.Option {
	return fx.Module("cli",
		fx.Provide(ProvideComponents),
	)
}

// IndicatorModule 在终端中提示忙碌状态
// 仅用于前台命令，服务进程不加载
func IndicatorModule() fx.Option {
	return fx.Module("cli.indicator",
		fx.Provide(ProvideIndicator),
		fx.Invoke(func(*status.BusyIndicator) {}),
	)
}

// ProvideComponents 按配置创建UI组件
func ProvideComponents(provider config.Provider, logger log.Logger) ui.Components {
	options := provider.GetCLI()
	return ui.NewComponents(logger, ui.Options{
		EnableColors: options.EnableColors,
		ShowSpinner:  options.ShowSpinner,
	})
}

// ProvideIndicator 创建忙碌提示
func ProvideIndicator(lc fx.Lifecycle, provider config.Provider, components ui.Components, logger log.Logger) IndicatorOutput {
	indicator := status.NewBusyIndicator(components, provider.GetCLI().Language, logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			indicator.Close()
			return nil
		},
	})
	return IndicatorOutput{Indicator: indicator, Observer: indicator}
}
