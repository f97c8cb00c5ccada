package sync

import (
	"context"

	"go.uber.org/fx"

	"github.com/weisyn/wallet/pkg/interfaces/config"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
)

// ModuleInput 同步模块输入依赖
type ModuleInput struct {
	fx.In

	Provider  config.Provider
	Notifier  wallet.BusyStateNotifier
	Lifecycle fx.Lifecycle
	Logger    log.Logger     `optional:"true"`
	EventBus  event.EventBus `optional:"true"`
}

// Module 返回同步模块
func Module() fx.Option {
	return fx.Module("wallet.sync",
		fx.Provide(ProvideScheduler),
	)
}

// ProvideScheduler 创建调度器并挂载生命周期
func ProvideScheduler(input ModuleInput) *Scheduler {
	var logger log.Logger
	if input.Logger != nil {
		logger = input.Logger.With("module", "wallet.sync")
	}

	scheduler := NewScheduler(input.Notifier, input.Provider.GetWallet(), logger)
	if input.EventBus != nil {
		scheduler.SetEventBus(input.EventBus)
	}

	input.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			// 启动上下文在 OnStart 返回后即失效，循环使用独立上下文
			return scheduler.Start(context.Background())
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})

	return scheduler
}
