package observers

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/weisyn/wallet/pkg/interfaces/config"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
)

// ModuleInput 观察者模块输入依赖
type ModuleInput struct {
	fx.In

	Provider   config.Provider
	Lifecycle  fx.Lifecycle
	Logger     log.Logger            `optional:"true"`
	EventBus   event.EventBus        `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
}

// ModuleOutput 观察者模块输出，全部进入 busy_observers 分组
type ModuleOutput struct {
	fx.Out

	Observers []wallet.BusyStateObserver `group:"busy_observers,flatten"`
}

// Module 返回观察者模块
func Module() fx.Option {
	return fx.Module("busy.observers",
		fx.Provide(ProvideObservers),
	)
}

// ProvideObservers 按配置创建内置观察者
func ProvideObservers(input ModuleInput) ModuleOutput {
	walletOptions := input.Provider.GetWallet()

	var logger log.Logger
	if input.Logger != nil {
		logger = input.Logger.With("module", "wallet.busy")
	}

	observers := []wallet.BusyStateObserver{NewLogging(logger)}

	if input.EventBus != nil {
		observers = append(observers, NewEventPublisher(input.EventBus))
	}

	if walletOptions.Metrics.Enabled && input.Registerer != nil {
		observers = append(observers, NewMetrics(input.Registerer, walletOptions.Metrics.Namespace))
	}

	if walletOptions.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		redisObserver, err := NewRedis(ctx, walletOptions.Redis, logger)
		if err != nil {
			// Redis 广播是可选能力，连接失败不阻止启动
			if logger != nil {
				logger.Warnf("Redis 忙碌状态广播未启用: %v", err)
			}
		} else {
			observers = append(observers, redisObserver)
			input.Lifecycle.Append(fx.Hook{
				OnStop: func(context.Context) error {
					return redisObserver.Close()
				},
			})
		}
	}

	return ModuleOutput{Observers: observers}
}
