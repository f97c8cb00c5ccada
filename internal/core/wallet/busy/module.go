package busy

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
	"github.com/weisyn/wallet/pkg/types"
)

// ObserverGroup 忙碌状态观察者的 fx 分组名
//
// 其他模块通过 fx.ResultTags(`group:"busy_observers"`) 提供观察者，
// 本模块在启动时统一注册，停止时统一注销。
const ObserverGroup = "busy_observers"

// ModuleInput 忙碌状态模块输入依赖
type ModuleInput struct {
	fx.In

	Logger log.Logger `optional:"true"`
}

// ModuleOutput 忙碌状态模块输出服务
type ModuleOutput struct {
	fx.Out

	Notifier wallet.BusyStateNotifier
	Concrete *Notifier
}

// RegisterInput 观察者注册所需依赖
type RegisterInput struct {
	fx.In

	Notifier  *Notifier
	Observers []wallet.BusyStateObserver `group:"busy_observers"`
	Lifecycle fx.Lifecycle
	Logger    log.Logger `optional:"true"`
}

// Module 返回忙碌状态模块
func Module() fx.Option {
	return fx.Module("busy",
		fx.Provide(ProvideServices),
		fx.Invoke(RegisterObservers),
	)
}

// ProvideServices 创建忙碌状态通知器
func ProvideServices(input ModuleInput) ModuleOutput {
	var logger log.Logger
	if input.Logger != nil {
		logger = input.Logger.With("module", "wallet.busy")
	}
	notifier := New(logger)
	return ModuleOutput{
		Notifier: notifier,
		Concrete: notifier,
	}
}

// RegisterObservers 把分组内的观察者注册到通知器
func RegisterObservers(input RegisterInput) error {
	ids := make([]types.ObserverID, 0, len(input.Observers))
	for _, observer := range input.Observers {
		if isNilObserver(observer) {
			continue // 被配置关闭的观察者以 nil 形式提供
		}
		id, err := input.Notifier.Register(observer)
		if err != nil {
			return fmt.Errorf("注册忙碌状态观察者失败: %w", err)
		}
		ids = append(ids, id)
	}

	if input.Logger != nil {
		input.Logger.Infof("已注册 %d 个忙碌状态观察者", len(ids))
	}

	input.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			for _, id := range ids {
				_ = input.Notifier.Unregister(id)
			}
			return nil
		},
	})
	return nil
}
