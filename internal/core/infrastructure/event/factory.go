package event

import (
	"context"

	"go.uber.org/fx"

	eventconfig "github.com/weisyn/wallet/internal/config/event"
	"github.com/weisyn/wallet/pkg/interfaces/config"
	eventInterface "github.com/weisyn/wallet/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/log"
)

// ServiceInput 事件服务工厂函数的输入参数
type ServiceInput struct {
	Provider  config.Provider // 配置提供者
	Logger    log.Logger      // 日志记录器（可选）
	Lifecycle fx.Lifecycle    // 生命周期管理（可选）
}

// ServiceOutput 事件服务工厂函数的输出结果
type ServiceOutput struct {
	EventBus eventInterface.EventBus // 基础事件总线
}

// CreateEventServices 创建事件服务
func CreateEventServices(input ServiceInput) (ServiceOutput, error) {
	// 获取事件配置选项
	eventCfg := eventconfig.New(input.Provider.GetEvent())

	// 初始化基础事件总线
	eventBus := New(eventCfg)

	if input.Lifecycle != nil {
		input.Lifecycle.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return eventBus.Start(context.Background())
			},
			OnStop: func(ctx context.Context) error {
				if input.Logger != nil {
					input.Logger.Infof("停止事件总线，累计发布事件 %d 个", eventBus.Stats().TotalEvents)
				}
				return eventBus.Stop(ctx)
			},
		})
	}

	if input.Logger != nil {
		input.Logger.Infof("事件总线已初始化 (enabled=%v)", eventCfg.IsEnabled())
	}

	return ServiceOutput{
		EventBus: eventBus,
	}, nil
}
