package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/weisyn/wallet/internal/api/websocket"
	walletsync "github.com/weisyn/wallet/internal/core/wallet/sync"
	"github.com/weisyn/wallet/pkg/interfaces/config"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
)

// ServerInput HTTP服务器依赖
type ServerInput struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Provider   config.Provider
	Logger     log.Logger
	Notifier   wallet.BusyStateNotifier
	Scheduler  *walletsync.Scheduler
	Hub        *websocket.Hub        `optional:"true"`
	Gatherer   prometheus.Gatherer   `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
}

// HubOutput 推送中心既作为服务提供，也作为忙碌状态观察者加入分组
type HubOutput struct {
	fx.Out

	Hub      *websocket.Hub
	Observer wallet.BusyStateObserver `group:"busy_observers"`
}

// Module 返回HTTP模块
func Module() fx.Option {
	return fx.Module("api.http",
		fx.Provide(ProvideHub, ProvideServer),
	)
}

// ProvideHub 创建WebSocket推送中心，未启用时两个输出均为nil
func ProvideHub(provider config.Provider, notifier wallet.BusyStateNotifier, logger log.Logger) HubOutput {
	options := provider.GetAPI()
	if !options.Enabled || !options.EnableWS {
		return HubOutput{}
	}
	hub := websocket.NewHub(notifier, logger.GetZapLogger().With(zap.String("module", "api.websocket")))
	return HubOutput{Hub: hub, Observer: hub}
}

// ProvideServer 创建HTTP服务器并挂载生命周期
func ProvideServer(input ServerInput) *Server {
	if input.Provider.GetEnvironment() != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := input.Logger.With("module", "api.http")
	server := NewServer(input.Provider.GetAPI(), logger, Dependencies{
		Notifier:   input.Notifier,
		Sync:       input.Scheduler,
		Hub:        input.Hub,
		Gatherer:   input.Gatherer,
		Registerer: input.Registerer,
	})

	if !input.Provider.GetAPI().Enabled {
		logger.Info("API服务未启用，跳过HTTP监听")
		return server
	}

	input.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return server.Start()
		},
		OnStop: func(ctx context.Context) error {
			return server.Stop(ctx)
		},
	})

	return server
}
