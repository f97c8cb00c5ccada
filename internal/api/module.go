package api

import (
	"go.uber.org/fx"

	"github.com/weisyn/wallet/internal/api/http"
)

// Module 返回API模块
// 包含HTTP查询/触发接口与WebSocket忙碌状态推送
func Module() fx.Option {
	return fx.Module("api",
		http.Module(),

		// 显式依赖HTTP服务器，确保其生命周期钩子被注册
		fx.Invoke(func(*http.Server) {}),
	)
}
