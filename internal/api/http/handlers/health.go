package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weisyn/wallet/internal/app/version"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
)

// HealthHandler 健康检查端点处理器
type HealthHandler struct {
	startTime time.Time
	notifier  wallet.BusyStateNotifier
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(notifier wallet.BusyStateNotifier) *HealthHandler {
	return &HealthHandler{startTime: time.Now(), notifier: notifier}
}

// RegisterRoutes 注册健康检查路由
func (h *HealthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", h.GetHealth)
}

// GetHealth 返回服务存活信息，忙碌不视为不健康
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.GetVersion(),
		"uptime":  time.Since(h.startTime).Round(time.Second).String(),
		"busy":    h.notifier.IsBusy(),
	})
}
