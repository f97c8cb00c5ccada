// Package handlers provides HTTP API handlers for the wallet service
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weisyn/wallet/pkg/interfaces/wallet"
	"github.com/weisyn/wallet/pkg/types"
)

// BusyHandlers 钱包忙碌状态查询
type BusyHandlers struct {
	notifier wallet.BusyStateNotifier
}

// NewBusyHandlers 创建忙碌状态处理器
func NewBusyHandlers(notifier wallet.BusyStateNotifier) *BusyHandlers {
	return &BusyHandlers{notifier: notifier}
}

// RegisterRoutes 注册路由
//
//	GET /wallet/busy
func (h *BusyHandlers) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/wallet/busy", h.GetBusyState)
}

// GetBusyState 返回当前忙碌状态与进行中的操作
func (h *BusyHandlers) GetBusyState(c *gin.Context) {
	snapshot := h.notifier.Snapshot()
	if snapshot.Operations == nil {
		snapshot.Operations = []types.OperationInfo{}
	}
	c.JSON(http.StatusOK, snapshot)
}
