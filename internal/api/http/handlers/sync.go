package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/weisyn/wallet/internal/api/http/middleware"
	apitypes "github.com/weisyn/wallet/internal/api/http/types"
	"github.com/weisyn/wallet/internal/core/wallet/busy"
	walletsync "github.com/weisyn/wallet/internal/core/wallet/sync"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
)

// SyncService 同步能力（由 walletsync.Scheduler 实现）
type SyncService interface {
	Trigger(ctx context.Context) error
	Status() walletsync.Status
}

// SyncHandlers 钱包同步触发与状态查询
type SyncHandlers struct {
	sync     SyncService
	notifier wallet.BusyStateNotifier
	logger   *zap.Logger
}

// NewSyncHandlers 创建同步处理器
func NewSyncHandlers(sync SyncService, notifier wallet.BusyStateNotifier, logger *zap.Logger) *SyncHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncHandlers{sync: sync, notifier: notifier, logger: logger}
}

// RegisterRoutes 注册路由
//
//	POST /wallet/sync
//	GET  /wallet/sync
func (h *SyncHandlers) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/wallet/sync", h.TriggerSync)
	r.GET("/wallet/sync", h.GetSyncStatus)
}

// TriggerSync 触发一次后台同步
//
// 钱包忙碌时返回 409，成功受理返回 202。
func (h *SyncHandlers) TriggerSync(c *gin.Context) {
	err := h.sync.Trigger(c.Request.Context())
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, gin.H{
			"accepted": true,
			"status":   h.sync.Status(),
		})
	case errors.Is(err, busy.ErrWalletBusy):
		c.JSON(http.StatusConflict, apitypes.ErrWalletBusyResponse(h.notifier.ActiveOperations()).
			WithRequestID(middleware.GetRequestID(c)).
			WithTimestamp(time.Now()))
	default:
		h.logger.Error("触发钱包同步失败", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apitypes.NewErrorResponse(apitypes.ErrInternal, err.Error(), nil).
			WithRequestID(middleware.GetRequestID(c)).
			WithTimestamp(time.Now()))
	}
}

// GetSyncStatus 返回同步调度器状态
func (h *SyncHandlers) GetSyncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.Status())
}
