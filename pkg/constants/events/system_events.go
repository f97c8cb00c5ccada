// Package events 钱包事件类型常量定义
//
// 🎯 **事件常量归口管理**
//
// 只定义需要跨组件通信的事件，命名规范：domain.category.action
//
// 🏗️ **使用方式**
// ```go
// import "github.com/weisyn/wallet/pkg/constants/events"
//
// eventBus.Subscribe(events.EventTypeWalletBusyChanged, func(e *types.BusyStateEvent) { ... })
// ```
package events

import (
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/wallet/pkg/types"
)

// EventType 全局事件类型别名，兼容标准事件接口
type EventType = event.EventType

// 系统生命周期事件
const (
	// EventTypeSystemStarted 应用启动完成
	// 发布者：internal/app 引导程序
	EventTypeSystemStarted EventType = "system.lifecycle.started"

	// EventTypeSystemStopping 应用即将停止
	// 发布者：internal/app 引导程序
	EventTypeSystemStopping EventType = "system.lifecycle.stopping"
)

// 钱包事件
const (
	// EventTypeWalletBusyChanged 忙碌状态翻转
	// 发布者：observers.EventPublisher
	// 载荷：*types.BusyStateEvent
	EventTypeWalletBusyChanged = types.WalletBusyChanged

	// EventTypeWalletSyncCompleted 一次同步成功结束
	// 发布者：wallet/sync.Scheduler
	// 载荷：*types.SyncResultEvent
	EventTypeWalletSyncCompleted EventType = "wallet.sync.completed"

	// EventTypeWalletSyncFailed 一次同步失败（含被取消）
	// 发布者：wallet/sync.Scheduler
	// 载荷：*types.SyncResultEvent
	EventTypeWalletSyncFailed EventType = "wallet.sync.failed"
)

// AllEventTypes 返回全部事件类型
func AllEventTypes() []EventType {
	return []EventType{
		EventTypeSystemStarted,
		EventTypeSystemStopping,
		EventTypeWalletBusyChanged,
		EventTypeWalletSyncCompleted,
		EventTypeWalletSyncFailed,
	}
}
