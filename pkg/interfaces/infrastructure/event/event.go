// Package event 提供事件总线接口定义
//
// 🎯 **事件总线 (Event Bus)**
//
// 进程内的发布/订阅通道，钱包忙碌状态变化等跨组件通知通过它广播。
// 处理器签名与 asaskevich/EventBus 一致：任意函数，参数与 Publish 的 args 对应。
package event

import (
	"context"

	"github.com/weisyn/wallet/pkg/types"
)

// 兼容别名
type EventType = types.EventType

// Event 事件接口
type Event interface {
	// Type 返回事件类型
	Type() EventType
	// Data 返回事件数据
	Data() interface{}
}

// EventBus 事件总线接口
type EventBus interface {
	// Subscribe 订阅事件
	Subscribe(eventType EventType, handler interface{}) error
	// SubscribeAsync 异步订阅事件
	SubscribeAsync(eventType EventType, handler interface{}, transactional bool) error
	// SubscribeOnce 一次性订阅事件
	SubscribeOnce(eventType EventType, handler interface{}) error
	// Publish 发布事件
	Publish(eventType EventType, args ...interface{})
	// PublishEvent 发布Event接口类型事件
	PublishEvent(event Event)
	// Unsubscribe 取消订阅
	Unsubscribe(eventType EventType, handler interface{}) error
	// WaitAsync 等待所有异步处理完成
	WaitAsync()
	// HasCallback 检查是否有回调函数
	HasCallback(eventType EventType) bool

	// Start 启动事件总线
	Start(ctx context.Context) error
	// Stop 停止事件总线，等待异步处理器退出
	Stop(ctx context.Context) error
	// IsRunning 检查是否正在运行
	IsRunning() bool
}
