// Package types provides event type definitions.
package types

import "time"

// EventType 事件类型
type EventType string

// SubscriptionID 订阅标识
type SubscriptionID string

// WalletBusyChanged 钱包忙碌状态变化事件类型
const WalletBusyChanged EventType = "wallet.busy.changed"

// BusyStateEvent 钱包忙碌状态变化事件
//
// 由事件发布观察者在每次状态翻转时构造，供事件总线订阅者、
// WebSocket 推送和 Redis 广播复用同一份载荷。
type BusyStateEvent struct {
	ID        string    `json:"id"`
	Busy      bool      `json:"busy"`
	Timestamp time.Time `json:"timestamp"`
}

// Type 实现 pkg/interfaces/infrastructure/event.Event 接口
func (e *BusyStateEvent) Type() EventType {
	return WalletBusyChanged
}

// Data 实现 pkg/interfaces/infrastructure/event.Event 接口
func (e *BusyStateEvent) Data() interface{} {
	return e
}

// SyncResultEvent 一次同步的结果
type SyncResultEvent struct {
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
}

// LifecycleEvent 应用生命周期事件
type LifecycleEvent struct {
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}
