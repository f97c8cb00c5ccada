package types

import "time"

// ObserverID 忙碌状态观察者的注册标识
type ObserverID string

// OperationInfo 正在进行中的钱包操作
type OperationInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartedAt time.Time `json:"started_at"`
}

// BusySnapshot 钱包忙碌状态快照
type BusySnapshot struct {
	Busy       bool            `json:"busy"`
	Operations []OperationInfo `json:"operations"`
}
