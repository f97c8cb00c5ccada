// Package wallet 定义钱包状态相关的能力接口
//
// 📋 **忙碌状态通知契约 (Busy State Notification Contract)**
//
// 钱包控制器在执行同步等长耗时操作时处于"忙碌"状态，期间部分用户操作会被禁止。
// 任何需要感知忙碌/空闲切换的组件实现 BusyStateObserver，并注册到 BusyStateNotifier。
//
// 🎯 **约定**
// - 每次状态翻转回调一次，参数为新的状态值
// - 回调同步执行，按翻转顺序送达
// - 单个观察者出错（panic）不影响其它观察者接收通知
package wallet

import (
	"context"

	"github.com/weisyn/wallet/pkg/types"
)

// BusyStateObserver 忙碌状态观察者
type BusyStateObserver interface {
	// OnBusyStateChanged 在忙碌状态翻转时被调用
	OnBusyStateChanged(isBusy bool)
}

// Release 结束一次忙碌操作，可重复调用
type Release func()

// BusyStateNotifier 忙碌状态所有者
//
// 忙碌状态采用引用计数：只要存在进行中的操作即为忙碌，
// 仅在 0→1 与 1→0 时通知观察者。
type BusyStateNotifier interface {
	// Register 注册观察者
	Register(observer BusyStateObserver) (types.ObserverID, error)
	// Unregister 注销观察者
	Unregister(id types.ObserverID) error

	// Begin 开始一个操作并返回对应的 Release
	Begin(name string) Release
	// TryBegin 仅在空闲时开始操作，否则返回 ErrWalletBusy
	TryBegin(name string) (Release, error)
	// Track 在忙碌状态下执行 fn
	Track(ctx context.Context, name string, fn func(ctx context.Context) error) error

	// IsBusy 当前是否忙碌
	IsBusy() bool
	// ActiveOperations 进行中的操作列表
	ActiveOperations() []types.OperationInfo
	// Snapshot 当前状态快照
	Snapshot() types.BusySnapshot
}
