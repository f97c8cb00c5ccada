// Package observers 提供忙碌状态观察者的常用实现
//
// 每种消费者一个实现：状态镜像、函数适配、日志、指标、事件总线、Redis 广播。
// 观察者回调同步执行，实现内部不得阻塞过久。
package observers

import (
	"sync/atomic"

	"github.com/weisyn/wallet/pkg/interfaces/wallet"
)

// Recorder 记录最后一次收到的忙碌状态，初始为 false
type Recorder struct {
	busy atomic.Bool
}

var _ wallet.BusyStateObserver = (*Recorder)(nil)

// NewRecorder 创建状态镜像观察者
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnBusyStateChanged 保存新的状态值
func (r *Recorder) OnBusyStateChanged(isBusy bool) {
	r.busy.Store(isBusy)
}

// IsBusy 最后一次观察到的状态
func (r *Recorder) IsBusy() bool {
	return r.busy.Load()
}
