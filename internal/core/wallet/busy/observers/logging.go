package observers

import (
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
)

// Logging 以日志形式记录每次状态翻转
type Logging struct {
	logger log.Logger
}

var _ wallet.BusyStateObserver = (*Logging)(nil)

// NewLogging 创建日志观察者
func NewLogging(logger log.Logger) *Logging {
	return &Logging{logger: logger}
}

// OnBusyStateChanged 记录状态翻转
func (l *Logging) OnBusyStateChanged(isBusy bool) {
	if l.logger == nil {
		return
	}
	if isBusy {
		l.logger.With("busy", true).Info("钱包进入忙碌状态，部分操作暂不可用")
		return
	}
	l.logger.With("busy", false).Info("钱包恢复空闲")
}
