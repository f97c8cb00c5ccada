package observers

import "github.com/weisyn/wallet/pkg/interfaces/wallet"

// Func 把普通函数适配为观察者
type Func func(isBusy bool)

var _ wallet.BusyStateObserver = Func(nil)

// OnBusyStateChanged 调用函数本身
func (f Func) OnBusyStateChanged(isBusy bool) {
	if f != nil {
		f(isBusy)
	}
}
