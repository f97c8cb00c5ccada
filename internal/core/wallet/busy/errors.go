package busy

import "errors"

var (
	// ErrNilObserver 注册了空观察者
	ErrNilObserver = errors.New("busy: observer is nil")
	// ErrObserverNotFound 注销的观察者不存在（或已注销）
	ErrObserverNotFound = errors.New("busy: observer not found")
	// ErrWalletBusy 钱包正忙，独占操作无法开始
	ErrWalletBusy = errors.New("busy: wallet is busy")
)
