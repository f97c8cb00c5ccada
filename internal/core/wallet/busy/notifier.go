// Package busy 实现钱包忙碌状态的持有者与通知器
//
// 🎯 **忙碌状态通知 (Busy State Notifier)**
//
// 钱包在执行同步等耗时操作时处于"忙碌"状态。通知器按操作计数：
// 第一个操作开始时状态翻转为 true，最后一个操作结束时翻转为 false，
// 每次翻转按注册顺序同步通知所有观察者，且只通知一次。
//
// 回调内可以调用 IsBusy / Register / Unregister，
// 但不能同步调用 Begin / TryBegin / Track（会死锁）。
package busy

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
	"github.com/weisyn/wallet/pkg/types"
)

// registration 已注册的观察者
type registration struct {
	id       types.ObserverID
	observer wallet.BusyStateObserver
}

// Notifier 钱包忙碌状态通知器
type Notifier struct {
	logger log.Logger
	now    func() time.Time

	// transitionMu 串行化状态翻转与通知，保证观察者按翻转顺序收到值
	transitionMu sync.Mutex

	// opsMu 保护进行中的操作表
	opsMu sync.Mutex
	ops   map[string]types.OperationInfo

	busy atomic.Bool

	// 观察者注册表，按注册顺序
	registryMu sync.RWMutex
	observers  []registration
}

var _ wallet.BusyStateNotifier = (*Notifier)(nil)

// New 创建忙碌状态通知器，初始状态为空闲
func New(logger log.Logger) *Notifier {
	return &Notifier{
		logger: logger,
		now:    time.Now,
		ops:    make(map[string]types.OperationInfo),
	}
}

// Register 注册观察者，返回用于注销的标识
//
// nil 观察者（包括带类型的 nil 指针或 nil 函数）返回 ErrNilObserver。
func (n *Notifier) Register(observer wallet.BusyStateObserver) (types.ObserverID, error) {
	if isNilObserver(observer) {
		return "", ErrNilObserver
	}

	id := types.ObserverID(uuid.New().String())

	n.registryMu.Lock()
	n.observers = append(n.observers, registration{id: id, observer: observer})
	n.registryMu.Unlock()

	if n.logger != nil {
		n.logger.Debugf("注册忙碌状态观察者: id=%s type=%T", id, observer)
	}
	return id, nil
}

// isNilObserver 判断接口值本身或其动态值是否为 nil
func isNilObserver(observer wallet.BusyStateObserver) bool {
	if observer == nil {
		return true
	}
	v := reflect.ValueOf(observer)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Unregister 注销观察者，之后的翻转不再通知它
func (n *Notifier) Unregister(id types.ObserverID) error {
	n.registryMu.Lock()
	defer n.registryMu.Unlock()

	for i, reg := range n.observers {
		if reg.id == id {
			n.observers = append(n.observers[:i:i], n.observers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrObserverNotFound, id)
}

// Begin 标记一个操作开始，返回幂等的释放函数
func (n *Notifier) Begin(name string) wallet.Release {
	n.transitionMu.Lock()
	defer n.transitionMu.Unlock()

	return n.beginLocked(name)
}

// TryBegin 仅在钱包空闲时开始操作，否则返回 ErrWalletBusy
func (n *Notifier) TryBegin(name string) (wallet.Release, error) {
	n.transitionMu.Lock()
	defer n.transitionMu.Unlock()

	if n.busy.Load() {
		return nil, fmt.Errorf("%w: cannot start %q", ErrWalletBusy, name)
	}
	return n.beginLocked(name), nil
}

// Track 在 fn 执行期间保持忙碌状态，返回 fn 的错误
func (n *Notifier) Track(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	release := n.Begin(name)
	defer release()

	return fn(ctx)
}

// IsBusy 当前是否忙碌
func (n *Notifier) IsBusy() bool {
	return n.busy.Load()
}

// ActiveOperations 返回进行中的操作，按开始时间排序
func (n *Notifier) ActiveOperations() []types.OperationInfo {
	n.opsMu.Lock()
	ops := make([]types.OperationInfo, 0, len(n.ops))
	for _, op := range n.ops {
		ops = append(ops, op)
	}
	n.opsMu.Unlock()

	sort.Slice(ops, func(i, j int) bool {
		if ops[i].StartedAt.Equal(ops[j].StartedAt) {
			return ops[i].ID < ops[j].ID
		}
		return ops[i].StartedAt.Before(ops[j].StartedAt)
	})
	return ops
}

// Snapshot 返回状态快照
func (n *Notifier) Snapshot() types.BusySnapshot {
	n.transitionMu.Lock()
	defer n.transitionMu.Unlock()

	return types.BusySnapshot{
		Busy:       n.busy.Load(),
		Operations: n.ActiveOperations(),
	}
}

// ObserverCount 已注册观察者数量
func (n *Notifier) ObserverCount() int {
	n.registryMu.RLock()
	defer n.registryMu.RUnlock()
	return len(n.observers)
}

// beginLocked 调用方必须持有 transitionMu
func (n *Notifier) beginLocked(name string) wallet.Release {
	op := types.OperationInfo{
		ID:        uuid.New().String(),
		Name:      name,
		StartedAt: n.now(),
	}

	n.opsMu.Lock()
	n.ops[op.ID] = op
	first := len(n.ops) == 1
	n.opsMu.Unlock()

	if first {
		n.busy.Store(true)
		n.deliver(true)
	}

	var once sync.Once
	return func() {
		once.Do(func() { n.end(op.ID) })
	}
}

// end 结束操作，最后一个操作结束时翻转为空闲
func (n *Notifier) end(opID string) {
	n.transitionMu.Lock()
	defer n.transitionMu.Unlock()

	n.opsMu.Lock()
	delete(n.ops, opID)
	last := len(n.ops) == 0
	n.opsMu.Unlock()

	if last {
		n.busy.Store(false)
		n.deliver(false)
	}
}

// deliver 按注册顺序通知观察者快照
func (n *Notifier) deliver(isBusy bool) {
	n.registryMu.RLock()
	snapshot := make([]registration, len(n.observers))
	copy(snapshot, n.observers)
	n.registryMu.RUnlock()

	if n.logger != nil {
		n.logger.Debugf("钱包忙碌状态变化: busy=%v observers=%d", isBusy, len(snapshot))
	}

	for _, reg := range snapshot {
		n.notify(reg, isBusy)
	}
}

// notify 单个观察者的 panic 不影响其他观察者
func (n *Notifier) notify(reg registration, isBusy bool) {
	defer func() {
		if r := recover(); r != nil && n.logger != nil {
			n.logger.Errorf("忙碌状态观察者处理失败: id=%s busy=%v panic=%v", reg.id, isBusy, r)
		}
	}()
	reg.observer.OnBusyStateChanged(isBusy)
}
