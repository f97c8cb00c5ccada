package busy

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corelog "github.com/weisyn/wallet/internal/core/infrastructure/log"
	"github.com/weisyn/wallet/pkg/types"
)

// recordingObserver 记录收到的全部通知
type recordingObserver struct {
	mu     sync.Mutex
	values []bool
}

func (o *recordingObserver) OnBusyStateChanged(isBusy bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.values = append(o.values, isBusy)
}

func (o *recordingObserver) Values() []bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]bool(nil), o.values...)
}

type observerFunc func(bool)

func (f observerFunc) OnBusyStateChanged(isBusy bool) { f(isBusy) }

func newTestNotifier() *Notifier {
	return New(corelog.NewNop())
}

func TestNotifier_Register(t *testing.T) {
	n := newTestNotifier()

	t.Run("空观察者", func(t *testing.T) {
		_, err := n.Register(nil)
		assert.ErrorIs(t, err, ErrNilObserver)
	})

	t.Run("带类型的空指针观察者", func(t *testing.T) {
		var typed *recordingObserver
		_, err := n.Register(typed)
		assert.ErrorIs(t, err, ErrNilObserver)
		assert.Equal(t, 0, n.ObserverCount())
	})

	t.Run("注册与注销", func(t *testing.T) {
		id, err := n.Register(&recordingObserver{})
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, 1, n.ObserverCount())

		require.NoError(t, n.Unregister(id))
		assert.Equal(t, 0, n.ObserverCount())

		assert.ErrorIs(t, n.Unregister(id), ErrObserverNotFound)
		assert.ErrorIs(t, n.Unregister(types.ObserverID("unknown")), ErrObserverNotFound)
	})
}

func TestNotifier_BeginRelease(t *testing.T) {
	n := newTestNotifier()
	obs := &recordingObserver{}
	_, err := n.Register(obs)
	require.NoError(t, err)

	assert.False(t, n.IsBusy(), "初始状态为空闲")

	release1 := n.Begin("sync")
	assert.True(t, n.IsBusy())
	release2 := n.Begin("rescan")
	assert.Equal(t, []bool{true}, obs.Values(), "嵌套操作只通知一次")
	assert.Len(t, n.ActiveOperations(), 2)

	release1()
	assert.True(t, n.IsBusy(), "仍有操作进行中")
	assert.Equal(t, []bool{true}, obs.Values())

	release2()
	assert.False(t, n.IsBusy())
	assert.Equal(t, []bool{true, false}, obs.Values())

	// 重复释放无副作用
	release1()
	release2()
	assert.Equal(t, []bool{true, false}, obs.Values())
	assert.Empty(t, n.ActiveOperations())
}

func TestNotifier_TryBegin(t *testing.T) {
	n := newTestNotifier()

	release, err := n.TryBegin("sync")
	require.NoError(t, err)

	_, err = n.TryBegin("sync")
	assert.ErrorIs(t, err, ErrWalletBusy)

	release()
	release, err = n.TryBegin("sync")
	require.NoError(t, err)
	release()
}

func TestNotifier_Track(t *testing.T) {
	n := newTestNotifier()
	obs := &recordingObserver{}
	_, err := n.Register(obs)
	require.NoError(t, err)

	t.Run("执行期间为忙碌", func(t *testing.T) {
		var busyDuring bool
		err := n.Track(context.Background(), "sync", func(ctx context.Context) error {
			busyDuring = n.IsBusy()
			return nil
		})
		require.NoError(t, err)
		assert.True(t, busyDuring)
		assert.False(t, n.IsBusy())
	})

	t.Run("返回任务错误并恢复空闲", func(t *testing.T) {
		boom := errors.New("boom")
		err := n.Track(context.Background(), "sync", func(ctx context.Context) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.False(t, n.IsBusy())
	})

	t.Run("已取消的上下文不开始任务", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := n.Track(ctx, "sync", func(ctx context.Context) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	assert.Equal(t, []bool{true, false, true, false}, obs.Values())
}

func TestNotifier_PanickingObserver(t *testing.T) {
	n := newTestNotifier()
	first := &recordingObserver{}
	last := &recordingObserver{}

	_, err := n.Register(first)
	require.NoError(t, err)
	_, err = n.Register(observerFunc(func(bool) { panic("observer failure") }))
	require.NoError(t, err)
	_, err = n.Register(last)
	require.NoError(t, err)

	release := n.Begin("sync")
	release()

	assert.Equal(t, []bool{true, false}, first.Values())
	assert.Equal(t, []bool{true, false}, last.Values(), "panic不影响后续观察者")
}

func TestNotifier_UnregisterStopsDelivery(t *testing.T) {
	n := newTestNotifier()
	obs := &recordingObserver{}
	id, err := n.Register(obs)
	require.NoError(t, err)

	release := n.Begin("sync")
	require.NoError(t, n.Unregister(id))
	release()

	assert.Equal(t, []bool{true}, obs.Values())
}

func TestNotifier_ReentrantCallbacks(t *testing.T) {
	n := newTestNotifier()

	var seen []bool
	var lateID types.ObserverID
	late := &recordingObserver{}

	_, err := n.Register(observerFunc(func(isBusy bool) {
		// 回调内读取状态和注册新观察者
		seen = append(seen, n.IsBusy())
		if isBusy {
			lateID, _ = n.Register(late)
		}
	}))
	require.NoError(t, err)

	release := n.Begin("sync")
	release()

	assert.Equal(t, []bool{true, false}, seen)
	assert.NotEmpty(t, lateID)
	assert.Equal(t, []bool{false}, late.Values(), "新注册的观察者从下一次翻转开始接收")
}

func TestNotifier_Snapshot(t *testing.T) {
	n := newTestNotifier()

	snapshot := n.Snapshot()
	assert.False(t, snapshot.Busy)
	assert.Empty(t, snapshot.Operations)

	release := n.Begin("sync")
	defer release()

	snapshot = n.Snapshot()
	assert.True(t, snapshot.Busy)
	require.Len(t, snapshot.Operations, 1)
	assert.Equal(t, "sync", snapshot.Operations[0].Name)
	assert.False(t, snapshot.Operations[0].StartedAt.IsZero())
}

func TestNotifier_ConcurrentOperations(t *testing.T) {
	n := newTestNotifier()
	obs := &recordingObserver{}
	_, err := n.Register(obs)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = n.Track(context.Background(), "worker", func(context.Context) error { return nil })
		}()
	}
	wg.Wait()

	values := obs.Values()
	require.NotEmpty(t, values)
	assert.False(t, n.IsBusy())
	assert.False(t, values[len(values)-1], "最终状态为空闲")
	for i := 1; i < len(values); i++ {
		assert.NotEqual(t, values[i-1], values[i], "通知严格交替")
	}
}
