package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventconfig "github.com/weisyn/wallet/internal/config/event"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/wallet/pkg/types"
)

// 简单的测试函数，用于验证事件处理
func TestEventBus(t *testing.T) {
	eventBus := New(eventconfig.New(nil)) // 使用默认配置

	t.Run("同步事件处理", func(t *testing.T) {
		var receivedData string
		handler := func(data string) {
			receivedData = data
		}

		require.NoError(t, eventBus.Subscribe(event.EventType("test-event"), handler))
		eventBus.Publish(event.EventType("test-event"), "hello world")
		assert.Equal(t, "hello world", receivedData)

		// 取消订阅后不再接收事件
		require.NoError(t, eventBus.Unsubscribe(event.EventType("test-event"), handler))
		receivedData = ""
		eventBus.Publish(event.EventType("test-event"), "should not receive")
		assert.Empty(t, receivedData)
	})

	t.Run("异步事件处理", func(t *testing.T) {
		var mu sync.Mutex
		var asyncData string
		asyncHandler := func(data string) {
			time.Sleep(20 * time.Millisecond)
			mu.Lock()
			asyncData = data
			mu.Unlock()
		}

		require.NoError(t, eventBus.SubscribeAsync(event.EventType("async-event"), asyncHandler, false))
		eventBus.Publish(event.EventType("async-event"), "async data")
		eventBus.WaitAsync()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "async data", asyncData)
	})

	t.Run("发布Event接口事件", func(t *testing.T) {
		var received *types.BusyStateEvent
		require.NoError(t, eventBus.Subscribe(types.WalletBusyChanged, func(e *types.BusyStateEvent) {
			received = e
		}))

		eventBus.PublishEvent(&types.BusyStateEvent{ID: "evt-1", Busy: true, Timestamp: time.Now()})
		require.NotNil(t, received)
		assert.Equal(t, "evt-1", received.ID)
		assert.True(t, received.Busy)
		assert.True(t, eventBus.HasCallback(types.WalletBusyChanged))
	})

	assert.GreaterOrEqual(t, eventBus.Stats().TotalEvents, uint64(3))
}

func TestEventBus_MaxSubscribers(t *testing.T) {
	eventBus := New(eventconfig.New(&eventconfig.EventOptions{Enabled: true, MaxSubscribers: 1}))

	first := func(bool) {}
	require.NoError(t, eventBus.Subscribe("limited", first))

	err := eventBus.Subscribe("limited", func(bool) {})
	assert.ErrorIs(t, err, ErrTooManySubscribers)

	// 取消订阅后名额释放
	require.NoError(t, eventBus.Unsubscribe("limited", first))
	assert.NoError(t, eventBus.Subscribe("limited", func(bool) {}))
}

func TestEventBus_Disabled(t *testing.T) {
	eventBus := New(eventconfig.New(&types.UserEventConfig{Enabled: types.BoolPtr(false)}))

	called := false
	require.NoError(t, eventBus.Subscribe("any", func() { called = true }))
	eventBus.Publish("any")

	assert.False(t, called)
	assert.False(t, eventBus.HasCallback("any"))
	assert.Zero(t, eventBus.Stats().TotalEvents)
}

func TestEventBus_Lifecycle(t *testing.T) {
	eventBus := New(nil)
	ctx := context.Background()

	require.NoError(t, eventBus.Start(ctx))
	assert.True(t, eventBus.IsRunning())
	assert.Error(t, eventBus.Start(ctx), "重复启动应报错")

	require.NoError(t, eventBus.Stop(ctx))
	assert.False(t, eventBus.IsRunning())
	assert.Error(t, eventBus.Stop(ctx), "未运行时停止应报错")
}

func TestEventBus_StartIgnoresContext(t *testing.T) {
	eventBus := New(nil)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, eventBus.Start(ctx))
	cancel()

	received := 0
	require.NoError(t, eventBus.Subscribe("wallet.test", func() { received++ }))
	eventBus.Publish("wallet.test")
	assert.True(t, eventBus.IsRunning(), "启动上下文取消后仍在运行")
	assert.Equal(t, 1, received)

	t.Run("停止后可再次启动", func(t *testing.T) {
		require.NoError(t, eventBus.Stop(context.Background()))
		require.NoError(t, eventBus.Start(context.Background()))
		assert.True(t, eventBus.IsRunning())
	})
}
