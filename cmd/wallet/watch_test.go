package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wsapi "github.com/weisyn/wallet/internal/api/websocket"
	infralog "github.com/weisyn/wallet/internal/core/infrastructure/log"
	"github.com/weisyn/wallet/internal/core/wallet/busy"
	"github.com/weisyn/wallet/internal/core/wallet/busy/observers"
)

func newHubServer(t *testing.T) (*busy.Notifier, *wsapi.Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	notifier := busy.New(infralog.NewNop())
	hub := wsapi.NewHub(notifier, nil)
	_, err := notifier.Register(hub)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/ws", hub.HandleWebSocket)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return notifier, hub, "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
}

func TestWatchBusyState(t *testing.T) {
	notifier, hub, url := newHubServer(t)
	recorder := observers.NewRecorder()

	snapshots := make(chan wsapi.BusyStateMessage, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- watchBusyState(context.Background(), url, recorder, func(msg wsapi.BusyStateMessage) {
			snapshots <- msg
		})
	}()

	select {
	case msg := <-snapshots:
		assert.False(t, msg.Busy)
	case <-time.After(2 * time.Second):
		t.Fatal("未收到快照")
	}

	release := notifier.Begin("sync")
	require.Eventually(t, recorder.IsBusy, 2*time.Second, 10*time.Millisecond)

	release()
	require.Eventually(t, func() bool { return !recorder.IsBusy() }, 2*time.Second, 10*time.Millisecond)

	t.Run("服务端关闭后正常返回", func(t *testing.T) {
		hub.Close()
		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("订阅未退出")
		}
	})
}

func TestWatchBusyState_Cancel(t *testing.T) {
	_, _, url := newHubServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- watchBusyState(ctx, url, observers.NewRecorder(), nil)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("取消后订阅未退出")
	}
}

func TestWatchBusyState_DialError(t *testing.T) {
	err := watchBusyState(context.Background(), "ws://127.0.0.1:1/ws", observers.NewRecorder(), nil)
	assert.Error(t, err)
}

func TestInterpretSyncResponse(t *testing.T) {
	t.Run("受理", func(t *testing.T) {
		assert.NoError(t, interpretSyncResponse(http.StatusAccepted, strings.NewReader(`{}`)))
	})

	t.Run("忙碌", func(t *testing.T) {
		assert.ErrorIs(t, interpretSyncResponse(http.StatusConflict, strings.NewReader(`{}`)), errRemoteBusy)
	})

	t.Run("服务错误带消息", func(t *testing.T) {
		err := interpretSyncResponse(http.StatusInternalServerError,
			strings.NewReader(`{"error":{"code":"INTERNAL","message":"boom"}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}
