package status

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/wallet/internal/cli/ui"
	infralog "github.com/weisyn/wallet/internal/core/infrastructure/log"
	"github.com/weisyn/wallet/internal/core/wallet/busy"
)

// fakeSpinner 记录动画调用
type fakeSpinner struct {
	message  string
	started  bool
	success  string
	stopped  bool
	startErr error
}

func (s *fakeSpinner) Start() error {
	if s.startErr != nil {
		return s.startErr
	}
	s.started = true
	return nil
}
func (s *fakeSpinner) UpdateText(text string) error { s.message = text; return nil }
func (s *fakeSpinner) Stop() error                  { s.stopped = true; return nil }
func (s *fakeSpinner) Success(message string) error { s.success = message; return nil }
func (s *fakeSpinner) Fail(string) error            { return nil }

type spinnerRecorder struct {
	mu       sync.Mutex
	spinners []*fakeSpinner
	startErr error
}

func (r *spinnerRecorder) factory(message string) ui.Spinner {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &fakeSpinner{message: message, startErr: r.startErr}
	r.spinners = append(r.spinners, s)
	return s
}

func TestBusyIndicator(t *testing.T) {
	t.Run("忙碌启动动画，空闲结束动画", func(t *testing.T) {
		rec := &spinnerRecorder{}
		indicator := NewBusyIndicatorWithFactory(rec.factory, "zh-CN", infralog.NewNop())

		assert.False(t, indicator.IsBusy())

		indicator.OnBusyStateChanged(true)
		require.Len(t, rec.spinners, 1)
		assert.True(t, rec.spinners[0].started)
		assert.Equal(t, "钱包忙碌中，请稍候...", rec.spinners[0].message)
		assert.True(t, indicator.IsBusy())

		indicator.OnBusyStateChanged(false)
		assert.Equal(t, "钱包已空闲", rec.spinners[0].success)
		assert.False(t, indicator.IsBusy())
	})

	t.Run("重复忙碌通知不重启动画", func(t *testing.T) {
		rec := &spinnerRecorder{}
		indicator := NewBusyIndicatorWithFactory(rec.factory, "en-US", nil)

		indicator.OnBusyStateChanged(true)
		indicator.OnBusyStateChanged(true)
		assert.Len(t, rec.spinners, 1)
		assert.Equal(t, "Wallet is busy, please wait...", rec.spinners[0].message)
	})

	t.Run("未忙碌时空闲通知不创建动画", func(t *testing.T) {
		rec := &spinnerRecorder{}
		indicator := NewBusyIndicatorWithFactory(rec.factory, "zh-CN", nil)

		indicator.OnBusyStateChanged(false)
		assert.Empty(t, rec.spinners)
	})

	t.Run("动画启动失败仍记录状态", func(t *testing.T) {
		rec := &spinnerRecorder{startErr: errors.New("no tty")}
		indicator := NewBusyIndicatorWithFactory(rec.factory, "zh-CN", infralog.NewNop())

		indicator.OnBusyStateChanged(true)
		assert.True(t, indicator.IsBusy())

		// 下一次忙碌重新尝试
		indicator.OnBusyStateChanged(false)
		indicator.OnBusyStateChanged(true)
		assert.Len(t, rec.spinners, 2)
	})

	t.Run("Close停止运行中的动画", func(t *testing.T) {
		rec := &spinnerRecorder{}
		indicator := NewBusyIndicatorWithFactory(rec.factory, "zh-CN", nil)

		indicator.OnBusyStateChanged(true)
		indicator.Close()
		assert.True(t, rec.spinners[0].stopped)
	})
}

func TestBusyIndicator_WithNotifier(t *testing.T) {
	rec := &spinnerRecorder{}
	indicator := NewBusyIndicatorWithFactory(rec.factory, "zh-CN", nil)

	notifier := busy.New(infralog.NewNop())
	_, err := notifier.Register(indicator)
	require.NoError(t, err)

	release := notifier.Begin("sync")
	assert.True(t, indicator.IsBusy())
	release()
	assert.False(t, indicator.IsBusy())

	require.Len(t, rec.spinners, 1)
	assert.Equal(t, "钱包已空闲", rec.spinners[0].success)
}
