// scheduler.go - 钱包同步调度器
// 负责手动与定时触发钱包同步，同步期间钱包处于忙碌状态
package sync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	walletconfig "github.com/weisyn/wallet/internal/config/wallet"
	"github.com/weisyn/wallet/pkg/constants/events"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
	"github.com/weisyn/wallet/pkg/types"
)

// OperationName 同步操作在忙碌状态中的名称
const OperationName = "sync"

// Job 一次同步任务
type Job func(ctx context.Context) error

// Status 同步调度器状态
type Status struct {
	Running   bool          `json:"running"`
	Interval  time.Duration `json:"interval"`
	Runs      uint64        `json:"runs"`
	LastRunAt time.Time     `json:"last_run_at,omitempty"`
	LastError string        `json:"last_error,omitempty"`
}

// Scheduler 钱包同步调度器
type Scheduler struct {
	notifier wallet.BusyStateNotifier
	logger   log.Logger
	eventBus event.EventBus // 可选，发布同步结果
	interval time.Duration
	job      Job

	mu        sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
	isRunning bool

	// Trigger 启动的后台同步使用调度器持有的上下文，Stop 时取消
	triggerCtx    context.Context
	triggerCancel context.CancelFunc
	triggered     *sync.WaitGroup

	statsMu   sync.Mutex
	runs      uint64
	lastRunAt time.Time
	lastErr   error
}

// NewScheduler 创建同步调度器
//
// 未设置 job 时使用占位任务：等待 SyncDuration 或上下文取消。
func NewScheduler(notifier wallet.BusyStateNotifier, options *walletconfig.WalletOptions, logger log.Logger) *Scheduler {
	s := &Scheduler{
		notifier: notifier,
		logger:   logger,
	}
	if options != nil {
		s.interval = options.SyncInterval
		s.job = PlaceholderJob(options.SyncDuration)
	} else {
		s.job = PlaceholderJob(0)
	}
	return s
}

// SetJob 替换同步任务（必须在 Start 之前调用）
func (s *Scheduler) SetJob(job Job) {
	if job != nil {
		s.job = job
	}
}

// SetEventBus 设置同步结果的发布目标（必须在 Start 之前调用）
func (s *Scheduler) SetEventBus(bus event.EventBus) {
	s.eventBus = bus
}

// PlaceholderJob 模拟耗时的同步任务
func PlaceholderJob(duration time.Duration) Job {
	return func(ctx context.Context) error {
		if duration <= 0 {
			return nil
		}
		timer := time.NewTimer(duration)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
}

// RunOnce 执行一次同步
//
// 钱包已忙碌（包括另一次同步正在进行）时返回 busy.ErrWalletBusy。
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	release, err := s.notifier.TryBegin(OperationName)
	if err != nil {
		return err
	}
	defer release()

	return s.run(ctx)
}

// Trigger 在后台启动一次同步并立即返回
//
// 是否能开始由调用时刻决定：钱包忙碌时同步返回 busy.ErrWalletBusy。
// 后台同步不随调用方 ctx（通常是 HTTP 请求）取消，而是在 Stop 时取消。
func (s *Scheduler) Trigger(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	release, err := s.notifier.TryBegin(OperationName)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.triggerCtx == nil {
		s.triggerCtx, s.triggerCancel = context.WithCancel(context.Background())
		s.triggered = &sync.WaitGroup{}
	}
	runCtx, wg := s.triggerCtx, s.triggered
	wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer wg.Done()
		defer release()
		_ = s.run(runCtx)
	}()
	return nil
}

// run 执行同步任务并记录结果，调用方必须已持有忙碌标记
func (s *Scheduler) run(ctx context.Context) error {
	start := time.Now()
	if s.logger != nil {
		s.logger.Info("🔄 开始钱包同步")
	}

	err := s.job(ctx)
	s.record(start, err)
	s.publish(start, err)

	if err != nil {
		if s.logger != nil {
			s.logger.Warnf("钱包同步失败: %v", err)
		}
		return fmt.Errorf("wallet sync failed: %w", err)
	}

	if s.logger != nil {
		s.logger.Infof("✅ 钱包同步完成，耗时 %s", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// Start 启动定时同步，间隔为 0 时不启动
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if s.interval <= 0 {
		if s.logger != nil {
			s.logger.Info("⏰ 定时同步未启动：sync_interval=0")
		}
		return nil
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.isRunning = true

	go s.loop(loopCtx, s.done)

	if s.logger != nil {
		s.logger.Infof("✅ 定时同步调度器已启动: interval=%s", s.interval)
	}
	return nil
}

// Stop 停止定时同步，取消进行中的同步并等待其退出
//
// ctx 结束时放弃等待并返回 ctx 的错误，已取消的同步仍会在后台收尾。
// 重复调用无副作用。
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	var done chan struct{}
	if s.isRunning {
		s.cancel()
		done = s.done
		s.isRunning = false
	}
	triggered := s.triggered
	if s.triggerCancel != nil {
		s.triggerCancel()
	}
	s.triggerCtx, s.triggerCancel, s.triggered = nil, nil, nil
	s.mu.Unlock()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		if done != nil {
			<-done
		}
		if triggered != nil {
			triggered.Wait()
		}
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		if s.logger != nil {
			s.logger.Warnf("等待钱包同步退出超时: %v", ctx.Err())
		}
		return fmt.Errorf("wait for wallet sync to stop: %w", ctx.Err())
	}
}

// Status 返回调度器状态
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	running := s.isRunning
	s.mu.Unlock()

	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	status := Status{
		Running:   running,
		Interval:  s.interval,
		Runs:      s.runs,
		LastRunAt: s.lastRunAt,
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}
	return status
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := s.RunOnce(ctx)
			if err != nil && s.logger != nil && !errors.Is(err, context.Canceled) {
				s.logger.Debugf("定时同步跳过或失败: %v", err)
			}
		}
	}
}

func (s *Scheduler) record(start time.Time, err error) {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	s.runs++
	s.lastRunAt = start
	s.lastErr = err
}

// publish 发布同步结果事件
func (s *Scheduler) publish(start time.Time, err error) {
	if s.eventBus == nil {
		return
	}

	result := &types.SyncResultEvent{
		StartedAt: start,
		Duration:  time.Since(start),
	}
	eventType := events.EventTypeWalletSyncCompleted
	if err != nil {
		result.Error = err.Error()
		eventType = events.EventTypeWalletSyncFailed
	}
	s.eventBus.Publish(eventType, result)
}
