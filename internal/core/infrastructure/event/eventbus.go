// 基于asaskevich/EventBus的事件总线实现
// 在原生总线之上增加：配置开关、订阅数量上限、生命周期管理和简单指标

package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	evbus "github.com/asaskevich/EventBus"

	eventconfig "github.com/weisyn/wallet/internal/config/event"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/event"
)

var (
	// ErrTooManySubscribers 单个事件类型的订阅者超过上限
	ErrTooManySubscribers = errors.New("too many subscribers for event type")
	// ErrNilEvent 发布了空事件
	ErrNilEvent = errors.New("event cannot be nil")
)

// EventBus 是基于asaskevich/EventBus的实现
//
// 🎯 **增强特性**：
// - 保持与原有asaskevich/EventBus的完全兼容
// - 事件系统关闭时所有操作静默成功
// - 按事件类型限制订阅者数量
// - 增加生命周期管理能力
type EventBus struct {
	// ================== 基础组件 ==================
	bus    evbus.Bus           // 底层事件总线
	config *eventconfig.Config // 配置

	// ================== 订阅计数 ==================
	subMu       sync.Mutex
	subscribers map[event.EventType]int

	// ================== 生命周期 ==================
	running atomic.Bool // 运行状态

	// 指标统计
	metrics *eventMetrics
}

var _ event.EventBus = (*EventBus)(nil)

// eventMetrics 简化的事件指标
type eventMetrics struct {
	totalEvents      atomic.Uint64
	measurementStart time.Time
	lastPublished    atomic.Pointer[time.Time]
}

// Stats 事件总线统计快照
type Stats struct {
	TotalEvents      uint64
	MeasurementStart time.Time
	LastPublished    *time.Time
}

// New 创建事件总线实例
// 所有事件总线实例必须通过此函数创建，确保配置被正确应用
func New(config *eventconfig.Config) *EventBus {
	if config == nil {
		config = eventconfig.New(nil)
	}
	return &EventBus{
		bus:         evbus.New(),
		config:      config,
		subscribers: make(map[event.EventType]int),
		metrics:     &eventMetrics{measurementStart: time.Now()},
	}
}

// reserve 占用一个订阅名额
func (eb *EventBus) reserve(eventType event.EventType) error {
	eb.subMu.Lock()
	defer eb.subMu.Unlock()

	if max := eb.config.GetMaxSubscribers(); max > 0 && eb.subscribers[eventType] >= max {
		return fmt.Errorf("%w: %s (max %d)", ErrTooManySubscribers, eventType, max)
	}
	eb.subscribers[eventType]++
	return nil
}

// release 归还一个订阅名额
func (eb *EventBus) release(eventType event.EventType) {
	eb.subMu.Lock()
	defer eb.subMu.Unlock()

	if eb.subscribers[eventType] > 1 {
		eb.subscribers[eventType]--
		return
	}
	delete(eb.subscribers, eventType)
}

// subscribe 统一的订阅流程：检查开关、占用名额、调用底层订阅
func (eb *EventBus) subscribe(eventType event.EventType, fn func(topic string) error) error {
	if !eb.config.IsEnabled() {
		return nil // 如果事件系统未启用，静默成功
	}
	if err := eb.reserve(eventType); err != nil {
		return err
	}
	if err := fn(string(eventType)); err != nil {
		eb.release(eventType)
		return err
	}
	return nil
}

// Subscribe 实现订阅
func (eb *EventBus) Subscribe(eventType event.EventType, handler interface{}) error {
	return eb.subscribe(eventType, func(topic string) error {
		return eb.bus.Subscribe(topic, handler)
	})
}

// SubscribeAsync 实现异步订阅
func (eb *EventBus) SubscribeAsync(eventType event.EventType, handler interface{}, transactional bool) error {
	return eb.subscribe(eventType, func(topic string) error {
		return eb.bus.SubscribeAsync(topic, handler, transactional)
	})
}

// SubscribeOnce 实现一次性订阅
// 一次性订阅触发后由底层总线移除，不占用订阅名额
func (eb *EventBus) SubscribeOnce(eventType event.EventType, handler interface{}) error {
	if !eb.config.IsEnabled() {
		return nil
	}
	return eb.bus.SubscribeOnce(string(eventType), handler)
}

// Publish 实现发布
func (eb *EventBus) Publish(eventType event.EventType, args ...interface{}) {
	if !eb.config.IsEnabled() {
		return
	}

	eb.bus.Publish(string(eventType), args...)

	now := time.Now()
	eb.metrics.totalEvents.Add(1)
	eb.metrics.lastPublished.Store(&now)
}

// PublishEvent 发布Event接口类型事件，处理器收到 e.Data()
func (eb *EventBus) PublishEvent(e event.Event) {
	if e == nil {
		return
	}
	eb.Publish(e.Type(), e.Data())
}

// Unsubscribe 取消订阅
func (eb *EventBus) Unsubscribe(eventType event.EventType, handler interface{}) error {
	if !eb.config.IsEnabled() {
		return nil
	}
	if err := eb.bus.Unsubscribe(string(eventType), handler); err != nil {
		return err
	}
	eb.release(eventType)
	return nil
}

// WaitAsync 等待异步处理完成
func (eb *EventBus) WaitAsync() {
	if !eb.config.IsEnabled() {
		return
	}
	eb.bus.WaitAsync()
}

// HasCallback 检查是否有回调
func (eb *EventBus) HasCallback(eventType event.EventType) bool {
	if !eb.config.IsEnabled() {
		return false
	}
	return eb.bus.HasCallback(string(eventType))
}

// ==================== 生命周期 ====================

// Start 启动事件总线
//
// 总线不持有后台协程，启动只切换运行状态，不依赖传入的上下文。
func (eb *EventBus) Start(context.Context) error {
	if !eb.running.CompareAndSwap(false, true) {
		return fmt.Errorf("event bus already running")
	}
	return nil
}

// Stop 停止事件总线
func (eb *EventBus) Stop(ctx context.Context) error {
	if !eb.running.CompareAndSwap(true, false) {
		return fmt.Errorf("event bus not running")
	}

	// 等待异步处理完成，超时则放弃等待
	done := make(chan struct{})
	go func() {
		eb.WaitAsync()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsRunning 检查事件总线是否运行中
func (eb *EventBus) IsRunning() bool {
	return eb.running.Load()
}

// Stats 返回事件统计
func (eb *EventBus) Stats() Stats {
	return Stats{
		TotalEvents:      eb.metrics.totalEvents.Load(),
		MeasurementStart: eb.metrics.measurementStart,
		LastPublished:    eb.metrics.lastPublished.Load(),
	}
}
