package observers

import (
	"time"

	"github.com/google/uuid"

	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
	"github.com/weisyn/wallet/pkg/types"
)

// EventPublisher 把状态翻转发布到事件总线
//
// 订阅方式：
//
//	bus.Subscribe(events.EventTypeWalletBusyChanged, func(e *types.BusyStateEvent) { ... })
type EventPublisher struct {
	bus event.EventBus
	now func() time.Time
}

var _ wallet.BusyStateObserver = (*EventPublisher)(nil)

// NewEventPublisher 创建事件发布观察者
func NewEventPublisher(bus event.EventBus) *EventPublisher {
	return &EventPublisher{bus: bus, now: time.Now}
}

// OnBusyStateChanged 发布 BusyStateEvent
func (p *EventPublisher) OnBusyStateChanged(isBusy bool) {
	if p.bus == nil {
		return
	}
	p.bus.PublishEvent(NewBusyStateEvent(isBusy, p.now()))
}

// NewBusyStateEvent 构造状态变化事件
func NewBusyStateEvent(isBusy bool, at time.Time) *types.BusyStateEvent {
	return &types.BusyStateEvent{
		ID:        uuid.New().String(),
		Busy:      isBusy,
		Timestamp: at.UTC(),
	}
}
