// Package status 命令行忙碌状态提示
package status

import (
	"sync"

	"github.com/weisyn/wallet/internal/cli/ui"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
)

// SpinnerFactory 创建加载动画
type SpinnerFactory func(message string) ui.Spinner

// indicatorText 提示文本
type indicatorText struct {
	busy string
	idle string
}

var indicatorTexts = map[string]indicatorText{
	"zh-CN": {busy: "钱包忙碌中，请稍候...", idle: "钱包已空闲"},
	"en-US": {busy: "Wallet is busy, please wait...", idle: "Wallet is idle"},
}

// BusyIndicator 界面刷新观察者
//
// 钱包进入忙碌时启动加载动画，回到空闲时以成功提示结束。
// 重复的同值通知不会重启动画。
type BusyIndicator struct {
	mu         sync.Mutex
	newSpinner SpinnerFactory
	text       indicatorText
	logger     log.Logger

	active ui.Spinner
	busy   bool
}

var _ wallet.BusyStateObserver = (*BusyIndicator)(nil)

// NewBusyIndicator 使用UI组件创建忙碌提示
func NewBusyIndicator(components ui.Components, language string, logger log.Logger) *BusyIndicator {
	return NewBusyIndicatorWithFactory(components.ShowSpinner, language, logger)
}

// NewBusyIndicatorWithFactory 使用自定义动画工厂创建忙碌提示
func NewBusyIndicatorWithFactory(factory SpinnerFactory, language string, logger log.Logger) *BusyIndicator {
	text, ok := indicatorTexts[language]
	if !ok {
		text = indicatorTexts["zh-CN"]
	}
	return &BusyIndicator{
		newSpinner: factory,
		text:       text,
		logger:     logger,
	}
}

// OnBusyStateChanged 实现 wallet.BusyStateObserver
func (b *BusyIndicator) OnBusyStateChanged(isBusy bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.busy = isBusy
	if isBusy {
		if b.active != nil {
			return
		}
		spinner := b.newSpinner(b.text.busy)
		if err := spinner.Start(); err != nil {
			b.warn("启动加载动画失败: %v", err)
			return
		}
		b.active = spinner
		return
	}

	if b.active == nil {
		return
	}
	if err := b.active.Success(b.text.idle); err != nil {
		b.warn("结束加载动画失败: %v", err)
	}
	b.active = nil
}

// IsBusy 最近一次收到的状态
func (b *BusyIndicator) IsBusy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.busy
}

// Close 停止仍在运行的动画
func (b *BusyIndicator) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.active != nil {
		_ = b.active.Stop()
		b.active = nil
	}
}

func (b *BusyIndicator) warn(format string, args ...interface{}) {
	if b.logger != nil {
		b.logger.Warnf(format, args...)
	}
}
