package observers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/weisyn/wallet/pkg/interfaces/wallet"
)

// Metrics 把忙碌状态导出为 Prometheus 指标
//
// 指标：
//   - <namespace>_busy: 当前状态（1 忙碌，0 空闲）
//   - <namespace>_busy_transitions_total{state}: 翻转次数
type Metrics struct {
	busyGauge   prometheus.Gauge
	transitions *prometheus.CounterVec
}

var _ wallet.BusyStateObserver = (*Metrics)(nil)

// NewMetrics 创建指标观察者并注册到 registerer
func NewMetrics(registerer prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		busyGauge: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "busy",
			Help:      "Whether the wallet is currently busy (1) or idle (0)",
		}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "busy_transitions_total",
			Help:      "Total number of wallet busy state transitions",
		}, []string{"state"}),
	}
}

// OnBusyStateChanged 更新指标
func (m *Metrics) OnBusyStateChanged(isBusy bool) {
	if isBusy {
		m.busyGauge.Set(1)
		m.transitions.WithLabelValues("busy").Inc()
		return
	}
	m.busyGauge.Set(0)
	m.transitions.WithLabelValues("idle").Inc()
}
