// Package metrics 提供进程级 Prometheus 注册表
//
// 所有指标注册到同一个独立注册表，由 HTTP API 的 /metrics 端点导出。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// ModuleOutput 指标模块输出
type ModuleOutput struct {
	fx.Out

	Registry   *prometheus.Registry
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// Module 返回指标模块
func Module() fx.Option {
	return fx.Module("metrics",
		fx.Provide(ProvideRegistry),
	)
}

// ProvideRegistry 创建注册表并注册运行时采集器
func ProvideRegistry() ModuleOutput {
	registry := NewRegistry()
	return ModuleOutput{
		Registry:   registry,
		Registerer: registry,
		Gatherer:   registry,
	}
}

// NewRegistry 创建带 Go 运行时与进程采集器的注册表
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}
