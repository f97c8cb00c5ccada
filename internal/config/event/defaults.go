package event

// 事件系统默认配置值
const (
	// defaultEnabled 默认启用事件系统
	// 忙碌状态变化需要广播给多个组件，默认启用
	defaultEnabled = true

	// defaultMaxSubscribers 默认最大订阅者数量
	defaultMaxSubscribers = 100
)
