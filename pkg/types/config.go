package types

import "time"

// AppConfig 应用配置（对应配置文件的顶层结构）
//
// 🔧 零值陷阱处理说明：
// 所有字段均为指针类型，用于区分"用户未设置"和"用户设置为零值"：
// - nil: 用户未在配置文件中设置该字段，使用系统默认值
// - &value: 用户明确设置了该值，即使是零值（如0、false、""）也会被采用
type AppConfig struct {
	AppName     *string `json:"app_name,omitempty" mapstructure:"app_name"`         // 应用名称
	DataDir     *string `json:"data_dir,omitempty" mapstructure:"data_dir"`         // 数据目录路径
	Environment *string `json:"environment,omitempty" mapstructure:"environment"` // 运行环境：dev | test | prod

	Log    *UserLogConfig    `json:"log,omitempty" mapstructure:"log"`       // 日志配置
	Event  *UserEventConfig  `json:"event,omitempty" mapstructure:"event"`   // 事件总线配置
	Wallet *UserWalletConfig `json:"wallet,omitempty" mapstructure:"wallet"` // 钱包状态配置
	API    *UserAPIConfig    `json:"api,omitempty" mapstructure:"api"`       // API服务配置
	CLI    *UserCLIConfig    `json:"cli,omitempty" mapstructure:"cli"`       // 命令行配置
}

// UserLogConfig 用户日志配置
// 只包含JSON配置文件中实际出现的字段
type UserLogConfig struct {
	Level     *string `json:"level,omitempty" mapstructure:"level"`           // 日志级别：debug, info, warn, error, fatal
	FilePath  *string `json:"file_path,omitempty" mapstructure:"file_path"`   // 日志文件路径
	ToConsole *bool   `json:"to_console,omitempty" mapstructure:"to_console"` // 是否输出到控制台
}

// UserEventConfig 用户事件总线配置
type UserEventConfig struct {
	Enabled *bool `json:"enabled,omitempty" mapstructure:"enabled"` // 是否启用事件总线
}

// UserWalletConfig 用户钱包状态配置
type UserWalletConfig struct {
	SyncInterval *time.Duration     `json:"sync_interval,omitempty" mapstructure:"sync_interval"` // 自动同步间隔（0表示关闭）
	SyncDuration *time.Duration     `json:"sync_duration,omitempty" mapstructure:"sync_duration"` // 占位同步任务耗时
	Redis        *UserRedisConfig   `json:"redis,omitempty" mapstructure:"redis"`                 // 跨进程广播（可选）
	Metrics      *UserMetricsConfig `json:"metrics,omitempty" mapstructure:"metrics"`             // 指标配置
}

// UserRedisConfig 用户Redis广播配置
type UserRedisConfig struct {
	Enabled  *bool   `json:"enabled,omitempty" mapstructure:"enabled"`
	Addr     *string `json:"addr,omitempty" mapstructure:"addr"`
	Password *string `json:"password,omitempty" mapstructure:"password"`
	DB       *int    `json:"db,omitempty" mapstructure:"db"`
	Channel  *string `json:"channel,omitempty" mapstructure:"channel"`
	StateKey *string `json:"state_key,omitempty" mapstructure:"state_key"`
}

// UserMetricsConfig 用户指标配置
type UserMetricsConfig struct {
	Enabled   *bool   `json:"enabled,omitempty" mapstructure:"enabled"`
	Namespace *string `json:"namespace,omitempty" mapstructure:"namespace"`
}

// UserAPIConfig 用户API服务配置
type UserAPIConfig struct {
	Enabled       *bool   `json:"enabled,omitempty" mapstructure:"enabled"`               // 是否启用HTTP API
	ListenAddr    *string `json:"listen_addr,omitempty" mapstructure:"listen_addr"`       // 监听地址
	EnableWS      *bool   `json:"enable_ws,omitempty" mapstructure:"enable_ws"`           // 是否启用WebSocket推送
	EnableMetrics *bool   `json:"enable_metrics,omitempty" mapstructure:"enable_metrics"` // 是否暴露 /metrics
}

// UserCLIConfig 用户命令行配置
type UserCLIConfig struct {
	Language     *string `json:"language,omitempty" mapstructure:"language"`           // 界面语言：zh-CN | en-US
	EnableColors *bool   `json:"enable_colors,omitempty" mapstructure:"enable_colors"` // 是否启用颜色
	ShowSpinner  *bool   `json:"show_spinner,omitempty" mapstructure:"show_spinner"`   // 忙碌时是否显示加载动画
}

// StringPtr 创建字符串指针，用于明确表示用户设置了该值
func StringPtr(v string) *string {
	return &v
}

// BoolPtr 创建布尔指针
func BoolPtr(v bool) *bool {
	return &v
}

// IntPtr 创建整数指针
func IntPtr(v int) *int {
	return &v
}

// DurationPtr 创建时长指针
func DurationPtr(v time.Duration) *time.Duration {
	return &v
}
