// Package ui 终端展示组件
//
// 基于 pterm 的少量展示组件：键值表、状态消息、标题与加载动画。
// 输出非终端（管道、重定向）时自动关闭颜色，加载动画退化为逐行输出。
package ui

import (
	"io"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/log"
)

// Components UI组件接口
type Components interface {
	// 数据展示组件
	ShowKeyValuePairs(title string, pairs map[string]string) error

	// 进度反馈组件
	ShowSpinner(message string) Spinner

	// 状态显示组件
	ShowSuccess(message string) error
	ShowError(message string) error
	ShowWarning(message string) error
	ShowInfo(message string) error

	// 布局组件
	ShowHeader(text string) error
}

// Spinner 加载动画接口
type Spinner interface {
	Start() error
	UpdateText(text string) error
	Stop() error
	Success(message string) error
	Fail(message string) error
}

// ThemeConfig 主题配置
type ThemeConfig struct {
	PrimaryColor pterm.Color
	SuccessColor pterm.Color
	WarningColor pterm.Color
	ErrorColor   pterm.Color
	InfoColor    pterm.Color
}

// Options 组件选项
type Options struct {
	Writer       io.Writer // 默认 os.Stdout
	EnableColors bool
	ShowSpinner  bool // false 时加载动画退化为逐行输出
}

// components UI组件集合的具体实现
type components struct {
	logger      log.Logger
	theme       *ThemeConfig
	writer      io.Writer
	interactive bool
}

// NewComponents 创建UI组件实例
func NewComponents(logger log.Logger, opts Options) Components {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	interactive := IsTerminal(writer)
	if !opts.EnableColors || !interactive {
		pterm.DisableStyling()
	}

	return &components{
		logger:      logger,
		theme:       getDefaultTheme(),
		writer:      writer,
		interactive: interactive && opts.ShowSpinner,
	}
}

// IsTerminal 判断输出是否为交互式终端
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func getDefaultTheme() *ThemeConfig {
	return &ThemeConfig{
		PrimaryColor: pterm.FgBlue,
		SuccessColor: pterm.FgGreen,
		WarningColor: pterm.FgYellow,
		ErrorColor:   pterm.FgRed,
		InfoColor:    pterm.FgLightBlue,
	}
}
