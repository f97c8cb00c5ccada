package ui

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/pterm/pterm"
)

// ShowKeyValuePairs 显示键值对，按键排序
func (c *components) ShowKeyValuePairs(title string, pairs map[string]string) error {
	if title != "" {
		pterm.DefaultHeader.WithWriter(c.writer).
			WithBackgroundStyle(pterm.NewStyle(c.theme.PrimaryColor)).
			Println(title)
	}

	keys := make([]string, 0, len(pairs))
	for key := range pairs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	data := [][]string{{"项目", "值"}}
	for _, key := range keys {
		data = append(data, []string{key, pairs[key]})
	}

	return pterm.DefaultTable.WithWriter(c.writer).
		WithHasHeader().
		WithHeaderRowSeparator("-").
		WithData(data).
		Render()
}

// ShowSuccess 显示成功消息
func (c *components) ShowSuccess(message string) error {
	c.prefixed(pterm.Success, "SUCCESS", c.theme.SuccessColor).Println(message)
	return nil
}

// ShowError 显示错误消息
func (c *components) ShowError(message string) error {
	c.prefixed(pterm.Error, "ERROR", c.theme.ErrorColor).Println(message)
	return nil
}

// ShowWarning 显示警告消息
func (c *components) ShowWarning(message string) error {
	c.prefixed(pterm.Warning, "WARNING", c.theme.WarningColor).Println(message)
	return nil
}

// ShowInfo 显示信息消息
func (c *components) ShowInfo(message string) error {
	c.prefixed(pterm.Info, "INFO", c.theme.InfoColor).Println(message)
	return nil
}

// ShowHeader 显示标题
func (c *components) ShowHeader(text string) error {
	pterm.DefaultHeader.WithWriter(c.writer).
		WithBackgroundStyle(pterm.NewStyle(c.theme.PrimaryColor)).
		WithMargin(2).
		Println(text)
	return nil
}

// ShowSpinner 创建加载动画（未启动）
func (c *components) ShowSpinner(message string) Spinner {
	if !c.interactive {
		return &lineSpinner{components: c, message: message}
	}
	return &spinnerImpl{message: message, theme: c.theme, writer: c.writer}
}

func (c *components) prefixed(printer pterm.PrefixPrinter, text string, color pterm.Color) *pterm.PrefixPrinter {
	return printer.WithWriter(c.writer).WithPrefix(pterm.Prefix{
		Text:  text,
		Style: pterm.NewStyle(color),
	})
}

// spinnerImpl 加载动画实现
type spinnerImpl struct {
	mu      sync.Mutex
	message string
	spinner *pterm.SpinnerPrinter
	theme   *ThemeConfig
	writer  io.Writer
}

func (s *spinnerImpl) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	s.spinner, err = pterm.DefaultSpinner.
		WithWriter(s.writer).
		WithText(s.message).
		WithStyle(pterm.NewStyle(s.theme.PrimaryColor)).
		WithRemoveWhenDone(true).
		Start()
	return err
}

func (s *spinnerImpl) UpdateText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spinner == nil {
		return fmt.Errorf("加载动画未启动")
	}
	s.message = text
	s.spinner.UpdateText(text)
	return nil
}

func (s *spinnerImpl) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spinner == nil {
		return nil
	}
	err := s.spinner.Stop()
	s.spinner = nil
	return err
}

func (s *spinnerImpl) Success(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spinner == nil {
		return fmt.Errorf("加载动画未启动")
	}
	s.spinner.Success(message)
	s.spinner = nil
	return nil
}

func (s *spinnerImpl) Fail(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spinner == nil {
		return fmt.Errorf("加载动画未启动")
	}
	s.spinner.Fail(message)
	s.spinner = nil
	return nil
}

// lineSpinner 非终端环境下的加载提示，每次状态变化输出一行
type lineSpinner struct {
	components *components
	message    string
}

func (s *lineSpinner) Start() error {
	return s.components.ShowInfo(s.message)
}

func (s *lineSpinner) UpdateText(text string) error {
	s.message = text
	return s.components.ShowInfo(text)
}

func (s *lineSpinner) Stop() error { return nil }

func (s *lineSpinner) Success(message string) error {
	return s.components.ShowSuccess(message)
}

func (s *lineSpinner) Fail(message string) error {
	return s.components.ShowError(message)
}
