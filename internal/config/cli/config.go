package cli

import "github.com/weisyn/wallet/pkg/types"

// CLIOptions CLI配置选项
type CLIOptions struct {
	Language     string `json:"language"`      // 界面语言
	EnableColors bool   `json:"enable_colors"` // 是否启用颜色
	ShowSpinner  bool   `json:"show_spinner"`  // 忙碌时是否显示加载动画
}

// Config CLI配置实现
type Config struct {
	options *CLIOptions
}

// New 创建CLI配置实现
func New(userConfig *types.UserCLIConfig) *Config {
	config := &Config{
		options: &CLIOptions{
			Language:     defaultLanguage,
			EnableColors: defaultEnableColors,
			ShowSpinner:  defaultShowSpinner,
		},
	}

	if userConfig != nil {
		config.applyUserConfig(userConfig)
	}

	return config
}

// applyUserConfig 应用用户配置覆盖默认值
func (c *Config) applyUserConfig(userConfig *types.UserCLIConfig) {
	if userConfig.Language != nil && *userConfig.Language != "" {
		c.options.Language = *userConfig.Language
	}
	if userConfig.EnableColors != nil {
		c.options.EnableColors = *userConfig.EnableColors
	}
	if userConfig.ShowSpinner != nil {
		c.options.ShowSpinner = *userConfig.ShowSpinner
	}
}

// GetOptions 获取完整的CLI配置选项
func (c *Config) GetOptions() *CLIOptions {
	return c.options
}

// GetLanguage 获取界面语言
func (c *Config) GetLanguage() string {
	return c.options.Language
}

// IsColorsEnabled 是否启用颜色
func (c *Config) IsColorsEnabled() bool {
	return c.options.EnableColors
}
