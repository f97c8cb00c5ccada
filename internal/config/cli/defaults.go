package cli

const (
	// defaultLanguage 默认界面语言
	defaultLanguage = "zh-CN"

	defaultEnableColors = true
	defaultShowSpinner  = true
)
