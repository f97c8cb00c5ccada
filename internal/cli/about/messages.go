package about

// 支持的语言
const (
	LanguageZhCN = "zh-CN"
	LanguageEnUS = "en-US"

	defaultLanguage = LanguageZhCN
)

// messageSet 单一语言的关于页文本
type messageSet struct {
	Prefix     string // 固定前缀，后接版本号
	Body       string
	TableTitle string

	LabelVersion   string
	LabelCommit    string
	LabelBuildTime string
	LabelBuildEnv  string
	LabelGoVersion string
	LabelPlatform  string
}

var messages = map[string]messageSet{
	LanguageZhCN: {
		Prefix: "WES 钱包 版本 ",
		Body: "本程序管理钱包状态，并向界面、指标、推送等观察者广播忙碌状态。\n" +
			"钱包忙碌（例如同步进行中）时，界面会提示并拒绝新的独占操作。",
		TableTitle:     "构建信息",
		LabelVersion:   "版本",
		LabelCommit:    "Git提交",
		LabelBuildTime: "构建时间",
		LabelBuildEnv:  "构建环境",
		LabelGoVersion: "Go版本",
		LabelPlatform:  "平台",
	},
	LanguageEnUS: {
		Prefix: "WES Wallet version ",
		Body: "This program manages wallet state and broadcasts its busy state to observers\n" +
			"such as the UI, metrics and push clients. While the wallet is busy (for example\n" +
			"during synchronization) new exclusive operations are rejected.",
		TableTitle:     "Build Info",
		LabelVersion:   "Version",
		LabelCommit:    "Git Commit",
		LabelBuildTime: "Build Time",
		LabelBuildEnv:  "Build Env",
		LabelGoVersion: "Go Version",
		LabelPlatform:  "Platform",
	},
}

// lookup 按语言取文本，未知语言回退到中文
func lookup(language string) messageSet {
	if set, ok := messages[language]; ok {
		return set
	}
	return messages[defaultLanguage]
}

// Languages 返回支持的语言列表
func Languages() []string {
	return []string{LanguageZhCN, LanguageEnUS}
}
