// Package about 命令行“关于”页面
package about

import (
	"fmt"
	"io"

	"github.com/weisyn/wallet/internal/app/version"
	"github.com/weisyn/wallet/internal/cli/ui"
)

// View 关于页面
//
// Render 输出一段带固定前缀和版本号的说明文本，再以键值表展示构建信息，
// 随后把控制权交还调用方。
type View struct {
	out        io.Writer
	components ui.Components
	text       messageSet
	info       version.BuildInfo
}

// NewView 创建关于页面，components 为 nil 时只输出文本
func NewView(out io.Writer, components ui.Components, language string) *View {
	return &View{
		out:        out,
		components: components,
		text:       lookup(language),
		info:       *version.GetBuildInfo(),
	}
}

// Text 返回带版本号的说明文本
func (v *View) Text() string {
	return v.text.Prefix + v.info.Version + "\n\n" + v.text.Body + "\n"
}

// Render 输出关于页面
func (v *View) Render() error {
	if _, err := fmt.Fprint(v.out, v.Text()); err != nil {
		return fmt.Errorf("输出关于信息失败: %w", err)
	}

	if v.components == nil {
		return nil
	}
	return v.components.ShowKeyValuePairs(v.text.TableTitle, v.buildInfoPairs())
}

func (v *View) buildInfoPairs() map[string]string {
	return map[string]string{
		v.text.LabelVersion:   v.info.Version,
		v.text.LabelCommit:    v.info.GitCommit,
		v.text.LabelBuildTime: v.info.BuildTime,
		v.text.LabelBuildEnv:  v.info.BuildEnv,
		v.text.LabelGoVersion: v.info.GoVersion,
		v.text.LabelPlatform:  v.info.Platform,
	}
}
