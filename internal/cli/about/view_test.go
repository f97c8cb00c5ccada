package about

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/wallet/internal/app/version"
	"github.com/weisyn/wallet/internal/cli/ui"
)

// fakeComponents 记录键值表调用
type fakeComponents struct {
	title string
	pairs map[string]string
}

func (f *fakeComponents) ShowKeyValuePairs(title string, pairs map[string]string) error {
	f.title = title
	f.pairs = pairs
	return nil
}
func (f *fakeComponents) ShowSpinner(string) ui.Spinner { return nil }
func (f *fakeComponents) ShowSuccess(string) error      { return nil }
func (f *fakeComponents) ShowError(string) error        { return nil }
func (f *fakeComponents) ShowWarning(string) error      { return nil }
func (f *fakeComponents) ShowInfo(string) error         { return nil }
func (f *fakeComponents) ShowHeader(string) error       { return nil }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestView_Render(t *testing.T) {
	t.Run("中文输出固定前缀和版本号", func(t *testing.T) {
		var buf bytes.Buffer
		view := NewView(&buf, nil, LanguageZhCN)

		require.NoError(t, view.Render())
		assert.True(t, strings.HasPrefix(buf.String(), "WES 钱包 版本 "+version.GetVersion()))
	})

	t.Run("英文输出", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewView(&buf, nil, LanguageEnUS).Render())
		assert.True(t, strings.HasPrefix(buf.String(), "WES Wallet version "+version.GetVersion()))
	})

	t.Run("未知语言回退中文", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewView(&buf, nil, "fr-FR").Render())
		assert.True(t, strings.HasPrefix(buf.String(), "WES 钱包 版本 "))
	})

	t.Run("展示构建信息表", func(t *testing.T) {
		var buf bytes.Buffer
		components := &fakeComponents{}
		require.NoError(t, NewView(&buf, components, LanguageEnUS).Render())

		assert.Equal(t, "Build Info", components.title)
		assert.Equal(t, version.GetVersion(), components.pairs["Version"])
		assert.Len(t, components.pairs, 6)
	})

	t.Run("写入失败返回错误且不展示表格", func(t *testing.T) {
		components := &fakeComponents{}
		err := NewView(failingWriter{}, components, LanguageZhCN).Render()
		require.Error(t, err)
		assert.Nil(t, components.pairs)
	})
}

func TestLanguages(t *testing.T) {
	for _, lang := range Languages() {
		set := lookup(lang)
		assert.NotEmpty(t, set.Prefix, lang)
		assert.NotEmpty(t, set.Body, lang)
	}
}
