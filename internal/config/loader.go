package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/weisyn/wallet/pkg/types"
)

// EnvPrefix 环境变量前缀，例如 WALLET_LOG_LEVEL=debug
const EnvPrefix = "WALLET"

// 可通过环境变量覆盖的配置键
var envKeys = []string{
	"environment",
	"data_dir",
	"log.level",
	"log.file_path",
	"log.to_console",
	"event.enabled",
	"wallet.sync_interval",
	"wallet.sync_duration",
	"wallet.redis.enabled",
	"wallet.redis.addr",
	"wallet.redis.password",
	"wallet.metrics.enabled",
	"api.enabled",
	"api.listen_addr",
	"api.enable_ws",
	"api.enable_metrics",
	"cli.language",
	"cli.show_spinner",
}

// ErrConfigNotFound 指定的配置文件不存在
var ErrConfigNotFound = errors.New("配置文件不存在")

// Load 读取配置文件并应用环境变量覆盖
//
// path 为空时只使用环境变量；文件格式由扩展名决定（json/yaml/toml）。
// 未出现在文件与环境变量中的字段保持 nil，由各配置包应用默认值。
func Load(path string) (*types.AppConfig, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromBytes 从内存中的配置内容加载，例如内置配置
// format 为 json、yaml 等 viper 支持的格式；环境变量覆盖同样生效
func LoadFromBytes(data []byte, format string) (*types.AppConfig, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("读取配置内容失败: %w", err)
	}
	return unmarshal(v)
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("绑定环境变量 %s 失败: %w", key, err)
		}
	}
	return v, nil
}

func unmarshal(v *viper.Viper) (*types.AppConfig, error) {
	var appConfig types.AppConfig
	if err := v.Unmarshal(&appConfig); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	return &appConfig, nil
}
