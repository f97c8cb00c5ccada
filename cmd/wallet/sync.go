package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	apitypes "github.com/weisyn/wallet/internal/api/http/types"
	"github.com/weisyn/wallet/internal/app"
	"github.com/weisyn/wallet/internal/cli"
	walletsync "github.com/weisyn/wallet/internal/core/wallet/sync"
)

// errRemoteBusy 远程服务正忙
var errRemoteBusy = errors.New("钱包正忙，请稍后重试")

var syncRemote string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "执行一次钱包同步",
	Long: `执行一次钱包同步。

默认在本进程内运行同步，终端显示忙碌提示直至完成；
指定 --remote 时请求运行中的服务在后台同步。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if syncRemote != "" {
			return runRemoteSync(ctx, syncRemote)
		}
		return runLocalSync(ctx)
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncRemote, "remote", "", "运行中服务的地址，例如 127.0.0.1:28690")
}

// runLocalSync 装配应用（不启动API）并执行一次同步
func runLocalSync(ctx context.Context) error {
	appConfig, err := loadAppConfig()
	if err != nil {
		return err
	}

	var scheduler *walletsync.Scheduler
	application, err := app.Start(
		app.WithAppConfig(appConfig),
		app.WithoutAPI(),
		app.WithModules(cli.IndicatorModule(), fx.Populate(&scheduler)),
	)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := application.Stop(); stopErr != nil {
			fmt.Fprintf(os.Stderr, "⚠️ 停止应用时出错: %v\n", stopErr)
		}
	}()

	return scheduler.RunOnce(ctx)
}

// runRemoteSync 请求远程服务触发同步
func runRemoteSync(ctx context.Context, addr string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "http://"+addr+"/api/v1/wallet/sync", nil)
	if err != nil {
		return fmt.Errorf("构建请求失败: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("请求服务失败: %w", err)
	}
	defer resp.Body.Close()

	return interpretSyncResponse(resp.StatusCode, resp.Body)
}

// interpretSyncResponse 解析同步触发响应
func interpretSyncResponse(statusCode int, body io.Reader) error {
	switch statusCode {
	case http.StatusAccepted:
		fmt.Println("✅ 同步已在服务端开始")
		return nil
	case http.StatusConflict:
		return errRemoteBusy
	}

	var errResp apitypes.ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
		return fmt.Errorf("服务返回 %d: %s", statusCode, errResp.Error.Message)
	}
	return fmt.Errorf("服务返回 %d", statusCode)
}
