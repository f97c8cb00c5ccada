package main

import (
	"github.com/spf13/cobra"

	"github.com/weisyn/wallet/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动钱包状态服务",
	Long: `启动钱包状态服务，按配置提供：
  GET  /api/v1/wallet/busy      当前忙碌状态
  GET  /api/v1/wallet/busy/ws   忙碌状态推送
  POST /api/v1/wallet/sync      触发一次同步
  GET  /metrics                 Prometheus 指标`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appConfig, err := loadAppConfig()
		if err != nil {
			return err
		}

		application, err := app.Start(app.WithAppConfig(appConfig))
		if err != nil {
			return err
		}
		application.Wait()
		return nil
	},
}
