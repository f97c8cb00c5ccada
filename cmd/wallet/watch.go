package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	wsapi "github.com/weisyn/wallet/internal/api/websocket"
	"github.com/weisyn/wallet/internal/cli/status"
	"github.com/weisyn/wallet/internal/cli/ui"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
)

var watchAddr string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "订阅运行中服务的忙碌状态",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := loadProvider()
		if err != nil {
			return err
		}

		addr := watchAddr
		if addr == "" {
			addr = provider.GetAPI().ListenAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		components := newComponents(provider)
		indicator := status.NewBusyIndicator(components, language(provider), nil)
		defer indicator.Close()

		err = watchBusyState(ctx, "ws://"+addr+"/api/v1/wallet/busy/ws", indicator, func(msg wsapi.BusyStateMessage) {
			showSnapshot(components, msg)
		})
		if ctx.Err() != nil {
			return nil
		}
		return err
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchAddr, "addr", "", "服务地址 (默认取配置 api.listen_addr)")
}

// watchBusyState 连接推送接口，把每一帧状态交给观察者
//
// 快照帧先交给 onSnapshot，再作为状态通知；ctx 取消时关闭连接并返回。
func watchBusyState(ctx context.Context, url string, observer wallet.BusyStateObserver, onSnapshot func(wsapi.BusyStateMessage)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("连接 %s 失败: %w", url, err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		var msg wsapi.BusyStateMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("推送连接中断: %w", err)
		}

		switch msg.Type {
		case wsapi.MessageTypeSnapshot:
			if onSnapshot != nil {
				onSnapshot(msg)
			}
			observer.OnBusyStateChanged(msg.Busy)
		case wsapi.MessageTypeBusyState:
			observer.OnBusyStateChanged(msg.Busy)
		}
	}
}

// showSnapshot 显示连接时的状态
func showSnapshot(components ui.Components, msg wsapi.BusyStateMessage) {
	if !msg.Busy {
		_ = components.ShowInfo("钱包空闲，等待状态变化 (Ctrl+C 退出)")
		return
	}
	for _, op := range msg.Operations {
		_ = components.ShowInfo(fmt.Sprintf("进行中: %s (开始于 %s)", op.Name, op.StartedAt.Local().Format("15:04:05")))
	}
}
