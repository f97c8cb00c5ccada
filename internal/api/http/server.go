package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weisyn/wallet/internal/api/http/handlers"
	"github.com/weisyn/wallet/internal/api/http/middleware"
	"github.com/weisyn/wallet/internal/api/websocket"
	apiconfig "github.com/weisyn/wallet/internal/config/api"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
)

// Dependencies HTTP服务器依赖的业务服务
type Dependencies struct {
	Notifier wallet.BusyStateNotifier // 必需
	Sync     handlers.SyncService     // 必需

	Hub        *websocket.Hub        // 可选，nil 时不注册 /ws
	Gatherer   prometheus.Gatherer   // 可选，nil 时不注册 /metrics
	Registerer prometheus.Registerer // 可选，nil 时不收集请求指标
}

// Server HTTP服务器
// 负责钱包忙碌状态查询、同步触发、实时推送和指标导出
type Server struct {
	router     *gin.Engine  // Gin路由引擎
	httpServer *http.Server // 标准HTTP服务器
	options    *apiconfig.APIOptions
	logger     log.Logger
	deps       Dependencies

	listener net.Listener
	done     chan struct{}
}

// NewServer 创建HTTP服务器并注册路由
func NewServer(options *apiconfig.APIOptions, logger log.Logger, deps Dependencies) *Server {
	if options == nil {
		options = apiconfig.New(nil).GetOptions()
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(logger))
	if deps.Registerer != nil {
		router.Use(middleware.NewMetrics(deps.Registerer, "wallet").Middleware())
	}

	server := &Server{
		router:  router,
		options: options,
		logger:  logger,
		deps:    deps,
	}
	server.setupRoutes()
	return server
}

// setupRoutes 设置HTTP路由
func (s *Server) setupRoutes() {
	handlers.NewHealthHandler(s.deps.Notifier).RegisterRoutes(s.router)

	v1 := s.router.Group("/api/v1")
	handlers.NewBusyHandlers(s.deps.Notifier).RegisterRoutes(v1)

	handlers.NewSyncHandlers(s.deps.Sync, s.deps.Notifier, s.logger.GetZapLogger()).RegisterRoutes(v1)

	if s.options.EnableWS && s.deps.Hub != nil {
		v1.GET("/wallet/busy/ws", s.deps.Hub.HandleWebSocket)
	}

	if s.options.EnableMetrics && s.deps.Gatherer != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.deps.Gatherer, promhttp.HandlerOpts{})))
	}

	s.logger.Debugf("HTTP路由注册完成: ws=%v metrics=%v",
		s.options.EnableWS && s.deps.Hub != nil, s.options.EnableMetrics && s.deps.Gatherer != nil)
}

// Handler 返回路由处理器（测试使用）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr 实际监听地址，未启动时为空
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start 启动HTTP服务器
// 监听在启动时完成，端口被占用会直接返回错误；服务在后台goroutine中运行
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.options.ListenAddr)
	if err != nil {
		return fmt.Errorf("监听 %s 失败: %w", s.options.ListenAddr, err)
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		// WebSocket 长连接，不设置 WriteTimeout
	}

	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorf("❌ HTTP服务器运行失败: %v", err)
		}
	}()

	addr := listener.Addr().String()
	s.logger.Infof("✅ HTTP服务器启动成功，监听地址: %s", addr)
	s.logger.Infof("📡 忙碌状态: http://%s/api/v1/wallet/busy", addr)
	return nil
}

// Stop 优雅关闭HTTP服务器
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Info("正在关闭HTTP服务器")

	// 推送连接被 Shutdown 视为已劫持，需要单独关闭
	if s.deps.Hub != nil {
		s.deps.Hub.Close()
	}

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(stopCtx); err != nil {
		s.logger.Errorf("HTTP服务器关闭出错: %v", err)
		return err
	}
	<-s.done

	s.logger.Info("HTTP服务器已关闭")
	return nil
}
