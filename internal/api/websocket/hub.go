// Package websocket 通过 WebSocket 推送钱包忙碌状态
//
// 连接建立后先推送一帧快照（type=snapshot），之后每次状态翻转推送一帧
// （type=busy_state）。客户端无需发送任何消息。
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/weisyn/wallet/pkg/interfaces/wallet"
	"github.com/weisyn/wallet/pkg/types"
)

const (
	// MessageTypeSnapshot 连接建立时的状态快照
	MessageTypeSnapshot = "snapshot"
	// MessageTypeBusyState 状态翻转通知
	MessageTypeBusyState = "busy_state"

	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

// BusyStateMessage 推送给客户端的消息
type BusyStateMessage struct {
	Type       string                `json:"type"`
	Busy       bool                  `json:"busy"`
	Operations []types.OperationInfo `json:"operations,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// Hub 忙碌状态推送中心，同时是一个忙碌状态观察者
type Hub struct {
	logger   *zap.Logger
	notifier wallet.BusyStateNotifier
	upgrader websocket.Upgrader
	now      func() time.Time

	mu      sync.Mutex
	clients map[*client]struct{}
	busy    bool // 最近一次推送的状态，与推送顺序一致
	closed  bool
}

var _ wallet.BusyStateObserver = (*Hub)(nil)

// client 单个 WebSocket 连接
type client struct {
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

func (c *client) close() {
	c.closeOnce.Do(func() { close(c.send) })
}

// NewHub 创建推送中心
func NewHub(notifier wallet.BusyStateNotifier, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		logger:   logger,
		notifier: notifier,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// 服务默认只监听本机地址
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		now:     time.Now,
		clients: make(map[*client]struct{}),
		busy:    notifier.IsBusy(),
	}
}

// OnBusyStateChanged 向所有连接广播状态翻转
//
// 发送缓冲已满的慢客户端会被断开，不阻塞通知链。
func (h *Hub) OnBusyStateChanged(isBusy bool) {
	payload, err := json.Marshal(BusyStateMessage{
		Type:      MessageTypeBusyState,
		Busy:      isBusy,
		Timestamp: h.now().UTC(),
	})
	if err != nil {
		h.logger.Error("编码忙碌状态消息失败", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.busy = isBusy
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			h.logger.Warn("WebSocket客户端发送缓冲已满，断开连接",
				zap.String("remote_addr", c.conn.RemoteAddr().String()))
			delete(h.clients, c)
			c.close()
		}
	}
}

// HandleWebSocket 处理WebSocket连接（Gin Handler）
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade WebSocket connection", zap.Error(err))
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBufferSize)}
	if !h.join(cl) {
		_ = conn.Close()
		return
	}

	h.logger.Info("WebSocket connection established",
		zap.String("remote_addr", conn.RemoteAddr().String()))

	go h.writePump(cl)
	h.readPump(cl)

	h.leave(cl)
	h.logger.Info("WebSocket connection closed",
		zap.String("remote_addr", conn.RemoteAddr().String()))
}

// ClientCount 当前连接数
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close 断开所有连接，之后的连接请求会被拒绝
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
}

// join 在同一把锁内写入快照并加入广播列表，保证快照之后不漏帧
func (h *Hub) join(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}

	operations := []types.OperationInfo{}
	if h.busy {
		operations = h.notifier.ActiveOperations()
	}
	payload, err := json.Marshal(BusyStateMessage{
		Type:       MessageTypeSnapshot,
		Busy:       h.busy,
		Operations: operations,
		Timestamp:  h.now().UTC(),
	})
	if err != nil {
		h.logger.Error("编码忙碌状态快照失败", zap.Error(err))
		return false
	}

	c.send <- payload
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) leave(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
	}
}

// readPump 丢弃客户端消息，只用于感知断开与 pong
func (h *Hub) readPump(c *client) {
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("WebSocket connection closed unexpectedly", zap.Error(err))
			}
			return
		}
	}
}

// writePump 串行写出消息与心跳
func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				h.logger.Warn("发送WebSocket消息失败", zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
