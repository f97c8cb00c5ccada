package observers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	walletconfig "github.com/weisyn/wallet/internal/config/wallet"
	"github.com/weisyn/wallet/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/wallet/pkg/interfaces/wallet"
)

// redisTimeout 单次状态广播的超时时间
const redisTimeout = 2 * time.Second

// redisClient Redis 操作的最小接口（便于测试替换）
type redisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Close() error
}

// goRedisClient go-redis 客户端实现
type goRedisClient struct {
	client *redis.Client
}

var _ redisClient = (*goRedisClient)(nil)

// newGoRedisClient 创建 go-redis 客户端并测试连接
func newGoRedisClient(ctx context.Context, cfg walletconfig.RedisOptions) (*goRedisClient, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &goRedisClient{client: client}, nil
}

func (c *goRedisClient) Publish(ctx context.Context, channel string, message interface{}) error {
	return c.client.Publish(ctx, channel, message).Err()
}

func (c *goRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.client.Set(ctx, key, value, expiration).Err()
}

func (c *goRedisClient) Close() error {
	return c.client.Close()
}

// Redis 跨进程广播忙碌状态
//
// 每次翻转：
//   - 向 channel 发布 JSON 编码的 BusyStateEvent
//   - 把 state key 设置为 "1"（忙碌）或 "0"（空闲）
//
// Redis 不可用时只记录日志，不影响其他观察者。
type Redis struct {
	client   redisClient
	channel  string
	stateKey string
	logger   log.Logger
	now      func() time.Time
}

var _ wallet.BusyStateObserver = (*Redis)(nil)

// NewRedis 连接 Redis 并创建广播观察者
func NewRedis(ctx context.Context, cfg walletconfig.RedisOptions, logger log.Logger) (*Redis, error) {
	client, err := newGoRedisClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return newRedisWithClient(client, cfg, logger), nil
}

func newRedisWithClient(client redisClient, cfg walletconfig.RedisOptions, logger log.Logger) *Redis {
	return &Redis{
		client:   client,
		channel:  cfg.Channel,
		stateKey: cfg.StateKey,
		logger:   logger,
		now:      time.Now,
	}
}

// OnBusyStateChanged 广播状态并更新状态键
func (r *Redis) OnBusyStateChanged(isBusy bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	payload, err := json.Marshal(NewBusyStateEvent(isBusy, r.now()))
	if err != nil {
		r.warnf("编码忙碌状态事件失败: %v", err)
		return
	}

	if err := r.client.Set(ctx, r.stateKey, stateValue(isBusy), 0); err != nil {
		r.warnf("写入忙碌状态键失败: key=%s err=%v", r.stateKey, err)
	}
	if err := r.client.Publish(ctx, r.channel, payload); err != nil {
		r.warnf("发布忙碌状态失败: channel=%s err=%v", r.channel, err)
	}
}

// Close 关闭 Redis 连接
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) warnf(format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Warnf(format, args...)
	}
}

func stateValue(isBusy bool) string {
	if isBusy {
		return "1"
	}
	return "0"
}
