package observers

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	eventconfig "github.com/weisyn/wallet/internal/config/event"
	walletconfig "github.com/weisyn/wallet/internal/config/wallet"
	coreevent "github.com/weisyn/wallet/internal/core/infrastructure/event"
	corelog "github.com/weisyn/wallet/internal/core/infrastructure/log"
	"github.com/weisyn/wallet/pkg/types"
)

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry, "wallet")

	m.OnBusyStateChanged(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.busyGauge))

	m.OnBusyStateChanged(false)
	m.OnBusyStateChanged(true)
	m.OnBusyStateChanged(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.busyGauge))

	expected := `
# HELP wallet_busy_transitions_total Total number of wallet busy state transitions
# TYPE wallet_busy_transitions_total counter
wallet_busy_transitions_total{state="busy"} 2
wallet_busy_transitions_total{state="idle"} 2
`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "wallet_busy_transitions_total"))
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewLogging(corelog.FromZap(zap.New(core)))

	l.OnBusyStateChanged(true)
	l.OnBusyStateChanged(false)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, true, entries[0].ContextMap()["busy"])
	assert.Equal(t, false, entries[1].ContextMap()["busy"])

	assert.NotPanics(t, func() { NewLogging(nil).OnBusyStateChanged(true) })
}

func TestEventPublisher(t *testing.T) {
	bus := coreevent.New(eventconfig.New(nil))

	var received []*types.BusyStateEvent
	require.NoError(t, bus.Subscribe(types.WalletBusyChanged, func(e *types.BusyStateEvent) {
		received = append(received, e)
	}))

	p := NewEventPublisher(bus)
	p.OnBusyStateChanged(true)
	p.OnBusyStateChanged(false)

	require.Len(t, received, 2)
	assert.True(t, received[0].Busy)
	assert.False(t, received[1].Busy)
	assert.NotEqual(t, received[0].ID, received[1].ID)
	assert.False(t, received[0].Timestamp.IsZero())

	assert.NotPanics(t, func() { NewEventPublisher(nil).OnBusyStateChanged(true) })
}

// ==================== Mock redisClient ====================

type mockRedisClient struct {
	mu        sync.Mutex
	data      map[string]string
	published map[string][][]byte
	failSet   bool
	closed    bool
}

func newMockRedisClient() *mockRedisClient {
	return &mockRedisClient{
		data:      make(map[string]string),
		published: make(map[string][][]byte),
	}
}

func (m *mockRedisClient) Publish(ctx context.Context, channel string, message interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := message.([]byte)
	if !ok {
		return errors.New("unexpected message type")
	}
	m.published[channel] = append(m.published[channel], payload)
	return nil
}

func (m *mockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errors.New("connection refused")
	}
	m.data[key] = value.(string)
	return nil
}

func (m *mockRedisClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func redisOptions() walletconfig.RedisOptions {
	return walletconfig.RedisOptions{Channel: "wallet:busy", StateKey: "wallet:busy:state"}
}

func TestRedis(t *testing.T) {
	t.Run("发布状态并更新状态键", func(t *testing.T) {
		client := newMockRedisClient()
		r := newRedisWithClient(client, redisOptions(), corelog.NewNop())

		r.OnBusyStateChanged(true)
		assert.Equal(t, "1", client.data["wallet:busy:state"])

		r.OnBusyStateChanged(false)
		assert.Equal(t, "0", client.data["wallet:busy:state"])

		messages := client.published["wallet:busy"]
		require.Len(t, messages, 2)

		var evt types.BusyStateEvent
		require.NoError(t, json.Unmarshal(messages[0], &evt))
		assert.True(t, evt.Busy)
		assert.NotEmpty(t, evt.ID)

		require.NoError(t, r.Close())
		assert.True(t, client.closed)
	})

	t.Run("写入失败仍然发布", func(t *testing.T) {
		client := newMockRedisClient()
		client.failSet = true

		core, logs := observer.New(zap.WarnLevel)
		r := newRedisWithClient(client, redisOptions(), corelog.FromZap(zap.New(core)))

		r.OnBusyStateChanged(true)
		assert.Len(t, client.published["wallet:busy"], 1)
		require.Equal(t, 1, logs.Len())
		assert.Contains(t, logs.All()[0].Message, "写入忙碌状态键失败")
	})
}

func TestNewRedis_EmptyAddr(t *testing.T) {
	_, err := NewRedis(context.Background(), walletconfig.RedisOptions{}, nil)
	assert.Error(t, err)
}
