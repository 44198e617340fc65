package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libreria/backoffice/internal/domain/book"
	"github.com/libreria/backoffice/internal/infrastructure/config"
)

func newTestCache(t *testing.T) (*BookCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewBookCache(client, time.Minute), mr
}

func TestBookCache(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	providerID := uint(3)
	b := &book.Book{ID: 7, Title: "Ficciones", Author: "Borges", Year: 1944, Category: "Cuentos", Price: decimal.RequireFromString("12.30"), ProviderID: &providerID}

	t.Run("未命中返回nil", func(t *testing.T) {
		got, err := cache.Get(ctx, 7)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("写入后命中", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, b))
		assert.True(t, mr.Exists("libreria:libro:7"))

		got, err := cache.Get(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Ficciones", got.Title)
		assert.True(t, got.Price.Equal(b.Price))
		assert.Equal(t, providerID, *got.ProviderID)
	})

	t.Run("过期后未命中", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, b))
		mr.FastForward(2 * time.Minute)

		got, err := cache.Get(ctx, 7)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("删除", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, b))
		require.NoError(t, cache.Delete(ctx, 7))
		assert.False(t, mr.Exists("libreria:libro:7"))
	})

	t.Run("脏数据报错", func(t *testing.T) {
		require.NoError(t, mr.Set("libreria:libro:8", "{no-json"))
		_, err := cache.Get(ctx, 8)
		assert.Error(t, err)
	})
}

func TestNewClient(t *testing.T) {
	log := zerolog.Nop()

	t.Run("未启用", func(t *testing.T) {
		client, cleanup, err := NewClient(&config.Config{}, log)
		require.NoError(t, err)
		assert.Nil(t, client)
		cleanup()

		_, isNoop := NewCache(client, &config.Config{}).(NoopCache)
		assert.True(t, isNoop)
	})

	t.Run("连接miniredis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := &config.Config{Redis: config.RedisConfig{Enabled: true, Host: mr.Host(), Port: mustPort(t, mr), DetailTTL: time.Minute}}

		client, cleanup, err := NewClient(cfg, log)
		require.NoError(t, err)
		defer cleanup()

		_, isRedis := NewCache(client, cfg).(*BookCache)
		assert.True(t, isRedis)
	})

	t.Run("连接失败", func(t *testing.T) {
		cfg := &config.Config{Redis: config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1, DialTimeout: 100 * time.Millisecond}}
		_, _, err := NewClient(cfg, log)
		assert.Error(t, err)
	})
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}
