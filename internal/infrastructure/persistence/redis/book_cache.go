package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/libreria/backoffice/internal/domain/book"
	"github.com/libreria/backoffice/internal/infrastructure/config"
	"github.com/libreria/backoffice/pkg/metrics"
)

// BookCache 图书详情缓存(Cache-Aside)
// 1. 读取:先查缓存,未命中由领域服务查数据库并回填
// 2. 更新、删除图书后删除缓存,下次读取时重新加载
// Key设计:libreria:libro:{id}
type BookCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBookCache 创建图书详情缓存
func NewBookCache(client *redis.Client, ttl time.Duration) *BookCache {
	return &BookCache{client: client, ttl: ttl}
}

// NewCache 根据配置选择缓存实现,client为nil(Redis未启用)时不缓存
func NewCache(client *redis.Client, cfg *config.Config) book.Cache {
	if client == nil {
		return NoopCache{}
	}
	return NewBookCache(client, cfg.Redis.DetailTTL)
}

func (c *BookCache) Get(ctx context.Context, id uint) (*book.Book, error) {
	val, err := c.client.Get(ctx, bookKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCacheRequest(metrics.CacheMiss)
			return nil, nil
		}
		metrics.RecordCacheRequest(metrics.CacheError)
		return nil, fmt.Errorf("获取缓存失败: %w", err)
	}

	var b book.Book
	if err := json.Unmarshal(val, &b); err != nil {
		metrics.RecordCacheRequest(metrics.CacheError)
		return nil, fmt.Errorf("反序列化失败: %w", err)
	}

	metrics.RecordCacheRequest(metrics.CacheHit)
	return &b, nil
}

func (c *BookCache) Set(ctx context.Context, b *book.Book) error {
	val, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}

	if err := c.client.Set(ctx, bookKey(b.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("设置缓存失败: %w", err)
	}
	return nil
}

func (c *BookCache) Delete(ctx context.Context, id uint) error {
	if err := c.client.Del(ctx, bookKey(id)).Err(); err != nil {
		return fmt.Errorf("删除缓存失败: %w", err)
	}
	return nil
}

func bookKey(id uint) string {
	return fmt.Sprintf("libreria:libro:%d", id)
}

// NoopCache 不缓存,每次都未命中
type NoopCache struct{}

func (NoopCache) Get(context.Context, uint) (*book.Book, error) { return nil, nil }
func (NoopCache) Set(context.Context, *book.Book) error         { return nil }
func (NoopCache) Delete(context.Context, uint) error            { return nil }
