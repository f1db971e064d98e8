package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 下拉数据等热点读缓存
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// DeletePrefix 删除所有以 prefix 开头的 key，用于写操作后失效
	DeletePrefix(ctx context.Context, prefix string) error
}

// ==================== Memory ====================

// cacheItem 内部结构，包含值和过期时间
type cacheItem struct {
	value      string
	expiration time.Time
}

// MemoryCache 进程内缓存，使用 sync.Map 保证并发安全
type MemoryCache struct {
	items sync.Map
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

// Get 获取缓存并验证是否过期
func (m *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	val, ok := m.items.Load(key)
	if !ok {
		return "", false, nil
	}

	item := val.(cacheItem)
	if !item.expiration.IsZero() && time.Now().After(item.expiration) {
		m.items.Delete(key) // 懒删除
		return "", false, nil
	}
	return item.value, true, nil
}

// Set 设置缓存，ttl <= 0 表示不过期
func (m *MemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	item := cacheItem{value: value}
	if ttl > 0 {
		item.expiration = time.Now().Add(ttl)
	}
	m.items.Store(key, item)
	return nil
}

func (m *MemoryCache) DeletePrefix(_ context.Context, prefix string) error {
	m.items.Range(func(k, _ any) bool {
		if strings.HasPrefix(k.(string), prefix) {
			m.items.Delete(k)
		}
		return true
	})
	return nil
}

// ==================== Redis ====================

// RedisCache 基于 go-redis 的共享缓存，多实例部署时使用
type RedisCache struct {
	client    *redis.Client
	namespace string
}

// NewRedisCache 解析 redis:// URL 并校验连通性
func NewRedisCache(ctx context.Context, url, namespace string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisCache{client: client, namespace: namespace}, nil
}

// NewRedisCacheFromClient 复用已有客户端
func NewRedisCacheFromClient(client *redis.Client, namespace string) *RedisCache {
	return &RedisCache{client: client, namespace: namespace}
}

func (r *RedisCache) key(k string) string {
	if r.namespace == "" {
		return k
	}
	return r.namespace + ":" + k
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return r.client.Set(ctx, r.key(key), value, ttl).Err()
}

// DeletePrefix 通过 SCAN 遍历删除，避免 KEYS 阻塞
func (r *RedisCache) DeletePrefix(ctx context.Context, prefix string) error {
	iter := r.client.Scan(ctx, 0, r.key(prefix)+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
