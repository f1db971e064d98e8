package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"master_ms/internal/repository"
	"master_ms/pkg/apperr"
	"master_ms/pkg/cache"
)

// ListQuery 列表查询条件
type ListQuery struct {
	Page       int
	SearchText string
}

// filter 组装列表过滤条件
func (q ListQuery) filter(deleted bool, scopes ...repository.Scope) repository.Filter {
	if deleted {
		return repository.WhereDeleted(scopes...)
	}
	return repository.Where(scopes...)
}

// exists 查询出错或未找到 (404) 时返回错误
func exists[T any](v *T, err error, message string) error {
	if err != nil {
		return err
	}
	if v == nil {
		return apperr.NotFound(message)
	}
	return nil
}

// duplicateAs 唯一索引冲突转为业务错误，其余原样返回
func duplicateAs(err error, dup *apperr.Error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return dup.WithErr(err)
	}
	return err
}

// ==================== 下拉缓存 ====================

const (
	dropdownCountry  = "dropdown:country"
	dropdownState    = "dropdown:state"
	dropdownCity     = "dropdown:city"
	dropdownBrand    = "dropdown:brand"
	dropdownDivision = "dropdown:division"
)

// DropdownCache 下拉数据读缓存，写操作后按前缀失效
// 缓存不可用时直接查库
type DropdownCache struct {
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewDropdownCache(c cache.Cache, ttl time.Duration, logger *zap.Logger) *DropdownCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DropdownCache{cache: c, ttl: ttl, logger: logger}
}

// Invalidate 删除 prefix 下的所有下拉缓存
func (d *DropdownCache) Invalidate(ctx context.Context, prefix string) {
	if d == nil || d.cache == nil {
		return
	}
	if err := d.cache.DeletePrefix(ctx, prefix); err != nil {
		d.logger.Warn("dropdown cache invalidate failed", zap.String("prefix", prefix), zap.Error(err))
	}
}

// cachedList 先读缓存，未命中时调用 load 并回写
func cachedList[T any](ctx context.Context, d *DropdownCache, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if d == nil || d.cache == nil {
		return load(ctx)
	}

	if raw, ok, err := d.cache.Get(ctx, key); err != nil {
		d.logger.Warn("dropdown cache get failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var out []T
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			return out, nil
		}
	}

	list, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(list); err == nil {
		if err := d.cache.Set(ctx, key, string(raw), d.ttl); err != nil {
			d.logger.Warn("dropdown cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return list, nil
}

// DropdownWarmer 定时预热下拉缓存
type DropdownWarmer interface {
	WarmDropdown(ctx context.Context) error
}
