package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// DeletedMode 软删除过滤方式
type DeletedMode int

const (
	LiveOnly    DeletedMode = iota // 默认：is_deleted = false
	DeletedOnly                    // 仅已删除
	AnyState                       // 不过滤
)

// Scope gorm 查询片段
type Scope = func(*gorm.DB) *gorm.DB

// Filter 通用查询条件
type Filter struct {
	Deleted  DeletedMode
	Scopes   []Scope
	Select   []string // 仅作用于查询，不影响 Count
	Preloads []string
	Order    string // 默认 id DESC
}

// Where 构造默认（未删除）条件
func Where(scopes ...Scope) Filter {
	return Filter{Scopes: scopes}
}

// WhereDeleted 构造仅已删除条件
func WhereDeleted(scopes ...Scope) Filter {
	return Filter{Deleted: DeletedOnly, Scopes: scopes}
}

// WhereAny 构造不区分删除状态的条件
func WhereAny(scopes ...Scope) Filter {
	return Filter{Deleted: AnyState, Scopes: scopes}
}

// WithSelect 指定查询列
func (f Filter) WithSelect(cols ...string) Filter {
	f.Select = cols
	return f
}

// WithPreload 预加载关联
func (f Filter) WithPreload(assoc ...string) Filter {
	f.Preloads = append(f.Preloads, assoc...)
	return f
}

// ==================== 通用仓库 ====================

// Repo 主数据表通用的软删除仓库
type Repo[T any] struct {
	db    *gorm.DB
	table string
}

func newRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{db: db, table: tableName[T](db)}
}

func tableName[T any](db *gorm.DB) string {
	var v T
	if t, ok := any(&v).(schema.Tabler); ok {
		return t.TableName()
	}
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(&v); err == nil {
		return stmt.Schema.Table
	}
	return ""
}

// DB 暴露底层连接，供事务或特殊查询使用
func (r Repo[T]) DB() *gorm.DB {
	return r.db
}

// Table 表名
func (r Repo[T]) Table() string {
	return r.table
}

// Col 带表名前缀的列名，避免关联查询时列名冲突
func (r Repo[T]) Col(name string) string {
	return r.table + "." + name
}

func (r Repo[T]) query(ctx context.Context, f Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(new(T))
	switch f.Deleted {
	case LiveOnly:
		q = q.Where(r.Col("is_deleted")+" = ?", false)
	case DeletedOnly:
		q = q.Where(r.Col("is_deleted")+" = ?", true)
	}
	return q.Scopes(f.Scopes...)
}

func (r Repo[T]) finder(ctx context.Context, f Filter) *gorm.DB {
	q := r.query(ctx, f)
	if len(f.Select) > 0 {
		q = q.Select(f.Select)
	}
	for _, p := range f.Preloads {
		q = q.Preload(p)
	}
	return q
}

// FindOne 查询单条，未找到返回 nil, nil
func (r Repo[T]) FindOne(ctx context.Context, f Filter) (*T, error) {
	var out T
	err := r.finder(ctx, f).Order(r.Col("id") + " ASC").Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find one %s: %w", r.table, err)
	}
	return &out, nil
}

// FindOneWithoutDelete 查询单条，忽略删除状态
func (r Repo[T]) FindOneWithoutDelete(ctx context.Context, scopes ...Scope) (*T, error) {
	return r.FindOne(ctx, WhereAny(scopes...))
}

// FindMany 不分页列表
func (r Repo[T]) FindMany(ctx context.Context, f Filter) ([]T, error) {
	var list []T
	order := f.Order
	if order == "" {
		order = r.Col("id") + " DESC"
	}
	if err := r.finder(ctx, f).Order(order).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find many %s: %w", r.table, err)
	}
	return list, nil
}

// FindManyWithPaginate 分页列表，每页 DefaultPerPage 条
func (r Repo[T]) FindManyWithPaginate(ctx context.Context, f Filter, page int) (*Page[T], error) {
	return Paginate[T](r.query(ctx, f), r.finder(ctx, f), f.Order, r.Col("id")+" DESC", page, DefaultPerPage)
}

// Count 统计数量
func (r Repo[T]) Count(ctx context.Context, f Filter) (int64, error) {
	var total int64
	if err := r.query(ctx, f).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", r.table, err)
	}
	return total, nil
}

// Create 新增
func (r Repo[T]) Create(ctx context.Context, v *T) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("create %s: %w", r.table, err)
	}
	return nil
}

// Update 按条件更新，返回影响行数
func (r Repo[T]) Update(ctx context.Context, f Filter, fields map[string]interface{}) (int64, error) {
	res := r.query(ctx, f).Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("update %s: %w", r.table, res.Error)
	}
	return res.RowsAffected, nil
}

// Upsert 按唯一键插入或更新
// conflict: 唯一索引列; update: 冲突时写入的字段
func (r Repo[T]) Upsert(ctx context.Context, v *T, conflict []string, update map[string]interface{}) error {
	cols := make([]clause.Column, 0, len(conflict))
	for _, c := range conflict {
		cols = append(cols, clause.Column{Name: c})
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   cols,
			DoUpdates: clause.Assignments(update),
		}).
		Create(v).Error
	if err != nil {
		return fmt.Errorf("upsert %s: %w", r.table, err)
	}
	return nil
}

// Delete 物理删除，返回影响行数
func (r Repo[T]) Delete(ctx context.Context, f Filter) (int64, error) {
	res := r.query(ctx, f).Delete(new(T))
	if res.Error != nil {
		return 0, fmt.Errorf("delete %s: %w", r.table, res.Error)
	}
	return res.RowsAffected, nil
}
