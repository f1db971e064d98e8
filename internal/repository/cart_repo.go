package repository

import (
	"context"

	"master_ms/internal/model"

	"gorm.io/gorm"
)

// productPreloads 列表展示的商品关联
var productPreloads = []string{"Product", "Product.Brand"}

type CartRepo struct {
	Repo[model.Cart]
}

func NewCartRepo(db *gorm.DB) *CartRepo {
	return &CartRepo{Repo: newRepo[model.Cart](db)}
}

func (r *CartRepo) FindByUUID(ctx context.Context, uuid string) (*model.Cart, error) {
	return r.FindOne(ctx, WhereAny(ByUUID(r.Table(), uuid)))
}

// FindByUserAndProduct 同一用户同一商品的购物车条目，excludeUUID 非空时排除该条
func (r *CartRepo) FindByUserAndProduct(ctx context.Context, userID, productID int64, excludeUUID string) (*model.Cart, error) {
	scopes := []Scope{Eq(r.Col("user_id"), userID), Eq(r.Col("product_id"), productID)}
	if excludeUUID != "" {
		scopes = append(scopes, NotUUID(r.Table(), excludeUUID))
	}
	return r.FindOne(ctx, WhereAny(scopes...))
}

// ListWithProduct 分页查询购物车，userID > 0 时只看该用户
func (r *CartRepo) ListWithProduct(ctx context.Context, userID int64, searchText string, page int) (*Page[model.Cart], error) {
	scopes := []Scope{ProductTitleScope(r.Col("product_id"), searchText)}
	if userID > 0 {
		scopes = append(scopes, Eq(r.Col("user_id"), userID))
	}
	return r.FindManyWithPaginate(ctx, WhereAny(scopes...).WithPreload(productPreloads...), page)
}

// DeleteByUUID 物理删除
func (r *CartRepo) DeleteByUUID(ctx context.Context, uuid string) (int64, error) {
	return r.Delete(ctx, WhereAny(ByUUID(r.Table(), uuid)))
}
