package repository

import (
	"context"

	"master_ms/internal/model"

	"gorm.io/gorm"
)

type WishlistRepo struct {
	Repo[model.Wishlist]
}

func NewWishlistRepo(db *gorm.DB) *WishlistRepo {
	return &WishlistRepo{Repo: newRepo[model.Wishlist](db)}
}

func (r *WishlistRepo) FindByID(ctx context.Context, id int64) (*model.Wishlist, error) {
	return r.FindOne(ctx, WhereAny(ByID(r.Table(), id)))
}

func (r *WishlistRepo) FindByUserAndProduct(ctx context.Context, userID, productID int64) (*model.Wishlist, error) {
	return r.FindOne(ctx, WhereAny(Eq(r.Col("user_id"), userID), Eq(r.Col("product_id"), productID)))
}

// ListWithProduct 分页查询心愿单，userID > 0 时只看该用户
func (r *WishlistRepo) ListWithProduct(ctx context.Context, userID int64, searchText string, page int) (*Page[model.Wishlist], error) {
	scopes := []Scope{ProductTitleScope(r.Col("product_id"), searchText)}
	if userID > 0 {
		scopes = append(scopes, Eq(r.Col("user_id"), userID))
	}
	return r.FindManyWithPaginate(ctx, WhereAny(scopes...).WithPreload(productPreloads...), page)
}

// DeleteByID 物理删除
func (r *WishlistRepo) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return r.Delete(ctx, WhereAny(ByID(r.Table(), id)))
}
