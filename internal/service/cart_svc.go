package service

import (
	"context"

	"master_ms/internal/api/dto"
	"master_ms/internal/model"
	"master_ms/internal/repository"
	"master_ms/pkg/apperr"
)

// CartService 购物车，条目物理删除
type CartService struct {
	repo     *repository.CartRepo
	products ProductLookup
}

func NewCartService(repo *repository.CartRepo, products ProductLookup) *CartService {
	return &CartService{repo: repo, products: products}
}

// List 当前用户的购物车（userID 为 0 时返回全部），按商品标题搜索
func (s *CartService) List(ctx context.Context, userID int64, q ListQuery) (*repository.Page[model.Cart], error) {
	return s.repo.ListWithProduct(ctx, userID, q.SearchText, q.Page)
}

func (s *CartService) product(ctx context.Context, uuid string) (*model.Product, error) {
	product, err := s.products.FindByUUID(ctx, uuid)
	if err = exists(product, err, "cart._product_is_not_exist_with_this_uuid_"); err != nil {
		return nil, err
	}
	return product, nil
}

// Add 加入购物车，同一用户同一商品只能有一条
func (s *CartService) Add(ctx context.Context, req *dto.CartReq, userID int64) (*model.Cart, error) {
	if req.PriceValue().IsNegative() {
		return nil, apperr.BadRequest("_price_cannot_be_negative_")
	}

	product, err := s.product(ctx, req.ProductUUID)
	if err != nil {
		return nil, err
	}

	dup, err := s.repo.FindByUserAndProduct(ctx, userID, product.ID, "")
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, apperr.Conflict("cart._product_is_already_exist_in_cart_")
	}

	item := &model.Cart{
		ProductID: product.ID,
		UserID:    userID,
		Quantity:  req.Qty(),
		Price:     req.PriceValue(),
	}
	item.IsActive = true
	item.CreatedBy = model.Operator(userID)

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apperr.BadRequest("cart._error_while_adding_product_to_cart_").WithErr(err)
	}
	return item, nil
}

// Update 修改购物车条目，不能与该用户的其他条目指向同一商品
func (s *CartService) Update(ctx context.Context, uuid string, req *dto.CartReq, userID int64) error {
	if req.PriceValue().IsNegative() {
		return apperr.BadRequest("_price_cannot_be_negative_")
	}

	item, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(item, err, "cart._we_could_not_find_what_you_are_looking_for"); err != nil {
		return err
	}

	product, err := s.product(ctx, req.ProductUUID)
	if err != nil {
		return err
	}

	other, err := s.repo.FindByUserAndProduct(ctx, userID, product.ID, uuid)
	if err != nil {
		return err
	}
	if other != nil {
		return apperr.BadRequest("cart._record_already_exists")
	}

	n, err := s.repo.Update(ctx, repository.WhereAny(repository.ByID(s.repo.Table(), item.ID)), map[string]interface{}{
		"product_id": product.ID,
		"price":      req.PriceValue(),
		"quantity":   req.Qty(),
		"user_id":    userID,
		"updated_by": model.Operator(userID),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.BadRequest("cart._error_while_updating_cart")
	}
	return nil
}

// Remove 物理删除
func (s *CartService) Remove(ctx context.Context, uuid string) error {
	item, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(item, err, "cart._we_could_not_find_what_you_are_looking_for"); err != nil {
		return err
	}

	n, err := s.repo.DeleteByUUID(ctx, uuid)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.BadRequest("cart._error_while_removing_product_from_cart_")
	}
	return nil
}
