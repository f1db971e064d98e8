package service

import (
	"context"

	"master_ms/internal/api/dto"
	"master_ms/internal/model"
	"master_ms/internal/repository"
	"master_ms/pkg/apperr"
)

// WishlistService 心愿单，条目物理删除
type WishlistService struct {
	repo     *repository.WishlistRepo
	products ProductLookup
}

func NewWishlistService(repo *repository.WishlistRepo, products ProductLookup) *WishlistService {
	return &WishlistService{repo: repo, products: products}
}

func (s *WishlistService) List(ctx context.Context, userID int64, q ListQuery) (*repository.Page[model.Wishlist], error) {
	return s.repo.ListWithProduct(ctx, userID, q.SearchText, q.Page)
}

func (s *WishlistService) Add(ctx context.Context, req *dto.AddToWishlistReq, userID int64) (*model.Wishlist, error) {
	product, err := s.products.FindByUUID(ctx, req.ProductUUID)
	if err = exists(product, err, "wishlist._product_is_not_exist_with_this_uuid_"); err != nil {
		return nil, err
	}

	dup, err := s.repo.FindByUserAndProduct(ctx, userID, product.ID)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, apperr.Conflict("wishlist._product_is_already_exist_in_wishlist_")
	}

	item := &model.Wishlist{ProductID: product.ID, UserID: userID}
	item.IsActive = true
	item.CreatedBy = model.Operator(userID)

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apperr.BadRequest("wishlist._error_while_adding_product_to_wishlist_").WithErr(err)
	}
	return item, nil
}

// Remove 按数字 id 物理删除
func (s *WishlistService) Remove(ctx context.Context, id int64) error {
	item, err := s.repo.FindByID(ctx, id)
	if err = exists(item, err, "wishlist._we_could_not_find_what_you_are_looking_for"); err != nil {
		return err
	}

	n, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.BadRequest("wishlist._error_while_removing_product_from_wishlist_")
	}
	return nil
}
