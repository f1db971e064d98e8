package controller

import (
	"context"

	"master_ms/internal/api/dto"
	"master_ms/internal/service"
)

// ==================== Cart ====================

type CartController struct {
	svc *service.CartService
}

func NewCartController(svc *service.CartService) *CartController {
	return &CartController{svc: svc}
}

// FetchAll 当前用户的购物车
func (c *CartController) FetchAll(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.List(ctx, p.OperatorID(), listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK("cart._all_product_from_cart_fetch_successfully_", page), nil
}

func (c *CartController) Add(ctx context.Context, p *dto.Payload) (interface{}, error) {
	var req dto.CartReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	item, err := c.svc.Add(ctx, &req, p.OperatorID())
	if err != nil {
		return nil, err
	}
	return dto.OK("cart._product_successfully_added_in_cart_", item), nil
}

func (c *CartController) Update(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	var req dto.CartReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	if err := c.svc.Update(ctx, uuid, &req, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("cart._cart_updated_successfully", nil), nil
}

func (c *CartController) Remove(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Remove(ctx, uuid); err != nil {
		return nil, err
	}
	return dto.OK("cart._product_successfully_removed_from_cart_", nil), nil
}

// ==================== Wishlist ====================

type WishlistController struct {
	svc *service.WishlistService
}

func NewWishlistController(svc *service.WishlistService) *WishlistController {
	return &WishlistController{svc: svc}
}

func (c *WishlistController) FetchAll(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.List(ctx, p.OperatorID(), listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK("wishlist._all_product_from_wishlist_fetch_successfully_", page), nil
}

func (c *WishlistController) Add(ctx context.Context, p *dto.Payload) (interface{}, error) {
	var req dto.AddToWishlistReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	item, err := c.svc.Add(ctx, &req, p.OperatorID())
	if err != nil {
		return nil, err
	}
	return dto.OK("wishlist._product_successfully_added_in_wishlist_", item), nil
}

// Remove 按数字 id 移除，id 取自 payload.id 或 data.id
func (c *WishlistController) Remove(ctx context.Context, p *dto.Payload) (interface{}, error) {
	id := int64(p.ID)
	if id <= 0 {
		var req dto.RemoveFromWishlistReq
		if err := p.Bind(&req); err != nil {
			return nil, err
		}
		id = int64(req.ID)
	}
	if err := c.svc.Remove(ctx, id); err != nil {
		return nil, err
	}
	return dto.OK("wishlist._product_successfully_removed_from_wishlist_", nil), nil
}
